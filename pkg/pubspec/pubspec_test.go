package pubspec

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleManifest = `
name: example_app
description: A sample Flutter application.

environment:
  sdk: ">=3.0.0 <4.0.0"

dependencies:
  flutter:
    sdk: flutter
  http: ^1.2.0
  provider: ^6.1.0
  shared_preferences: ^2.2.0

dev_dependencies:
  flutter_test:
    sdk: flutter
  build_runner: ^2.4.0
  mockito: ^5.4.0
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "example_app" {
		t.Errorf("name = %q, want example_app", m.Name)
	}

	wantDeps := []string{"http", "provider", "shared_preferences"}
	if !reflect.DeepEqual(m.Dependencies, wantDeps) {
		t.Errorf("dependencies = %v, want %v", m.Dependencies, wantDeps)
	}

	wantDev := []string{"build_runner", "mockito"}
	if !reflect.DeepEqual(m.DevDependencies, wantDev) {
		t.Errorf("dev_dependencies = %v, want %v", m.DevDependencies, wantDev)
	}
}

func TestParse_ExcludesSDKPlaceholders(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, name := range append(m.Dependencies, m.DevDependencies...) {
		if name == "flutter" || name == "flutter_test" {
			t.Errorf("SDK placeholder %q leaked into output", name)
		}
	}
}

func TestParse_MissingSections(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantDeps int
		wantDev  int
	}{
		{"no sections", "name: bare\n", 0, 0},
		{"only runtime", "dependencies:\n  http: ^1.0.0\n", 1, 0},
		{"only dev", "dev_dependencies:\n  mockito: ^5.0.0\n", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(m.Dependencies) != tt.wantDeps {
				t.Errorf("dependencies = %v, want %d entries", m.Dependencies, tt.wantDeps)
			}
			if len(m.DevDependencies) != tt.wantDev {
				t.Errorf("dev_dependencies = %v, want %d entries", m.DevDependencies, tt.wantDev)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("dependencies:\n\t- broken\n  x")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Dependencies) != 3 {
		t.Errorf("got %d dependencies, want 3", len(m.Dependencies))
	}
}

func TestLocate_MissingManifest(t *testing.T) {
	if _, err := Locate(t.TempDir()); err == nil {
		t.Fatal("expected error for directory without pubspec.yaml")
	}
}

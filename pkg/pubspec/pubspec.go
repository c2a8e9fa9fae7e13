// Package pubspec reads dependency declarations from pubspec.yaml files.
package pubspec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the canonical manifest file name for Dart and Flutter projects.
const Filename = "pubspec.yaml"

// sdkPlaceholders are pubspec entries that refer to the host SDK rather than
// a third-party package: the Flutter SDK itself and its bundled test
// framework. They never appear in analysis output.
var sdkPlaceholders = map[string]bool{
	"flutter":      true,
	"flutter_test": true,
}

// Manifest holds the dependency names declared by one pubspec.yaml, split
// into runtime and development buckets. Order follows the document; missing
// sections yield empty (nil) slices.
type Manifest struct {
	Name            string
	Dependencies    []string
	DevDependencies []string
}

// Parse extracts dependency names from raw pubspec.yaml content. Only the
// mapping keys matter; version and source specifiers are ignored. A document
// that is not a valid YAML mapping is a fatal parse error.
func Parse(data []byte) (*Manifest, error) {
	var doc struct {
		Name            string    `yaml:"name"`
		Dependencies    yaml.Node `yaml:"dependencies"`
		DevDependencies yaml.Node `yaml:"dev_dependencies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pubspec: %w", err)
	}

	return &Manifest{
		Name:            doc.Name,
		Dependencies:    sectionKeys(&doc.Dependencies),
		DevDependencies: sectionKeys(&doc.DevDependencies),
	}, nil
}

// Load reads and parses the manifest at path. If path is a directory, the
// pubspec.yaml inside it is used.
func Load(path string) (*Manifest, error) {
	path, err := Locate(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pubspec: %w", err)
	}
	return Parse(data)
}

// Locate resolves path to a pubspec.yaml file. A directory resolves to the
// manifest it contains; a file path is returned as-is if it exists.
func Locate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("locate pubspec: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, Filename)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("no %s in directory: %w", Filename, err)
		}
	}
	return path, nil
}

// sectionKeys collects mapping keys in document order, skipping SDK
// placeholder entries. A yaml.Node decoded from an absent section has zero
// kind and yields no keys.
func sectionKeys(node *yaml.Node) []string {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	var keys []string
	// Mapping content alternates key, value.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == "" || sdkPlaceholders[key] {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

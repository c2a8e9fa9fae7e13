package compat

import (
	"reflect"
	"sort"
	"testing"
)

func TestCheck(t *testing.T) {
	defaults := DefaultConfig()

	tests := []struct {
		name             string
		caps             Capabilities
		cfg              Config
		wantStatus       Status
		wantMissingPlats []string
		wantMissingSDKs  []string
	}{
		{
			name: "full match",
			caps: Capabilities{
				Platforms: []string{"Android", "iOS", "Linux", "macOS", "Web"},
				SDKs:      []string{"Flutter"},
			},
			cfg:        defaults,
			wantStatus: StatusFull,
		},
		{
			name: "partial platforms",
			caps: Capabilities{
				Platforms: []string{"Android", "iOS", "web", "Windows"},
				SDKs:      []string{"Flutter"},
			},
			cfg:              defaults,
			wantStatus:       StatusPartial,
			wantMissingPlats: []string{"Linux", "macOS"},
		},
		{
			name: "partial sdk",
			caps: Capabilities{
				Platforms: []string{"Android", "iOS", "Linux", "macOS", "Web"},
				SDKs:      []string{"Dart"},
			},
			cfg:             defaults,
			wantStatus:      StatusPartial,
			wantMissingSDKs: []string{"Flutter"},
		},
		{
			name: "none",
			caps: Capabilities{
				Platforms: []string{"Windows"},
				SDKs:      []string{"Dart"},
			},
			cfg:              defaults,
			wantStatus:       StatusNone,
			wantMissingPlats: []string{"Android", "iOS", "Linux", "macOS", "Web"},
			wantMissingSDKs:  []string{"Flutter"},
		},
		{
			name:             "empty capabilities",
			caps:             Capabilities{},
			cfg:              defaults,
			wantStatus:       StatusNone,
			wantMissingPlats: []string{"Android", "iOS", "Linux", "macOS", "Web"},
			wantMissingSDKs:  []string{"Flutter"},
		},
		{
			name:       "empty targets are trivially satisfied",
			caps:       Capabilities{Platforms: []string{"Windows"}},
			cfg:        Config{},
			wantStatus: StatusFull,
		},
		{
			name:            "empty platform targets fall through to sdk mismatch",
			caps:            Capabilities{SDKs: []string{"Dart"}},
			cfg:             Config{TargetSDKs: []string{"Flutter"}},
			wantStatus:      StatusNone,
			wantMissingSDKs: []string{"Flutter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.caps, tt.cfg)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if !equalSorted(got.MissingPlatforms, tt.wantMissingPlats) {
				t.Errorf("missing platforms = %v, want %v", got.MissingPlatforms, tt.wantMissingPlats)
			}
			if !equalSorted(got.MissingSDKs, tt.wantMissingSDKs) {
				t.Errorf("missing sdks = %v, want %v", got.MissingSDKs, tt.wantMissingSDKs)
			}
		})
	}
}

func TestCheck_PlatformCaseInsensitive(t *testing.T) {
	cfg := Config{TargetPlatforms: []string{"Android"}}

	lower := Check(Capabilities{Platforms: []string{"android"}}, cfg)
	exact := Check(Capabilities{Platforms: []string{"Android"}}, cfg)

	if !reflect.DeepEqual(lower.MissingPlatforms, exact.MissingPlatforms) {
		t.Errorf("case-folded platforms diverge: %v vs %v", lower.MissingPlatforms, exact.MissingPlatforms)
	}
	if lower.Status != StatusFull {
		t.Errorf("status = %q, want %q", lower.Status, StatusFull)
	}
}

func TestCheck_SDKCaseSensitive(t *testing.T) {
	cfg := Config{TargetSDKs: []string{"Flutter"}}

	got := Check(Capabilities{SDKs: []string{"flutter"}}, cfg)
	if len(got.MissingSDKs) != 1 || got.MissingSDKs[0] != "Flutter" {
		t.Errorf("expected Flutter reported missing, got %v", got.MissingSDKs)
	}
}

func TestCheck_MissingOrderFollowsTargets(t *testing.T) {
	cfg := Config{TargetPlatforms: []string{"Web", "Android", "Linux"}}

	got := Check(Capabilities{Platforms: []string{"Android"}}, cfg)
	want := []string{"Web", "Linux"}
	if !reflect.DeepEqual(got.MissingPlatforms, want) {
		t.Errorf("missing platforms = %v, want %v", got.MissingPlatforms, want)
	}
}

func TestFallback(t *testing.T) {
	cfg := DefaultConfig()
	got := Fallback(cfg)

	if got.Status != StatusNone {
		t.Errorf("status = %q, want %q", got.Status, StatusNone)
	}
	if !reflect.DeepEqual(got.MissingPlatforms, cfg.TargetPlatforms) {
		t.Errorf("missing platforms = %v, want all targets", got.MissingPlatforms)
	}
	if !reflect.DeepEqual(got.MissingSDKs, cfg.TargetSDKs) {
		t.Errorf("missing sdks = %v, want all targets", got.MissingSDKs)
	}
}

func equalSorted(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	return reflect.DeepEqual(g, w)
}

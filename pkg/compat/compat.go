// Package compat classifies package capabilities against a target
// configuration.
//
// A package declares the platforms and SDKs it supports; the user declares
// the platforms and SDKs their project targets. Check compares the two and
// produces a tri-state verdict (full, partial, none) together with the
// concrete targets the package is missing.
package compat

import (
	"slices"
	"strings"
)

// Default targets for a typical multi-platform Flutter project.
var (
	DefaultPlatforms = []string{"Android", "iOS", "Linux", "macOS", "Web"}
	DefaultSDKs      = []string{"Flutter"}
)

// Status is the tri-state compatibility verdict for one package.
type Status string

const (
	// StatusFull means every target platform and SDK is supported.
	StatusFull Status = "full"
	// StatusPartial means some, but not all, targets are supported.
	StatusPartial Status = "partial"
	// StatusNone means no target platform or SDK is supported.
	StatusNone Status = "none"
)

// Config holds the user-declared analysis targets. Platform identifiers are
// matched case-insensitively but preserved as given for display; SDK
// identifiers are matched case-sensitively.
type Config struct {
	TargetPlatforms []string `json:"target_platforms"`
	TargetSDKs      []string `json:"target_sdks"`
}

// DefaultConfig returns a Config populated with the default targets.
func DefaultConfig() Config {
	return Config{
		TargetPlatforms: append([]string(nil), DefaultPlatforms...),
		TargetSDKs:      append([]string(nil), DefaultSDKs...),
	}
}

// Capabilities holds the platforms and SDKs one package declares support
// for. Both lists may be empty: a package that declares nothing is a valid,
// meaningful state, not an error.
type Capabilities struct {
	Platforms []string `json:"platforms"`
	SDKs      []string `json:"sdks"`
}

// Verdict is the classification result for one package. MissingPlatforms and
// MissingSDKs are ordered subsets of the corresponding target lists.
type Verdict struct {
	Status           Status   `json:"status"`
	MissingPlatforms []string `json:"missing_platforms"`
	MissingSDKs      []string `json:"missing_sdks"`
}

// Check classifies caps against cfg. Platform membership is tested after
// lowercasing both sides; SDK membership is exact. Missing lists preserve
// the order of the target lists.
//
// An empty target list contributes vacuously: with no target platforms the
// platform dimension is trivially satisfied, and with both target lists
// empty the status is always StatusFull. The function is pure and never
// fails.
func Check(caps Capabilities, cfg Config) Verdict {
	have := make(map[string]bool, len(caps.Platforms))
	for _, p := range caps.Platforms {
		have[strings.ToLower(p)] = true
	}

	var missingPlatforms []string
	for _, target := range cfg.TargetPlatforms {
		if !have[strings.ToLower(target)] {
			missingPlatforms = append(missingPlatforms, target)
		}
	}

	var missingSDKs []string
	for _, target := range cfg.TargetSDKs {
		if !slices.Contains(caps.SDKs, target) {
			missingSDKs = append(missingSDKs, target)
		}
	}

	status := StatusPartial
	switch {
	case len(missingPlatforms) == 0 && len(missingSDKs) == 0:
		status = StatusFull
	case len(missingPlatforms) == len(cfg.TargetPlatforms) && len(missingSDKs) == len(cfg.TargetSDKs):
		status = StatusNone
	}

	return Verdict{
		Status:           status,
		MissingPlatforms: missingPlatforms,
		MissingSDKs:      missingSDKs,
	}
}

// Fallback returns the verdict recorded for a package whose capabilities
// could not be determined: nothing matches, every target is missing.
func Fallback(cfg Config) Verdict {
	return Verdict{
		Status:           StatusNone,
		MissingPlatforms: append([]string(nil), cfg.TargetPlatforms...),
		MissingSDKs:      append([]string(nil), cfg.TargetSDKs...),
	}
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
)

// configFilename is the optional per-project configuration file, looked up
// next to the manifest.
const configFilename = ".pubspec-platform.toml"

// fileConfig mirrors the TOML configuration file:
//
//	platforms = ["Android", "iOS"]
//	sdks = ["Flutter"]
type fileConfig struct {
	Platforms []string `toml:"platforms"`
	SDKs      []string `toml:"sdks"`
}

// loadTargets builds the target configuration for one run. Precedence per
// dimension: explicit flags, then the config file, then defaults. An
// explicit --config path must exist; the per-project file is optional.
func loadTargets(configPath, manifestDir string, flagPlatforms, flagSDKs []string) (compat.Config, error) {
	cfg := compat.DefaultConfig()

	fc, err := readConfigFile(configPath, manifestDir)
	if err != nil {
		return compat.Config{}, err
	}
	if fc != nil {
		if len(fc.Platforms) > 0 {
			cfg.TargetPlatforms = fc.Platforms
		}
		if len(fc.SDKs) > 0 {
			cfg.TargetSDKs = fc.SDKs
		}
	}

	if len(flagPlatforms) > 0 {
		cfg.TargetPlatforms = flagPlatforms
	}
	if len(flagSDKs) > 0 {
		cfg.TargetSDKs = flagSDKs
	}
	return cfg, nil
}

func readConfigFile(configPath, manifestDir string) (*fileConfig, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(manifestDir, configFilename)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &fc, nil
}

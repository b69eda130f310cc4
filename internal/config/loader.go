package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, logs and the database.
const AppDir = ".vectordash"

const dashFile = "dash.yaml"

// LoadDash loads Vector Dash configuration.
//
// An explicit path must exist and parse; on failure the defaults are
// returned together with the error. Without one, the first readable and
// valid file among SearchPaths wins, then the embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadDash(customPath string) (DashConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDashConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeDash(data)
		if err != nil {
			return DefaultDashConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeDash(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodeDash(defaultDashYAML); err == nil {
		return cfg, nil
	}
	return DefaultDashConfig(), nil
}

// SearchPaths lists the config files tried when no path is given.
func SearchPaths() []string {
	var paths []string
	if p := UserPath("configs", dashFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", dashFile))
}

func decodeDash(data []byte) (DashConfig, error) {
	cfg := DefaultDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Controls.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserPath joins elem under ~/.vectordash, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

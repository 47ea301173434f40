// Package config loads user configuration for stackaudit. Configuration is
// optional: a missing or malformed config file silently degrades to defaults,
// since a broken config must never block an audit run.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the per-project configuration file, looked up in the scanned
// project directory and then in the working directory.
const FileName = ".stackaudit.toml"

// envRestrictive overrides the restrictive pattern list with a
// comma-separated value.
const envRestrictive = "STACKAUDIT_LICENSES_RESTRICTIVE"

// Config is the user-facing configuration.
type Config struct {
	Licenses Licenses `toml:"licenses"`
}

// Licenses configures license classification.
type Licenses struct {
	// Restrictive is a list of substring patterns; a dependency license not
	// found in the taxonomy is flagged restrictive when it contains any of
	// these patterns (case-sensitive).
	Restrictive []string `toml:"restrictive"`
}

// Default returns the built-in configuration used when no config file is
// present or the file cannot be read.
func Default() Config {
	return Config{
		Licenses: Licenses{
			Restrictive: []string{"GPL", "AGPL", "SSPL", "EUPL", "CPAL", "OSL"},
		},
	}
}

// Load reads configuration for a run. The project directory is checked first,
// then the current working directory; the first file found wins. Every
// failure mode (missing file, unreadable file, invalid TOML) returns the
// defaults. The STACKAUDIT_LICENSES_RESTRICTIVE environment variable, when
// set, replaces the restrictive pattern list entirely.
func Load(projectPath string) Config {
	cfg := Default()

	for _, dir := range []string{projectPath, "."} {
		if dir == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, FileName))
		if err != nil {
			continue
		}
		var parsed Config
		if err := toml.Unmarshal(data, &parsed); err != nil {
			break // malformed file: fall back to defaults, do not try the next dir
		}
		if parsed.Licenses.Restrictive != nil {
			cfg.Licenses.Restrictive = parsed.Licenses.Restrictive
		}
		break
	}

	if env := os.Getenv(envRestrictive); env != "" {
		var patterns []string
		for _, p := range strings.Split(env, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) > 0 {
			cfg.Licenses.Restrictive = patterns
		}
	}

	return cfg
}

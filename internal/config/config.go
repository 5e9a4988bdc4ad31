// Package config loads the REPL's optional TOML configuration file
// (".lci.toml" by convention), the way internal/tqw loads TQW file headers:
// unmarshal straight into a struct via BurntSushi/toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the conventional name of the config file searched for
// in the current directory and the user's home directory.
const DefaultFileName = ".lci.toml"

// Config holds every REPL tunable that can be set from a file instead of a
// flag. No flag overrides these fields; the -f flag's file is appended to
// Prelude (see cmd/lci/main.go).
type Config struct {
	// MaxReductions bounds the number of reduction steps Evaluate will take
	// before giving up. Zero or absent means use the package default.
	MaxReductions int `toml:"max_reductions"`

	// Echo controls whether each intermediate β-reduction step is printed.
	Echo *bool `toml:"echo"`

	// Prelude lists files to :import, in order, before the REPL starts
	// reading from its normal input source.
	Prelude []string `toml:"prelude"`

	// Banner controls whether the startup banner is printed on an
	// interactive TTY session.
	Banner *bool `toml:"banner"`
}

// Load reads and parses the TOML file at path. A missing file is not an
// error; it is reported as a zero-value Config so callers can layer
// defaults over it unconditionally.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// EchoEnabled reports whether echo should be on, given the config's
// possibly-unset Echo field and a fallback default.
func (c Config) EchoEnabled(fallback bool) bool {
	if c.Echo == nil {
		return fallback
	}
	return *c.Echo
}

// BannerEnabled reports whether the startup banner should print, given the
// config's possibly-unset Banner field and a fallback default.
func (c Config) BannerEnabled(fallback bool) bool {
	if c.Banner == nil {
		return fallback
	}
	return *c.Banner
}

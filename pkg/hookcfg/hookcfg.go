// Package hookcfg exposes hook configuration loading to external tooling.
//
// It exists solely so that tools built around the hook (editors, launchers)
// can read and scaffold breakhook.yml without violating Go's internal
// package restrictions. The library itself loads its configuration through
// the internal package directly.
package hookcfg

import (
	"github.com/mwnd/breakhook/internal/config"
)

// Config represents the hook configuration.
// This is a type alias to the internal config.Config type.
type Config = config.Config

// LoadConfig loads the hook configuration from the path named by BB_CONFIG,
// falling back to "breakhook.yml". A missing file yields the zero-value
// defaults.
func LoadConfig() *Config {
	return config.Load()
}

// WriteDefaultConfig writes a breakhook.yml with the built-in defaults to the given path.
func WriteDefaultConfig(path string) error {
	return config.WriteDefaultConfig(path)
}

// Package config defines the breakpoint hook configuration structure.
package config

// EnvConfigPath is the environment variable naming the config file path.
const EnvConfigPath = "BB_CONFIG"

// DefaultPath is the config file looked up when BB_CONFIG is unset.
const DefaultPath = "breakhook.yml"

// Config represents the complete hook configuration loaded from YAML.
// The zero value is a valid configuration: built-in bindings, default
// attach timeout, default console prompt.
type Config struct {
	Hook struct {
		// Bindings rebinds selector values to provider chains, e.g.
		//   "1": [console, break]
		// Unlisted selectors keep their built-in binding.
		Bindings map[string][]string `yaml:"bindings,omitempty"`
		Attach   struct {
			DlvPath     string `yaml:"dlv_path,omitempty"`     // overrides the binary looked up on PATH
			WaitTimeout string `yaml:"wait_timeout,omitempty"` // e.g. "30s"; default 5m
		} `yaml:"attach"`
		Console struct {
			Prompt string `yaml:"prompt,omitempty"` // default "(bb) "
		} `yaml:"console"`
	} `yaml:"hook"`
}

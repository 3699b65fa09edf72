// Package config provides configuration loading functionality.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Load loads the hook configuration from the path named by BB_CONFIG, or
// from "breakhook.yml" in the working directory. A missing file is not an
// error: the config is optional and Load returns the zero-value defaults.
// A file that exists but cannot be read or decoded is logged and the
// defaults are returned, so a broken config never takes breakpoint
// capability down with it.
func Load() *Config {
	cfgPath := os.Getenv(EnvConfigPath)
	if cfgPath == "" {
		cfgPath = DefaultPath
	}

	var config Config
	f, err := os.Open(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithField("caller", "config").WithError(err).Error("Cant read config")
		}
		return &config
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		log.WithField("caller", "config").WithError(err).Error("Cant decode yaml")
	}
	return &config
}

// WriteDefaultConfig writes a breakhook.yml with the built-in bindings and
// default tuning values to the given path, as a starting point for editing.
func WriteDefaultConfig(path string) error {
	cfg := Config{}
	cfg.Hook.Bindings = map[string][]string{
		"1":    {"attach", "console", "break"},
		"pudb": {"attach"},
		"ipdb": {"console"},
		"pdb":  {"break"},
	}
	cfg.Hook.Attach.WaitTimeout = "5m"
	cfg.Hook.Console.Prompt = "(bb) "

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(&cfg); err != nil {
		return err
	}
	return nil
}

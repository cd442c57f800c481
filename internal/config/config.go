// Package config provides YAML/TOML configuration loading for microtris.
// The rules of the game are fixed; only deployment settings live here.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/microtris/internal/core"
)

// Config contains everything the command line front ends need.
type Config struct {
	TickRate int       `yaml:"tick_rate" toml:"tick_rate"`
	Seed     int64     `yaml:"seed" toml:"seed"`
	DBPath   string    `yaml:"db_path" toml:"db_path"` // empty disables score saving
	LogLevel string    `yaml:"log_level" toml:"log_level"`
	LogFile  string    `yaml:"log_file" toml:"log_file"`
	Keys     KeyConfig `yaml:"keys" toml:"keys"`
}

// KeyConfig binds terminal keys to the two buttons and to quitting. Names
// follow Bubble Tea's key strings ("left", "ctrl+c", "a").
type KeyConfig struct {
	Rotate []string `yaml:"rotate" toml:"rotate"`
	Step   []string `yaml:"step" toml:"step"`
	Quit   []string `yaml:"quit" toml:"quit"`
}

// Default returns the hardcoded configuration, used when even the embedded
// file cannot be parsed.
func Default() Config {
	return Config{
		TickRate: core.DefaultConfig().TickRate,
		Seed:     core.DefaultConfig().Seed,
		DBPath:   "~/.microtris/scores.db",
		LogLevel: "info",
		LogFile:  "~/.microtris/microtris.log",
		Keys: KeyConfig{
			Rotate: []string{"left", "a", "z"},
			Step:   []string{"right", "d", "x"},
			Quit:   []string{"q", "esc", "ctrl+c"},
		},
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.TickRate < core.MinTickRate || c.TickRate > core.MaxTickRate {
		return fmt.Errorf("config: tick_rate %d out of range [%d, %d]", c.TickRate, core.MinTickRate, core.MaxTickRate)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}

	seen := make(map[string]string)
	for _, b := range []struct {
		name string
		keys []string
	}{
		{"rotate", c.Keys.Rotate},
		{"step", c.Keys.Step},
		{"quit", c.Keys.Quit},
	} {
		if len(b.keys) == 0 {
			return fmt.Errorf("config: keys.%s is empty", b.name)
		}
		for _, k := range b.keys {
			if prev, ok := seen[k]; ok && prev != b.name {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, b.name)
			}
			seen[k] = b.name
		}
	}
	return nil
}

// Runtime returns the console parameters.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: c.TickRate, Seed: c.Seed}
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

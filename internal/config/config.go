// Package config loads optional assembler settings from a TOML file.
// Every field has a usable default, so the CLI works with no config
// file present at all.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the knobs an installation may want to override without
// touching the command line every run.
type Config struct {
	Listing struct {
		// ShowEmptyRecords controls whether zero-width directives
		// (START, END, BASE, ...) get a line with no object code in the
		// listing or are omitted entirely.
		ShowEmptyRecords bool `toml:"show_empty_records"`
	} `toml:"listing"`

	Diagnostics struct {
		// Verbose requests %+v-style error output (full cause chain)
		// instead of the terse single-line message.
		Verbose bool `toml:"verbose"`
	} `toml:"diagnostics"`
}

// Default returns a Config with the assembler's built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Listing.ShowEmptyRecords = true
	cfg.Diagnostics.Verbose = false
	return cfg
}

// LoadFrom reads and parses the TOML file at path, starting from
// Default() so an incomplete file still yields sane values for the
// fields it doesn't mention. A missing file is not an error: the
// defaults are returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	return cfg, nil
}

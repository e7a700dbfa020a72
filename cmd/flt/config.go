package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the REPL settings.
type Config struct {
	// Prompt is printed before each line of input.
	Prompt string `toml:"prompt"`
	// HistoryFile is where line history is kept between sessions. A leading
	// "~/" means the home directory. Empty disables history.
	HistoryFile string `toml:"history_file"`
	// Format selects how parsed trees are printed: "debug" or "infix".
	Format string `toml:"format"`
	// MaxDepth limits the nesting of expressions. Zero means no limit.
	MaxDepth int `toml:"max_depth"`
	// Color enables styled error output on terminals.
	Color bool `toml:"color"`
}

const (
	formatDebug = "debug"
	formatInfix = "infix"
)

// DefaultConfig returns the settings used when there is no config file.
func DefaultConfig() Config {
	return Config{
		Prompt:      "> ",
		HistoryFile: "~/.flt_history",
		Format:      formatDebug,
		MaxDepth:    256,
		Color:       true,
	}
}

// defaultConfigPath returns the config file location used when none is given.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "flt", "config.toml")
}

// LoadConfig reads settings from a TOML file over the defaults. If the file
// does not exist and required is false, the result is the defaults.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("loading config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (cfg Config) Validate() error {
	switch cfg.Format {
	case formatDebug, formatInfix:
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", cfg.Format, formatDebug, formatInfix)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max_depth (%d) must not be negative", cfg.MaxDepth)
	}
	return nil
}

// historyPath resolves the history file name.
func (cfg Config) historyPath() string {
	p := cfg.HistoryFile
	if rest := strings.TrimPrefix(p, "~/"); rest != p {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, rest)
	}
	return p
}

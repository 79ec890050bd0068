// Package config resolves store file paths and CLI settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application config directory name.
	AppName = "todo"

	// ConfigFile is the optional TOML config filename.
	ConfigFile = "config.toml"

	// ItemFile is the default item store filename, under the home directory.
	ItemFile = ".todo_items.json"

	// PatternFile is the default pattern store filename, under the home directory.
	PatternFile = ".todo_patterns.json"
)

// Config holds resolved file paths and settings.
type Config struct {
	// TodoFile is the item store path.
	TodoFile string

	// PatternFile is the pattern store path.
	PatternFile string

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the TOML config file shape.
type fileConfig struct {
	TodoFile    string `toml:"todo_file"`
	PatternFile string `toml:"pattern_file"`
}

// Load resolves configuration in priority order: built-in defaults, the
// TOML config file, environment variables, then explicit flag values.
// configPath overrides the config file location; todoFile and patternFile
// are the --todo-file/--pattern-file flag values (empty = unset).
func Load(configPath, todoFile, patternFile string) (*Config, error) {
	cfg := &Config{
		TodoFile:    defaultPath(ItemFile),
		PatternFile: defaultPath(PatternFile),
	}

	path := configPath
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), ConfigFile)
	}
	if _, err := os.Stat(path); err == nil {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if fc.TodoFile != "" {
			cfg.TodoFile = expandHome(fc.TodoFile)
		}
		if fc.PatternFile != "" {
			cfg.PatternFile = expandHome(fc.PatternFile)
		}
	} else if configPath != "" {
		// An explicitly requested config file must exist.
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.TodoFile = v
	}
	if v := os.Getenv("TODO_PATTERN_FILE"); v != "" {
		cfg.PatternFile = v
	}

	if todoFile != "" {
		cfg.TodoFile = todoFile
	}
	if patternFile != "" {
		cfg.PatternFile = patternFile
	}

	return cfg, nil
}

// DefaultConfigDir returns the config directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// defaultPath places a store file in the user's home directory, falling
// back to the working directory when home is unknown.
func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}

// expandHome resolves a leading "~/" in config file values.
func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appName    = "todocmd"
	configFile = "todocmd.toml"
	indexFile  = "index.db"

	DefaultLogLevel = "info"
)

var (
	ErrNoTodoFile = errors.New("todo file is not set in the config file and --todo-file is missing")
	ErrNoDoneFile = errors.New("done file is not set in the config file and --done-file is missing")
)

// Config holds the settings of one run
type Config struct {
	TodoFile  string `toml:"todo_file"`
	DoneFile  string `toml:"done_file"`
	IndexFile string `toml:"index_file"`
	LogLevel  string `toml:"log_level"`
}

// Overrides are values from the command line. Non-empty fields win over
// the config file.
type Overrides struct {
	TodoFile string
	DoneFile string
	LogLevel string
}

// DefaultPath returns the config file location, using XDG_CONFIG_HOME or the
// OS config directory.
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		configDir = dir
	}
	return filepath.Join(configDir, appName, configFile), nil
}

// DefaultIndexPath returns the index database location under
// XDG_DATA_HOME, or ~/.local/share.
func DefaultIndexPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, appName, indexFile), nil
}

// Load reads the config file at path and applies o on top of it. A missing
// file is not an error.
func Load(path string, o Overrides) (*Config, error) {
	cfg := &Config{LogLevel: DefaultLogLevel}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if o.TodoFile != "" {
		cfg.TodoFile = o.TodoFile
	}
	if o.DoneFile != "" {
		cfg.DoneFile = o.DoneFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	var err error
	for _, p := range []*string{&cfg.TodoFile, &cfg.DoneFile, &cfg.IndexFile} {
		if *p, err = expandHome(*p); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Validate checks that both list files are known.
func (c *Config) Validate() error {
	if c.TodoFile == "" {
		return ErrNoTodoFile
	}
	if c.DoneFile == "" {
		return ErrNoDoneFile
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

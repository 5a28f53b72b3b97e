// Package config loads the layered application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/chores/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read into the config,
// e.g. CHORES_DB_PATH or CHORES_LOG_LEVEL
const EnvPrefix = "CHORES_"

// ConfigFlag names the flag that points at an explicit config file
const ConfigFlag = "config"

// ColorScheme is the table and board palette
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	DBPath      string      `yaml:"db_path" koanf:"db_path"`
	LogLevel    string      `yaml:"log_level" koanf:"log_level"`
	LogFile     string      `yaml:"log_file,omitempty" koanf:"log_file"`
	SQLDir      string      `yaml:"sql_dir,omitempty" koanf:"sql_dir"`
	ColorScheme ColorScheme `yaml:"theme" koanf:"theme"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		DBPath:      "test.db",
		LogLevel:    "info",
		ColorScheme: *colors.Default(),
	}
}

// flagKeys maps command line flag names to config keys
var flagKeys = map[string]string{
	"dbpath":    "db_path",
	"log-level": "log_level",
	"log-file":  "log_file",
	"sql-dir":   "sql_dir",
	"theme":     "theme.preset",
}

// Load builds the configuration from, in increasing precedence:
// built-in defaults, the YAML config file, CHORES_* environment variables
// and flags explicitly set on the command line. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	path, explicit, err := Path(flags)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if explicit {
			return nil, fmt.Errorf("config file %s: %w", path, statErr)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key == "theme" {
			return "theme.preset"
		}
		return key
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if flags != nil {
		flagProvider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(flagProvider, nil); err != nil {
			return nil, fmt.Errorf("failed to read flags: %w", err)
		}
	}

	cfg := Default()
	// a preset chosen in any layer replaces the default palette before overrides apply
	cfg.ColorScheme = colors.ColorScheme{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Path resolves the config file: the --config flag when set, otherwise
// $XDG_CONFIG_HOME/chores/config.yaml or ~/.config/chores/config.yaml.
// explicit reports whether the path came from the flag.
func Path(flags *pflag.FlagSet) (path string, explicit bool, err error) {
	if flags != nil {
		if f := flags.Lookup(ConfigFlag); f != nil && f.Value.String() != "" {
			return f.Value.String(), true, nil
		}
	}

	path, err = defaultPath()
	return path, false, err
}

func defaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "chores", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "chores", "config.yaml"), nil
}

// Save writes the config as YAML to path, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// YAML renders the config the way Save writes it
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := Default()
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	c.ColorScheme.ApplyDefaults()
}

// Package config loads notscrum settings from defaults, an optional YAML file,
// NOTSCRUM_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "NOTSCRUM"

	// Config keys
	KeyAddr            = "addr"
	KeyDBPath          = "db_path"
	KeyLogLevel        = "log_level"
	KeyLogFile         = "log_file"
	KeyCORSOrigin      = "cors_origin"
	KeyDefaultLanes    = "default_lanes"
	KeyShutdownTimeout = "shutdown_timeout"
)

// Config represents the application configuration
type Config struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	DBPath          string        `mapstructure:"db_path" yaml:"db_path"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string        `mapstructure:"log_file" yaml:"log_file"`
	CORSOrigin      string        `mapstructure:"cors_origin" yaml:"cors_origin"`
	DefaultLanes    []string      `mapstructure:"default_lanes" yaml:"default_lanes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns the configuration used when nothing overrides it.
// DBPath is left empty; the database package resolves it to ~/.notscrum/notscrum.db.
func Default() *Config {
	return &Config{
		Addr:            ":5000",
		LogLevel:        "info",
		CORSOrigin:      "*",
		DefaultLanes:    []string{"To Do", "In Progress", "Done"},
		ShutdownTimeout: 10 * time.Second,
	}
}

// FlagKeys maps command-line flag names onto config keys
var FlagKeys = map[string]string{
	"addr":      KeyAddr,
	"db":        KeyDBPath,
	"log-level": KeyLogLevel,
	"log-file":  KeyLogFile,
}

// Load resolves the configuration. When path is empty the config file is looked
// up in Dir() and may be missing; an explicit path must exist. flags may be nil;
// only flags the user actually set take precedence over the other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyAddr, def.Addr)
	v.SetDefault(KeyDBPath, def.DBPath)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFile, def.LogFile)
	v.SetDefault(KeyCORSOrigin, def.CORSOrigin)
	v.SetDefault(KeyDefaultLanes, def.DefaultLanes)
	v.SetDefault(KeyShutdownTimeout, def.ShutdownTimeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr cannot be empty")
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout cannot be negative: %s", c.ShutdownTimeout)
	}
	for i, name := range c.DefaultLanes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("default_lanes[%d] cannot be empty", i)
		}
		if utf8.RuneCountInString(name) > laneservice.MaxNameLength {
			return fmt.Errorf("default_lanes[%d] cannot exceed %d characters", i, laneservice.MaxNameLength)
		}
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories
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

// Dir returns the directory holding config.yaml
func Dir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "notscrum"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "notscrum"), nil
}

// Path returns the default location of config.yaml
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+"."+configFileType), nil
}

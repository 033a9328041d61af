// Package config loads nickurl settings from a YAML file and NICKURL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDirName  = ".nickurl"
	configFileName = "config"
	envPrefix      = "NICKURL"
)

// Config is the complete nickurl configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Search   SearchConfig   `mapstructure:"search"`
	Coalesce CoalesceConfig `mapstructure:"coalesce"`
	Log      LogConfig      `mapstructure:"log"`
	Import   ImportConfig   `mapstructure:"import"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

type SearchConfig struct {
	// DefaultURL receives queries that match no alias, as ?q=word+word.
	DefaultURL string `mapstructure:"default_url"`
}

type CoalesceConfig struct {
	Window        time.Duration `mapstructure:"window"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type ImportConfig struct {
	File string `mapstructure:"file"`
}

// DataDir returns $HOME/.nickurl, or .nickurl when the home directory is unknown.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

func setDefaults(v *viper.Viper) {
	dataDir := DataDir()
	v.SetDefault("database.path", filepath.Join(dataDir, "search.db"))
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("search.default_url", "https://www.google.com/search")
	v.SetDefault("coalesce.window", 500*time.Millisecond)
	v.SetDefault("coalesce.sweep_interval", time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("import.file", filepath.Join(dataDir, "aliases.yaml"))
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

/*
Load reads configuration. When path is non-empty that file must exist;
otherwise config.yaml is looked up in $HOME/.nickurl and the working
directory, and its absence is not an error. NICKURL_* environment variables
override file values (NICKURL_DATABASE_PATH, NICKURL_COALESCE_WINDOW, ...).
*/
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(DataDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch {
	case c.Database.Path == "":
		return &Error{Field: "database.path", Message: "must not be empty"}
	case c.Search.DefaultURL == "":
		return &Error{Field: "search.default_url", Message: "must not be empty"}
	case !strings.Contains(c.Search.DefaultURL, "://"):
		return &Error{Field: "search.default_url", Message: "must be an absolute URL"}
	case c.Coalesce.Window < 0:
		return &Error{Field: "coalesce.window", Message: "must not be negative"}
	case c.Coalesce.SweepInterval < 0:
		return &Error{Field: "coalesce.sweep_interval", Message: "must not be negative"}
	case c.Server.ReadHeaderTimeout < 0:
		return &Error{Field: "server.read_header_timeout", Message: "must not be negative"}
	}
	return nil
}

// Error represents an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

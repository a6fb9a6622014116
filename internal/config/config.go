package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	UI     UIConfig
}

// ServerConfig locates the course directory API.
type ServerConfig struct {
	Host string
	Port int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	RowsPerPage int `mapstructure:"rows_per_page"`
}

// BaseURL is the root of the course directory API.
func (c Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads configuration from file and env. Env var overrides use prefix GOLFMATCH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5001)
	v.SetDefault("ui.rows_per_page", 10)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GOLFMATCH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "golfmatch"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GOLFMATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// normalize keeps settings only when usable, else falls back to defaults.
func normalize(c Config) Config {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		c.Server.Port = 5001
	}
	if c.UI.RowsPerPage < 3 || c.UI.RowsPerPage > 50 {
		c.UI.RowsPerPage = 10
	}
	return c
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used by the settings flow for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("GOLFMATCH_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "golfmatch", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("server.host", cfg.Server.Host)
	v.Set("server.port", cfg.Server.Port)
	v.Set("ui.rows_per_page", cfg.UI.RowsPerPage)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

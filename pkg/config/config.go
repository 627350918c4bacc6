package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/telelink/config"
	ConfigFileName    = "telelink.yml"
)

// Config holds all telelink configuration settings.
// Values come from defaults, then the config file, then environment
// variables, highest precedence last. DATABASE_URL and TELELINK_DATA_KEY
// stay environment-only.
type Config struct {
	// BindAddress is the HTTP listen address
	BindAddress string `yaml:"bind_address"`

	// Port is the HTTP listen port
	Port string `yaml:"port"`

	// RequiredPlugin is the entitlement a key must carry to use the
	// Telegram link endpoint
	RequiredPlugin string `yaml:"required_plugin"`

	// PollWindowSeconds is how long a single bot update poll may block
	PollWindowSeconds int `yaml:"poll_window_seconds"`

	configFilePath string
}

func newDefault() *Config {
	return &Config{
		BindAddress:       "0.0.0.0",
		Port:              "8000",
		RequiredPlugin:    "telegram",
		PollWindowSeconds: 10,
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := newDefault()

	configPath := os.Getenv("TELELINK_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(cfg.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", cfg.configFilePath, err)
		}
		cfg.applyFileConfig(&fileConfig)
	}

	cfg.applyEnvConfig()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
	}
	if file.Port != "" {
		c.Port = file.Port
	}
	if file.RequiredPlugin != "" {
		c.RequiredPlugin = file.RequiredPlugin
	}
	if file.PollWindowSeconds != 0 {
		c.PollWindowSeconds = file.PollWindowSeconds
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
	}
	if val := os.Getenv("TELELINK_REQUIRED_PLUGIN"); val != "" {
		c.RequiredPlugin = val
	}
	if val := os.Getenv("TELELINK_POLL_WINDOW_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PollWindowSeconds = i
		}
	}
}

func (c *Config) validate() error {
	if c.PollWindowSeconds <= 0 {
		return fmt.Errorf("poll_window_seconds must be positive, got %d", c.PollWindowSeconds)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// PollWindow returns the poll window as a duration
func (c *Config) PollWindow() time.Duration {
	return time.Duration(c.PollWindowSeconds) * time.Second
}

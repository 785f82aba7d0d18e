package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the full application configuration loaded from file/env.
type Config struct {
	Jira     JiraConfig  `mapstructure:"jira"`
	Retry    RetryConfig `mapstructure:"retry"`
	LogLevel string      `mapstructure:"log_level"`
}

// JiraConfig holds the connection settings for the target Jira site.
type JiraConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Email      string `mapstructure:"email"`
	APIToken   string `mapstructure:"api_token"`
	ProjectKey string `mapstructure:"project_key"`
}

// RetryConfig controls the retry budget for remote operations.
type RetryConfig struct {
	MaxRetries int           `mapstructure:"max_retries"`
	Delay      time.Duration `mapstructure:"delay"`
}

// Load reads configuration from the provided file or directory and from
// environment variables (JIRA_BASE_URL, JIRA_EMAIL, JIRA_API_TOKEN,
// JIRA_PROJECT_KEY and friends). Field presence is not validated here; the
// issue package checks the loaded values before a client is constructed.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if path != "" {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			v.AddConfigPath(path)
		} else {
			v.SetConfigFile(path)
		}
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env-backed keys that viper knows about, so bind
	// each one explicitly.
	for key, env := range map[string]string{
		"jira.base_url":     "JIRA_BASE_URL",
		"jira.email":        "JIRA_EMAIL",
		"jira.api_token":    "JIRA_API_TOKEN",
		"jira.project_key":  "JIRA_PROJECT_KEY",
		"retry.max_retries": "RETRY_MAX_RETRIES",
		"retry.delay":       "RETRY_DELAY",
		"log_level":         "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind env %s: %w", env, err)
		}
	}

	v.SetDefault("retry.max_retries", 3)
	v.SetDefault("retry.delay", time.Second)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.applyNetrcDefaults(); err != nil {
		return nil, err
	}

	cfg.normalize()

	return cfg, nil
}

func (c *Config) normalize() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Retry.MaxRetries < 1 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.Delay <= 0 {
		c.Retry.Delay = time.Second
	}
}

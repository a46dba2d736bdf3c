// Package config loads server configuration from an optional YAML file with
// BORROWWW_* environment overrides. Precedence: defaults, then file, then
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every knob the server reads. Values are fixed once Load
// returns.
type Config struct {
	ListenAddr      string
	BaseURL         string
	LogLevel        string
	RateLimitRPM    int
	ShutdownTimeout time.Duration
}

// fileConfig is the YAML schema. Durations are strings ("10s") and optional
// integers are pointers so an absent key is distinguishable from zero.
type fileConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	BaseURL         string `yaml:"base_url"`
	LogLevel        string `yaml:"log_level"`
	RateLimitRPM    *int   `yaml:"rate_limit_rpm"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

func defaults() Config {
	return Config{
		ListenAddr:      ":8080",
		BaseURL:         "https://www.borrowww.com",
		LogLevel:        "info",
		RateLimitRPM:    300,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds the effective configuration. path may be empty.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		if err := mergeFile(&cfg, fc); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, fc fileConfig) error {
	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.RateLimitRPM != nil {
		cfg.RateLimitRPM = *fc.RateLimitRPM
	}
	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("config: shutdown_timeout %q is not a duration", fc.ShutdownTimeout)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.ListenAddr = envString("BORROWWW_LISTEN", cfg.ListenAddr)
	cfg.BaseURL = envString("BORROWWW_BASE_URL", cfg.BaseURL)
	cfg.LogLevel = envString("BORROWWW_LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.RateLimitRPM, err = envInt("BORROWWW_RATE_LIMIT_RPM", cfg.RateLimitRPM); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = envDuration("BORROWWW_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}

func (c Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("config: listen_addr must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("config: base_url %q must be an absolute http(s) URL", c.BaseURL)
	}
	if c.RateLimitRPM < 0 {
		return fmt.Errorf("config: rate_limit_rpm must not be negative")
	}
	return nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer", key, v)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration", key, v)
	}
	return d, nil
}

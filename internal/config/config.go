package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Exchange ExchangeConfig `yaml:"exchange"`
	Logger   LoggerConfig   `yaml:"logger"`
}

type ExchangeConfig struct {
	BaseURL    string          `yaml:"base_url"`
	Timeout    time.Duration   `yaml:"timeout"`
	RecvWindow int64           `yaml:"recv_window"`
	Retry      RetryConfig     `yaml:"retry"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
	Breaker    BreakerConfig   `yaml:"breaker"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
	MaxDelay    time.Duration `yaml:"max_delay"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type BreakerConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxRequests uint32        `yaml:"max_requests"`
	Interval    time.Duration `yaml:"interval"`
	Timeout     time.Duration `yaml:"timeout"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no config file is given.
// Credentials never live here; they come from the environment.
func Default() *Config {
	return &Config{
		Exchange: ExchangeConfig{
			BaseURL:    "https://testnet.binancefuture.com",
			Timeout:    10 * time.Second,
			RecvWindow: 10000,
			Retry: RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   500 * time.Millisecond,
				MaxDelay:    10 * time.Second,
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 5,
				Burst:             10,
			},
			Breaker: BreakerConfig{
				Enabled:     true,
				MaxRequests: 3,
				Interval:    60 * time.Second,
				Timeout:     30 * time.Second,
			},
		},
		Logger: LoggerConfig{
			Level:      "info",
			File:       "logs/futures_bot.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// Load reads a yaml config file over the defaults, so a partial file
// only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads the configuration or panics.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

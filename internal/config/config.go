package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingToken is returned when no King of Time access token is configured.
var ErrMissingToken = errors.New("KOT_ACCESS_TOKEN is not set; issue one in King of Time under Settings > External integrations > WebAPI")

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel   string
	KingOfTime KingOfTime
}

// KingOfTime holds upstream API settings
type KingOfTime struct {
	AccessToken string
	BaseURL     string        // default https://api.kingtime.jp/v1.0
	Timeout     time.Duration // default 30s
	MaxRetries  int           // default 3
}

type fileConfig struct {
	LogLevel   string `yaml:"log_level"`
	KingOfTime struct {
		AccessToken string `yaml:"access_token"`
		BaseURL     string `yaml:"base_url"`
		Timeout     string `yaml:"timeout"`
		MaxRetries  int    `yaml:"max_retries"`
	} `yaml:"king_of_time"`
}

func defaults() Config {
	return Config{
		LogLevel: "info",
		KingOfTime: KingOfTime{
			BaseURL:    "https://api.kingtime.jp/v1.0",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
		},
	}
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := defaults()
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads a YAML config file, then lets environment variables override it
func LoadFile(path string) (Config, error) {
	cfg := defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.KingOfTime.AccessToken != "" {
		cfg.KingOfTime.AccessToken = fc.KingOfTime.AccessToken
	}
	if fc.KingOfTime.BaseURL != "" {
		cfg.KingOfTime.BaseURL = fc.KingOfTime.BaseURL
	}
	if fc.KingOfTime.Timeout != "" {
		d, err := time.ParseDuration(fc.KingOfTime.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("config: king_of_time.timeout: %w", err)
		}
		cfg.KingOfTime.Timeout = d
	}
	if fc.KingOfTime.MaxRetries != 0 {
		cfg.KingOfTime.MaxRetries = fc.KingOfTime.MaxRetries
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports missing or out-of-range settings
func (c Config) Validate() error {
	var problems []string

	if c.KingOfTime.Timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if c.KingOfTime.MaxRetries <= 0 {
		problems = append(problems, "max retries must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, ", "))
	}

	if c.KingOfTime.AccessToken == "" {
		return ErrMissingToken
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("KOT_ACCESS_TOKEN"); v != "" {
		cfg.KingOfTime.AccessToken = v
	}

	if v := os.Getenv("KOT_BASE_URL"); v != "" {
		cfg.KingOfTime.BaseURL = v
	}

	if v := os.Getenv("KOT_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: KOT_HTTP_TIMEOUT: %w", err)
		}
		cfg.KingOfTime.Timeout = d
	}

	if v := os.Getenv("KOT_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: KOT_MAX_RETRIES: %w", err)
		}
		cfg.KingOfTime.MaxRetries = n
	}

	return nil
}

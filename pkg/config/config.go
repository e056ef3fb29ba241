package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Market struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout"`
		Lookback string        `yaml:"lookback"`
	} `yaml:"market"`
	News struct {
		BaseURL  string        `yaml:"base_url"`
		APIKey   string        `yaml:"api_key"`
		PageSize int           `yaml:"page_size"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"news"`
	Sentiment struct {
		ServiceURL string        `yaml:"service_url"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"sentiment"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// NEWS_API_KEY stays optional: when empty, news enrichment is skipped and the
// report carries sentinel values instead.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		c.Market.BaseURL = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.News.APIKey = v
	}
	if v := os.Getenv("SENTIMENT_URL"); v != "" {
		c.Sentiment.ServiceURL = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if c.Market.Lookback != "" && c.Market.Lookback != "6mo" && c.Market.Lookback != "1y" && c.Market.Lookback != "2y" {
		return fmt.Errorf("market.lookback must be one of '6mo', '1y', '2y', got '%s'", c.Market.Lookback)
	}
	if c.News.APIKey != "" && c.News.BaseURL == "" {
		return fmt.Errorf("news.base_url is required when news.api_key is set")
	}
	return nil
}

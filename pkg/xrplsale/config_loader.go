package xrplsale

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFromEnv builds a Config from XRPLSALE_-prefixed environment
// variables:
//
//	XRPLSALE_API_KEY        (required)
//	XRPLSALE_ENVIRONMENT    production|testnet
//	XRPLSALE_BASE_URL
//	XRPLSALE_TIMEOUT        duration, e.g. "30s"
//	XRPLSALE_MAX_RETRIES
//	XRPLSALE_RETRY_DELAY    duration, e.g. "1s"
//	XRPLSALE_WEBHOOK_SECRET
//	XRPLSALE_DEBUG
func ConfigFromEnv() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("XRPLSALE")
	v.AutomaticEnv()

	config := &Config{
		APIKey:        v.GetString("api_key"),
		BaseURL:       v.GetString("base_url"),
		WebhookSecret: v.GetString("webhook_secret"),
		Debug:         v.GetBool("debug"),
	}

	if name := v.GetString("environment"); name != "" {
		env, err := ParseEnvironment(name)
		if err != nil {
			return nil, err
		}

		config.Environment = env
	}

	if timeout := v.GetDuration("timeout"); timeout > 0 {
		config.Timeout = timeout
	}

	if retries := v.GetInt("max_retries"); retries > 0 {
		config.RetryMax = retries
	}

	if delay := v.GetDuration("retry_delay"); delay > 0 {
		config.RetryDelay = delay
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// fileConfig mirrors Config with YAML-friendly field types.
type fileConfig struct {
	APIKey        string `yaml:"api_key"`
	Environment   string `yaml:"environment"`
	BaseURL       string `yaml:"base_url"`
	Timeout       string `yaml:"timeout"`
	MaxRetries    int    `yaml:"max_retries"`
	RetryDelay    string `yaml:"retry_delay"`
	WebhookSecret string `yaml:"webhook_secret"`
	Debug         bool   `yaml:"debug"`
}

// ConfigFromFile builds a Config from a YAML file. Durations are strings in
// time.ParseDuration syntax ("30s", "1500ms").
func ConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the caller's config file
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw fileConfig

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config := &Config{
		APIKey:        raw.APIKey,
		BaseURL:       raw.BaseURL,
		RetryMax:      raw.MaxRetries,
		WebhookSecret: raw.WebhookSecret,
		Debug:         raw.Debug,
	}

	if raw.Environment != "" {
		env, err := ParseEnvironment(raw.Environment)
		if err != nil {
			return nil, err
		}

		config.Environment = env
	}

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}

		config.Timeout = timeout
	}

	if raw.RetryDelay != "" {
		delay, err := time.ParseDuration(raw.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("parsing retry_delay: %w", err)
		}

		config.RetryDelay = delay
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

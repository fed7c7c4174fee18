package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultPageSize = 100

// StripeConfig holds the catalog provider credentials and fetch settings.
// ApiKey is always resolvable from STRIPE_API_KEY, which takes priority
// over the value in the config file.
type StripeConfig struct {
	ApiKey   string `yaml:"api_key"`
	PageSize int64  `yaml:"page_size"`
}

type AppConfig struct {
	Stripe   StripeConfig   `yaml:"stripe"`
	Postgres PostgresConfig `yaml:"postgres"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	applyEnvOverrides(config)
	return config, nil
}

// GetAppConfig builds the configuration from the environment alone,
// for deployments that ship no config file.
func GetAppConfig() *AppConfig {
	config := &AppConfig{
		Stripe:   StripeConfig{PageSize: defaultPageSize},
		Postgres: GetPostgresConfig(),
	}
	applyEnvOverrides(config)
	return config
}

func applyEnvOverrides(config *AppConfig) {
	if key := os.Getenv("STRIPE_API_KEY"); key != "" {
		config.Stripe.ApiKey = key
	}
	if raw := os.Getenv("STRIPE_PAGE_SIZE"); raw != "" {
		if size, err := strconv.ParseInt(raw, 10, 64); err == nil && size > 0 {
			config.Stripe.PageSize = size
		}
	}
	if config.Stripe.PageSize <= 0 {
		config.Stripe.PageSize = defaultPageSize
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
stripe:
  api_key: sk_test_from_file
  page_size: 25
postgres:
  host: db.internal
  port: "5433"
  user: sync
  password: secret
  dbname: catalog
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk_test_from_file", cfg.Stripe.ApiKey)
	assert.Equal(t, int64(25), cfg.Stripe.PageSize)
	assert.Equal(t, "host=db.internal port=5433 user=sync password=secret dbname=catalog sslmode=disable",
		cfg.Postgres.GetConnectionString())
}

func TestLoadConfigEnvKeyWins(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_from_env")

	path := writeConfigFile(t, `
stripe:
  api_key: sk_test_from_file
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk_test_from_env", cfg.Stripe.ApiKey)
	assert.Equal(t, int64(defaultPageSize), cfg.Stripe.PageSize)
}

func TestGetAppConfigFromEnvironment(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_env_only")
	t.Setenv("STRIPE_PAGE_SIZE", "50")
	t.Setenv("POSTGRES_HOST", "localhost")

	cfg := GetAppConfig()

	assert.Equal(t, "sk_test_env_only", cfg.Stripe.ApiKey)
	assert.Equal(t, int64(50), cfg.Stripe.PageSize)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
}

func TestGetAppConfigMissingKeyStaysEmpty(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "")

	cfg := GetAppConfig()

	assert.Equal(t, "", cfg.Stripe.ApiKey)
	assert.Equal(t, int64(defaultPageSize), cfg.Stripe.PageSize)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/hotel_test")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "usd", cfg.PaymentCurrency)
	assert.Equal(t, 10*time.Second, cfg.PaymentTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Empty(t, cfg.StripeSecretKey)
	assert.Empty(t, cfg.RedisAddr)

	dbCfg := cfg.DB()
	assert.Equal(t, "postgres://localhost/hotel_test", dbCfg.DSN)
	assert.Equal(t, int32(10), dbCfg.MaxConns)
	assert.Equal(t, int32(0), dbCfg.MinConns)
	assert.Equal(t, 5*time.Minute, dbCfg.MaxConnIdleTime)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example/")
	t.Setenv("PAYMENT_CURRENCY", "AUD")
	t.Setenv("PAYMENT_TIMEOUT", "3s")
	t.Setenv("STRIPE_SECRET_KEY", " sk_test_abc ")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "5")
	t.Setenv("DB_MAX_CONN_IDLE", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.ProdOrigins)
	assert.Equal(t, "https://api.example", cfg.PublicBaseURL)
	assert.Equal(t, "aud", cfg.PaymentCurrency)
	assert.Equal(t, 3*time.Second, cfg.PaymentTimeout)
	assert.Equal(t, "sk_test_abc", cfg.StripeSecretKey)
	assert.Equal(t, int32(25), cfg.DB().MaxConns)
	assert.Equal(t, int32(5), cfg.DB().MinConns)
	assert.Equal(t, 90*time.Second, cfg.DB().MaxConnIdleTime)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing DB_DSN", env: map[string]string{"DB_DSN": "", "JWT_SECRET": "s"}},
		{name: "missing JWT_SECRET", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": ""}},
		{name: "bad bcrypt cost", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "BCRYPT_COST": "high"}},
		{name: "bad ttl", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "JWT_ACCESS_TOKEN_TTL": "soon"}},
		{name: "zero payment timeout", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "PAYMENT_TIMEOUT": "0s"}},
		{name: "zero max conns", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "DB_MAX_CONNS": "0"}},
		{name: "min above max", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "DB_MAX_CONNS": "2", "DB_MIN_CONNS": "3"}},
		{name: "bad idle", env: map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "DB_MAX_CONN_IDLE": "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

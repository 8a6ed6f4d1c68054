package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nekogravitycat/hotel-booking-backend/internal/db"
	"github.com/sirupsen/logrus"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       []string
	HTTPAddr          string
	DBDSN             string
	DBMaxConns        int
	DBMinConns        int
	DBMaxConnIdle     time.Duration
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int
	LogLevel          string

	// PublicBaseURL is where the API is reachable from a browser;
	// checkout redirect URLs are built from it.
	PublicBaseURL string

	StripePublicKey string
	StripeSecretKey string
	PaymentCurrency string
	PaymentTimeout  time.Duration

	// RedisAddr switches domain events to Redis streams when set.
	RedisAddr string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	cfg := &Config{}

	// Production origins, comma separated (default: empty)
	cfg.ProdOrigins = splitList(getEnv("PROD_ORIGINS", ""))

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Pool sizing (defaults: 10 max, 0 min, 5m idle)
	var err error
	cfg.DBMaxConns, err = getEnvAsInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	cfg.DBMinConns, err = getEnvAsInt("DB_MIN_CONNS", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	if cfg.DBMaxConns < 1 || cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS must be within 0..DB_MAX_CONNS and DB_MAX_CONNS at least 1")
	}
	cfg.DBMaxConnIdle, err = getEnvAsDuration("DB_MAX_CONN_IDLE", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE: %w", err)
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/")

	// Payment provider. Missing keys are not an error: payments fall back to demo mode.
	cfg.StripePublicKey = strings.TrimSpace(os.Getenv("STRIPE_PUBLIC_KEY"))
	cfg.StripeSecretKey = strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	cfg.PaymentCurrency = strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd"))

	cfg.PaymentTimeout, err = getEnvAsDuration("PAYMENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_TIMEOUT: %w", err)
	}
	if cfg.PaymentTimeout <= 0 {
		return nil, fmt.Errorf("PAYMENT_TIMEOUT must be positive")
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DB returns the database pool settings.
func (c *Config) DB() db.Config {
	return db.Config{
		DSN:             c.DBDSN,
		MaxConns:        int32(c.DBMaxConns),
		MinConns:        int32(c.DBMinConns),
		MaxConnIdleTime: c.DBMaxConnIdle,
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	AppEnv   string
	HTTPPort string

	StorageDriver  string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	StorageTimeout time.Duration

	JWTSecret       string
	CatalogSeedPath string

	AutoDispatchEnabled  bool
	AutoDispatchSchedule string

	ClaimRateLimit float64
	ClaimRateBurst int
}

// LoadConfig reads envFile into the environment when it exists and then
// builds the configuration from the environment.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv applies defaults for unset keys and validates the result.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := envReader{getenv: getenv}
	cfg := Config{
		AppEnv:   env.str("APP_ENV", "development"),
		HTTPPort: env.str("HTTP_PORT", "8080"),

		StorageDriver:  env.str("STORAGE_DRIVER", StorageDriverPostgres),
		DBHost:         env.str("DB_HOST", "localhost"),
		DBPort:         env.str("DB_PORT", "5432"),
		DBUser:         env.str("DB_USER", ""),
		DBPassword:     env.str("DB_PASSWORD", ""),
		DBName:         env.str("DB_NAME", ""),
		DBSslMode:      env.str("DB_SSLMODE", "disable"),
		StorageTimeout: env.duration("STORAGE_TIMEOUT", 3*time.Second),

		JWTSecret:       env.str("JWT_SECRET", ""),
		CatalogSeedPath: env.str("CATALOG_SEED_PATH", ""),

		AutoDispatchEnabled:  env.boolean("AUTO_DISPATCH_ENABLED", false),
		AutoDispatchSchedule: env.str("AUTO_DISPATCH_SCHEDULE", "*/10 * * * * *"),

		ClaimRateLimit: env.float("CLAIM_RATE_LIMIT", 2),
		ClaimRateBurst: env.integer("CLAIM_RATE_BURST", 5),
	}
	if err := errors.Join(append(env.errs, cfg.Validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.DBUser == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_USER and DB_NAME are required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q",
			StorageDriverPostgres, StorageDriverMemory, c.StorageDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.StorageTimeout <= 0 {
		errs = append(errs, errors.New("STORAGE_TIMEOUT must be positive"))
	}
	if c.ClaimRateLimit <= 0 || c.ClaimRateBurst < 1 {
		errs = append(errs, errors.New("CLAIM_RATE_LIMIT must be positive and CLAIM_RATE_BURST at least 1"))
	}
	return errors.Join(errs...)
}

type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) str(key, fallback string) string {
	if v := r.getenv(key); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	v := r.getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
	}
	return d
}

func (r *envReader) boolean(key string, fallback bool) bool {
	v := r.getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
	}
	return b
}

func (r *envReader) float(key string, fallback float64) float64 {
	v := r.getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
	}
	return f
}

func (r *envReader) integer(key string, fallback int) int {
	v := r.getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
	}
	return n
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"bakery/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read from the environment, optionally seeded from a .env file.
// ADMIN_PASSWORD_HASH holds a bcrypt hash; quote it with single quotes in
// .env so the "$" signs are not expanded.
type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisURL       string
	CheckoutKeyTTL time.Duration

	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
	JWTTTL            time.Duration

	CustomerRefreshSchedule string
	SeedCatalog             bool
	Timezone                string
	CORSAllowOrigins        []string
	LogLevel                string
}

// LoadConfig loads envFile when it exists and reads the environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_DRIVER", postgres.DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "bakery")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("CHECKOUT_KEY_TTL", "10m")
	v.SetDefault("JWT_TTL", "12h")
	v.SetDefault("CUSTOMER_REFRESH_SCHEDULE", "0 * * * * *")
	v.SetDefault("SEED_CATALOG", true)
	v.SetDefault("TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		HTTPPort:                v.GetString("HTTP_PORT"),
		DBDriver:                v.GetString("DB_DRIVER"),
		DBHost:                  v.GetString("DB_HOST"),
		DBPort:                  v.GetString("DB_PORT"),
		DBUser:                  v.GetString("DB_USER"),
		DBPassword:              v.GetString("DB_PASSWORD"),
		DBName:                  v.GetString("DB_NAME"),
		DBSslMode:               v.GetString("DB_SSLMODE"),
		RedisURL:                v.GetString("REDIS_URL"),
		CheckoutKeyTTL:          v.GetDuration("CHECKOUT_KEY_TTL"),
		AdminEmail:              v.GetString("ADMIN_EMAIL"),
		AdminPasswordHash:       v.GetString("ADMIN_PASSWORD_HASH"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTTTL:                  v.GetDuration("JWT_TTL"),
		CustomerRefreshSchedule: v.GetString("CUSTOMER_REFRESH_SCHEDULE"),
		SeedCatalog:             v.GetBool("SEED_CATALOG"),
		Timezone:                v.GetString("TIMEZONE"),
		CORSAllowOrigins:        splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:                v.GetString("LOG_LEVEL"),
	}
	return cfg, nil
}

// Database returns the connection settings for the postgres adapter.
func (c Config) Database() postgres.DatabaseConfig {
	return postgres.DatabaseConfig{
		Driver:          c.DBDriver,
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Location resolves Timezone, which is used to cut revenue into days.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

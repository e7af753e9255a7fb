package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Holiday   HolidayConfig
	RateLimit RateLimitConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// HolidayConfig holds the bank-holiday feed settings
type HolidayConfig struct {
	FeedURL string
}

// RateLimitConfig holds the per-IP login rate limit
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "teamtrack"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Holiday = HolidayConfig{
		FeedURL: getEnv("BANK_HOLIDAY_FEED_URL", "https://www.gov.uk/bank-holidays.json"),
	}

	rps, err := strconv.ParseFloat(getEnv("LOGIN_RATE_LIMIT_RPS", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT_BURST: %w", err)
	}
	config.RateLimit = RateLimitConfig{RequestsPerSecond: rps, Burst: burst}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Holiday.FeedURL == "" {
		return fmt.Errorf("BANK_HOLIDAY_FEED_URL is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func loadDotEnv() error {
	return godotenv.Load()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

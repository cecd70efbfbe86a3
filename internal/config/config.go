package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP listener and CORS settings
type ServerConfig struct {
	Host          string
	Port          string
	AllowedOrigin string
	CORSMaxAge    int
	MaxBodyBytes  int64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string
	Path     string
	MaxConns int

	// PostgreSQL only
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	maxConns, err := getEnvInt("DB_MAX_CONNS", 5)
	if err != nil {
		return nil, err
	}
	maxAge, err := getEnvInt("CORS_MAX_AGE", 3000)
	if err != nil {
		return nil, err
	}
	maxBody, err := getEnvInt("HTTP_MAX_BODY_BYTES", 32*1024)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "production"),
		Server: ServerConfig{
			Host:          getEnv("HTTP_HOST", "127.0.0.1"),
			Port:          getEnv("HTTP_PORT", "8080"),
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
			CORSMaxAge:    maxAge,
			MaxBodyBytes:  int64(maxBody),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			Path:     getEnv("DB_PATH", "wordbook.db"),
			MaxConns: maxConns,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordbook"),
			User:     getEnv("DB_USER", "wordbook"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can be used to start the server
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported", c.Database.Driver)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	if c.Server.CORSMaxAge < 0 {
		return fmt.Errorf("CORS_MAX_AGE must not be negative, got %d", c.Server.CORSMaxAge)
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if c.Server.AllowedOrigin == "" {
		return fmt.Errorf("CORS_ALLOWED_ORIGIN is required")
	}
	return nil
}

// IsDevelopment reports whether the development logger should be used
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the host:port the HTTP server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// DSN returns the driver-specific connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Host,
			c.Port,
			c.User,
			c.Password,
			c.Name,
		)
	}

	// Writers wait for the lock instead of failing with SQLITE_BUSY
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return c.Path + "?" + q.Encode()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

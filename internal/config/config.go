package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort        = "9000"
	defaultSessionTTL      = 12 * time.Hour
	defaultShutdownTimeout = 30 * time.Second
	defaultKafkaTopic      = "audit_logs"
	defaultUploadFolder    = "ssr-dashboard-products"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// Bootstrap admin credentials, accepted even when the database is down.
	AdminEmail    string
	AdminPassword string

	SessionTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	UploadEndpoint string
	UploadAPIKey   string
	UploadFolder   string
}

// Load reads .env from the working directory or its parents (if present)
// and builds the configuration from environment variables.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		HTTPPort:        envOr("HTTP_PORT", defaultHTTPPort),
		ShutdownTimeout: defaultShutdownTimeout,
		DBHost:          envOr("DB_HOST", "localhost"),
		DBPort:          5432,
		DBUser:          os.Getenv("POSTGRES_USER"),
		DBPassword:      os.Getenv("POSTGRES_PASSWORD"),
		DBName:          os.Getenv("POSTGRES_DB"),
		AdminEmail:      envOr("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		SessionTTL:      defaultSessionTTL,
		KafkaTopic:      envOr("KAFKA_TOPIC", defaultKafkaTopic),
		UploadEndpoint:  os.Getenv("UPLOAD_ENDPOINT"),
		UploadAPIKey:    os.Getenv("UPLOAD_API_KEY"),
		UploadFolder:    envOr("UPLOAD_FOLDER", defaultUploadFolder),
	}

	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT %q: %w", portStr, err)
		}
		cfg.DBPort = port
	}

	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", ttlStr, err)
		}
		cfg.SessionTTL = ttl
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD must be set")
	}

	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	candidates := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, path := range candidates {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	Host            string        `validate:"omitempty,ip"`
	Port            string        `validate:"required,numeric"`
	Environment     string        `validate:"oneof=development staging production test"`
	LogLevel        string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	AllowOrigins    []string      `validate:"min=1"`

	StoreDriver  string `validate:"oneof=mongo firestore memory"`
	MongoURI     string `validate:"required_if=StoreDriver mongo"`
	DatabaseName string `validate:"required_if=StoreDriver mongo"`

	FirebaseProject            string `validate:"required_if=StoreDriver firestore"`
	FirebaseServiceKey         string
	FirebaseServiceAccountPath string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "3000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: time.Duration(getEnvAsInt64("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		AllowOrigins:    splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),

		StoreDriver:  getEnv("STORE_DRIVER", StoreMongo),
		MongoURI:     getEnv("MONGODB_URI", ""),
		DatabaseName: getEnv("DB_NAME", "smart_db"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceKey:         getEnv("FIREBASE_SERVICE_KEY", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
	}

	if config.MongoURI == "" {
		config.MongoURI = buildMongoURI(
			getEnv("DB_USERNAME", ""),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", ""),
			getEnv("DB_APP_NAME", "Cluster0"),
		)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the struct tags above.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// buildMongoURI assembles an Atlas SRV connection string from credentials.
// It returns "" when no host is configured.
func buildMongoURI(username, password, host, appName string) string {
	if host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "mongodb+srv",
		Host:   host,
		Path:   "/",
	}
	if username != "" {
		u.User = url.UserPassword(username, password)
	}
	if appName != "" {
		u.RawQuery = url.Values{"appName": {appName}}.Encode()
	}
	return u.String()
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

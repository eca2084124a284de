package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting the portal reads from the environment.
type Config struct {
	Port    string
	GinMode string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
	DBPath     string // sqlite file

	UploadDir string

	SessionSecret string
	SessionTTL    time.Duration // zero means a browser-session cookie with no expiry claim
	CookieSecure  bool

	LogFile  string
	LogLevel string

	SeedBankName   string
	SeedAdminEmail string
	SeedAdminPass  string
}

// AppConfig is the process-wide configuration, set by LoadConfig.
var AppConfig *Config

const defaultSessionSecret = "change-me"

// ErrDefaultSessionSecret means sessions would be signed with a publicly known key.
var ErrDefaultSessionSecret = errors.New("SESSION_SECRET must be set when GIN_MODE=release")

// LoadConfig reads .env (if present) and the environment into AppConfig.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found – relying on env vars")
	}

	AppConfig = &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "loan_kyc"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),
		DBPath:     getEnv("DB_PATH", "loan_kyc.db"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    getEnvDuration("SESSION_TTL", 0),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),

		LogFile:  getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SeedBankName:   getEnv("SEED_BANK_NAME", "Demo Cooperative Bank"),
		SeedAdminEmail: getEnv("SEED_ADMIN_EMAIL", "admin@demo.com"),
		SeedAdminPass:  getEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}

	if AppConfig.SessionSecret == defaultSessionSecret {
		logrus.Warn("Using default SESSION_SECRET. Set it in your environment.")
	}
	return AppConfig
}

// Validate reports settings the HTTP server must not start with.
func (c *Config) Validate() error {
	if c.GinMode == "release" && (c.SessionSecret == defaultSessionSecret || c.SessionSecret == "") {
		return ErrDefaultSessionSecret
	}
	return nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithError(err).Warnf("config: %s is not a boolean, using %v", key, defaultValue)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, exists := os.LookupEnv(key)
	if !exists || v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithError(err).Warnf("config: %s is not a duration, using %s", key, defaultValue)
		return defaultValue
	}
	return d
}

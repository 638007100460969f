package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	Environment string
	ServerURL   string
	MySQLDSN    string
	ResetDB     bool
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string

	GoogleClientID string

	Mail MailConfig

	LogLevel  string
	LogFormat string
}

// MailConfig describes the outbound SMTP account used for notifications.
type MailConfig struct {
	Host        string
	Port        int
	User        string
	AppPassword string
	FromName    string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "5000"),
		Environment:    getEnv("APP_ENV", "development"),
		ServerURL:      getEnv("SERVER_URL", "localhost"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/outlaw?charset=utf8mb4&parseTime=True&loc=UTC"),
		ResetDB:        getEnvBool("RESET_DB", false),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		Mail: MailConfig{
			Host:        getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:        getEnvInt("EMAIL_PORT", 465),
			User:        os.Getenv("EMAIL_USER"),
			AppPassword: os.Getenv("EMAIL_APP_PASSWORD"),
			FromName:    getEnv("EMAIL_FROM_NAME", "Outlaw Surveys"),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// MaskedPassword returns the app password with everything but the last four characters hidden.
func (m MailConfig) MaskedPassword() string {
	if m.AppPassword == "" {
		return "not set"
	}
	if len(m.AppPassword) <= 4 {
		return "****"
	}
	return "****" + m.AppPassword[len(m.AppPassword)-4:]
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Server holds configuration for the backend service.
type Server struct {
	HTTPAddr  string
	DBDSN     string
	LogLevel  string
	LogFormat string
}

// Gateway holds configuration for the API gateway.
type Gateway struct {
	HTTPAddr       string
	ServerURL      string
	AllowedOrigins string
	ClientTimeout  time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadServer loads backend configuration from .env (optional) and
// environment variables.
func LoadServer() (*Server, error) {
	loadDotenv()

	cfg := &Server{
		HTTPAddr:  getEnv("SERVER_ADDR", ":9090"),
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	return cfg, nil
}

// LoadGateway loads gateway configuration from .env (optional) and
// environment variables.
func LoadGateway() (*Gateway, error) {
	loadDotenv()

	cfg := &Gateway{
		HTTPAddr:       getEnv("GATEWAY_ADDR", ":8080"),
		ServerURL:      getEnv("SHAREIT_SERVER_URL", "http://localhost:9090"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	timeoutStr := getEnv("CLIENT_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CLIENT_TIMEOUT: %w", err)
	}
	cfg.ClientTimeout = timeout

	return cfg, nil
}

func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
}

// getEnv returns the value of the environment variable if set, otherwise
// the provided default.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

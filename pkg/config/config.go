package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Session  SessionConfig
	Redis    RedisConfig
	Location LocationConfig
	Log      LogConfig
}

// ServerConfig holds the local gateway configuration
type ServerConfig struct {
	Host string
	Port int
}

// APIConfig holds the backend REST API configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds session persistence configuration
type SessionConfig struct {
	Backend  string // file | redis | memory
	FilePath string
	RedisKey string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LocationConfig holds device location provider configuration
type LocationConfig struct {
	Provider  string // static | none
	Latitude  float64
	Longitude float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	ServiceName string
	Environment string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "127.0.0.1"),
			Port: getEnvAsInt("SERVER_PORT", 3000),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
			Timeout: time.Duration(getEnvAsInt("API_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", "file"),
			FilePath: getEnv("SESSION_FILE", defaultSessionFile()),
			RedisKey: getEnv("SESSION_REDIS_KEY", "hospitalcompare:session"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Location: LocationConfig{
			Provider:  getEnv("LOCATION_PROVIDER", "none"),
			Latitude:  getEnvAsFloat("LOCATION_LATITUDE", 0),
			Longitude: getEnvAsFloat("LOCATION_LONGITUDE", 0),
		},
		Log: LogConfig{
			ServiceName: getEnv("LOG_SERVICE_NAME", "hospitalcompare"),
			Environment: getEnv("APP_ENV", "development"),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return dir + "/hospitalcompare/session.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

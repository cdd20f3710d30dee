package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application-level configuration
type Config struct {
	// API
	APIHost    string
	APIPort    int
	Debug      bool
	AppVersion string

	// Model and dataset locations
	ModelPath     string
	ModelMetaPath string
	DataPath      string

	// CORS
	CORSOrigins []string

	// Prediction cache; an empty RedisAddr selects the in-process cache
	RedisAddr string
	CacheTTL  time.Duration
}

const defaultCORSOrigins = `["http://localhost:3000", "http://localhost:5173"]`

// Load reads configuration from environment variables or falls back to defaults
func Load() (*Config, error) {
	cfg := &Config{
		APIHost:       getEnv("API_HOST", "0.0.0.0"),
		APIPort:       getEnvInt("API_PORT", 8000),
		Debug:         getEnvBool("DEBUG", true),
		AppVersion:    getEnv("APP_VERSION", "1.0.0"),
		ModelPath:     getEnv("MODEL_PATH", "../CarPriceAI/outputs/models/catboost_fiyat_model.json"),
		ModelMetaPath: getEnv("MODEL_META_PATH", "../CarPriceAI/outputs/models/model_meta.json"),
		DataPath:      getEnv("DATA_PATH", "../CarPriceAI/outputs/cleaned_data.csv"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
	}

	if err := json.Unmarshal([]byte(getEnv("CORS_ORIGINS", defaultCORSOrigins)), &cfg.CORSOrigins); err != nil {
		return nil, fmt.Errorf("CORS_ORIGINS must be a JSON list of strings: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("PREDICTION_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREDICTION_CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

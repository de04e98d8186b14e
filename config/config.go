package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	App      AppConfig
	Features FeatureConfig
}

type ServerConfig struct {
	Port string
}

// UpstreamConfig points at the GeoProfit analysis engine.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// FeatureConfig holds runtime capability flags. DemoMode makes analysis
// endpoints serve deterministic synthetic data instead of failing when the
// engine is unreachable; CompareUseLive routes comparison metrics through
// the engine's compare endpoint instead of synthesizing them locally.
type FeatureConfig struct {
	DemoMode         bool
	CompareUseLive   bool
	AnalysisCacheTTL time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("ENGINE_BASE_URL", "http://localhost:8000"),
			Timeout: time.Duration(getEnvAsInt("ENGINE_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "0.1.0"),
		},
		Features: FeatureConfig{
			DemoMode:         getEnvAsBool("DEMO_MODE", false),
			CompareUseLive:   getEnvAsBool("COMPARE_USE_LIVE", false),
			AnalysisCacheTTL: time.Duration(getEnvAsInt("ANALYSIS_CACHE_TTL_MINUTES", 15)) * time.Minute,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("ENGINE_BASE_URL is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	JMA     JMAConfig
	P2P     P2PConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	AI      AIConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Shelter ShelterConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type JMAConfig struct {
	BaseURL          string
	Timeout          time.Duration
	FetchConcurrency int
}

type P2PConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// AIConfig selects the active provider and fallback behavior.
// Provider is one of "gemini", "openai", "auto" (gemini first, then openai).
type AIConfig struct {
	Provider         string
	EnableFallback   bool
	TranslateTimeout time.Duration
	GenerateTimeout  time.Duration
}

// CacheConfig selects the translation cache backend: "file" or "redis".
type CacheConfig struct {
	Backend string
	File    string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ShelterConfig points at the evacuation site dataset. An empty or missing
// file falls back to the built-in sample set.
type ShelterConfig struct {
	DataFile string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvInt("HTTP_PORT", 8000),
		},
		JMA: JMAConfig{
			BaseURL:          getEnv("JMA_BASE_URL", "https://www.jma.go.jp/bosai"),
			Timeout:          getEnvDuration("JMA_TIMEOUT_SECONDS", 10) * time.Second,
			FetchConcurrency: getEnvInt("WARNING_FETCH_CONCURRENCY", 10),
		},
		P2P: P2PConfig{
			BaseURL: getEnv("P2P_BASE_URL", "https://api.p2pquake.net/v2"),
			Timeout: getEnvDuration("P2P_TIMEOUT_SECONDS", 10) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		},
		AI: AIConfig{
			Provider:         getEnv("AI_PROVIDER", "auto"),
			EnableFallback:   getEnvBool("AI_ENABLE_FALLBACK", true),
			TranslateTimeout: getEnvDuration("AI_TIMEOUT_TRANSLATE_SECONDS", 15) * time.Second,
			GenerateTimeout:  getEnvDuration("AI_TIMEOUT_GENERATE_SECONDS", 30) * time.Second,
		},
		Cache: CacheConfig{
			Backend: getEnv("CACHE_BACKEND", "file"),
			File:    getEnv("TRANSLATION_CACHE_FILE", "data/translation_cache.json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Shelter: ShelterConfig{
			DataFile: getEnv("SHELTER_DATA_FILE", "data/shelters.json"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JMA.BaseURL == "" {
		return fmt.Errorf("JMA_BASE_URL is required")
	}
	if c.P2P.BaseURL == "" {
		return fmt.Errorf("P2P_BASE_URL is required")
	}
	if c.JMA.FetchConcurrency < 1 {
		return fmt.Errorf("WARNING_FETCH_CONCURRENCY must be at least 1")
	}
	switch c.AI.Provider {
	case "gemini", "openai", "auto":
	default:
		return fmt.Errorf("AI_PROVIDER must be one of gemini, openai, auto")
	}
	switch c.Cache.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("CACHE_BACKEND must be file or redis")
	}
	if c.Cache.Backend == "file" && c.Cache.File == "" {
		return fmt.Errorf("TRANSLATION_CACHE_FILE is required for the file backend")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds))
}

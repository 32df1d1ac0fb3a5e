package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	LLM      LLMConfig
	Audit    AuditConfig
	App      AppConfig

	// Warnings collects settings that fell back to defaults. Config is loaded before
	// the logger exists, so the caller logs them.
	Warnings []string
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// DatabaseConfig holds either a full DSN or the discrete parts to build one.
type DatabaseConfig struct {
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	MaxConns int
}

// RedisConfig is optional; an empty Addr disables event publishing.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LLMConfig struct {
	Provider     string
	APIKey       string
	BaseURL      string
	Model        string
	Profile      string
	ProfilesFile string
	Timeout      time.Duration
}

type AuditConfig struct {
	Schedule string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg := FromEnv()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring .env: %v", envErr))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv reads the configuration from the environment without validating it.
func FromEnv() *Config {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openai"))

	var warnings []string
	getEnvAsInt := func(key string, defaultValue int) int {
		value, err := parseEnvInt(key, defaultValue)
		if err != nil {
			warnings = append(warnings, err.Error())
		}
		return value
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "brandkit"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		LLM: LLMConfig{
			Provider:     provider,
			APIKey:       apiKey(provider),
			BaseURL:      getEnv("LLM_BASE_URL", ""),
			Model:        getEnv("LLM_MODEL", ""),
			Profile:      getEnv("BRAND_PROFILE", "studio"),
			ProfilesFile: getEnv("PROFILES_FILE", ""),
			Timeout:      time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Audit: AuditConfig{
			Schedule: getEnv("AUDIT_SCHEDULE", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}
	cfg.Warnings = warnings
	return cfg
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("DB_DSN or DB_HOST is required")
	}

	switch c.LLM.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("LLM_PROVIDER must be openai or gemini, got %q", c.LLM.Provider)
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

// apiKey prefers LLM_API_KEY and falls back to the provider's conventional variable.
func apiKey(provider string) string {
	if v := getEnv("LLM_API_KEY", ""); v != "" {
		return v
	}
	if provider == "gemini" {
		return getEnv("GEMINI_API_KEY", "")
	}
	return getEnv("OPENAI_API_KEY", "")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseEnvInt returns defaultValue, with an error describing the fallback, when the
// variable is set but not an integer.
func parseEnvInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid integer %q for %s, using default %d", valueStr, key, defaultValue)
	}

	return value, nil
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Research  ResearchConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	AzureOpenAI   string
	AzureEndpoint string
	Perplexity    string
}

type AIConfig struct {
	CompletionProvider string // "azure" or "demo"
	CompletionModel    string // e.g. "gpt-4o-mini"
	SearchProvider     string // "perplexity" or "demo"
}

type ResearchConfig struct {
	SubagentCount        int
	AutoResearch         bool
	AutoResearchInterval time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	PerIPPerHour  int
	GlobalPerHour int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			AzureOpenAI:   getEnv("AZURE_OPENAI_API_KEY", ""),
			AzureEndpoint: getEnv("AZURE_OPENAI_ENDPOINT", ""),
			Perplexity:    getEnv("PERPLEXITY_API_KEY", ""),
		},
		Ai: AIConfig{
			CompletionProvider: getEnv("COMPLETION_PROVIDER", "azure"),
			CompletionModel:    getEnv("COMPLETION_MODEL", "gpt-4o-mini"),
			SearchProvider:     getEnv("SEARCH_PROVIDER", "perplexity"),
		},
		Research: ResearchConfig{
			SubagentCount:        getEnvAsInt("RESEARCH_SUBAGENT_COUNT", 4),
			AutoResearch:         getEnvAsBool("AUTO_RESEARCH", false),
			AutoResearchInterval: getEnvAsDuration("AUTO_RESEARCH_INTERVAL", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", true),
			PerIPPerHour:  getEnvAsInt("RATE_LIMIT_PER_IP_PER_HOUR", 10),
			GlobalPerHour: getEnvAsInt("RATE_LIMIT_GLOBAL_PER_HOUR", 100),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

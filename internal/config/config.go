// Package config loads application settings from environment variables.
//
// # Environment Variables
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//
// ## Providers
//   - YANDEX_WORDSTAT_TOKEN: OAuth token for the Yandex keyword API (empty disables live lookups)
//   - GEMINI_API_KEY: Google Gemini API key (empty disables AI suggestions)
//   - GEMINI_CHAT_MODEL: Model for keyword suggestions (default: gemini-2.0-flash)
//   - PROVIDER_MODE: "synthetic" or "live" (default: synthetic)
//
// ## Research
//   - RESEARCH_VOLUME_MIN: Minimum monthly volume kept (default: 500)
//   - RESEARCH_DIFFICULTY_MAX: Maximum difficulty kept (default: 60)
//   - RESEARCH_CACHE_TTL_MINUTES: Provider response cache TTL (default: 30)
//
// ## Files
//   - STRATEGY_FILE: Path to the keyword strategy markdown
//   - COMPETITOR_FILE: Path to the competitor analysis markdown
//   - OUTPUT_DIR: Directory for generated strategy updates (default: .)
//
// ## Audit
//   - AUDIT_OFFLINE: Skip live fetches and use reference findings (default: false)
//
// ## Typesense
//   - TYPESENSE_HOST: Typesense server host (default: localhost)
//   - TYPESENSE_PORT: Server port (default: 8108)
//   - TYPESENSE_API_KEY: API key (empty disables keyword indexing)
//   - TYPESENSE_PROTOCOL: http/https (default: http)
//
// ## Tracing
//   - TRACING_ENABLED: Enable OTLP trace export (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ProviderModeSynthetic selects the deterministic offline provider.
	ProviderModeSynthetic = "synthetic"
	// ProviderModeLive selects Wordstat plus Gemini, as configured.
	ProviderModeLive = "live"
)

type Config struct {
	ServerPort string

	// Provider configuration
	YandexWordstatToken string
	GeminiAPIKey        string
	GeminiChatModel     string
	ProviderMode        string

	// Research thresholds
	ResearchVolumeMin       int
	ResearchDifficultyMax   int
	ResearchCacheTTLMinutes int

	// Project files
	StrategyFile   string
	CompetitorFile string
	OutputDir      string

	// Audit configuration
	AuditOffline bool

	// Typesense configuration
	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		YandexWordstatToken: getEnv("YANDEX_WORDSTAT_TOKEN", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:     getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		ProviderMode:        getEnv("PROVIDER_MODE", ProviderModeSynthetic),

		ResearchVolumeMin:       getEnvInt("RESEARCH_VOLUME_MIN", 500),
		ResearchDifficultyMax:   getEnvInt("RESEARCH_DIFFICULTY_MAX", 60),
		ResearchCacheTTLMinutes: getEnvInt("RESEARCH_CACHE_TTL_MINUTES", 30),

		StrategyFile:   getEnv("STRATEGY_FILE", "russian_keyword_strategy.md"),
		CompetitorFile: getEnv("COMPETITOR_FILE", "competitive_analysis_russia.md"),
		OutputDir:      getEnv("OUTPUT_DIR", "."),

		AuditOffline: getEnv("AUDIT_OFFLINE", "false") == "true",

		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

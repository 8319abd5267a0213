package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel            OTelConfig
	Oracle          LLMConfig
	Session         SessionConfig
	Upload          UploadConfig
	Env             string
	Port            string
	TraceHeaderName string
	NodeID          int64
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// LLMConfig selects the model backend used as the analysis oracle.
// An empty Provider means the rule engine answers alone.
type LLMConfig struct {
	Provider  string // "openai", "anthropic" or ""
	APIKey    string
	BaseURL   string // Optional: for custom endpoints
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type SessionConfig struct {
	TTL             time.Duration
	JanitorInterval time.Duration
}

type UploadConfig struct {
	MaxBytes int64
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeCLI    ServiceType = "cli"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-haiku-20240307",
}

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.server for the API server
//   - .env.cli for the command line analyzer
//
// Falls back to .env if service-specific file doesn't exist.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("REVCHECK_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:             getEnv("REVCHECK_ENV", "development"),
		Port:            getEnv("PORT", "8082"),
		TraceHeaderName: getEnv("TRACE_HEADER_NAME", "X-Trace-Id"),
		NodeID:          int64(getEnvInt("NODE_ID", 1)),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "revcheck"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Oracle: oracleConfig(),
		Session: SessionConfig{
			TTL:             getEnvDuration("SESSION_TTL", 2*time.Hour),
			JanitorInterval: getEnvDuration("SESSION_JANITOR_INTERVAL", 5*time.Minute),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 16<<20)),
		},
	}

	switch cfg.Oracle.Provider {
	case "", ProviderOpenAI, ProviderAnthropic:
	default:
		return Config{}, fmt.Errorf("ORACLE_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderAnthropic, cfg.Oracle.Provider)
	}

	if cfg.NodeID < 0 || cfg.NodeID > 1023 {
		return Config{}, fmt.Errorf("NODE_ID must be between 0 and 1023, got %d", cfg.NodeID)
	}

	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}
	if cfg.Session.JanitorInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_JANITOR_INTERVAL must be positive, got %s", cfg.Session.JanitorInterval)
	}

	return cfg, nil
}

// oracleConfig honours an explicit ORACLE_PROVIDER, otherwise prefers an
// Anthropic key over an OpenAI key.
func oracleConfig() LLMConfig {
	provider := getEnv("ORACLE_PROVIDER", "")
	if provider == "" {
		switch {
		case getEnv("ANTHROPIC_API_KEY", "") != "":
			provider = ProviderAnthropic
		case getEnv("OPENAI_API_KEY", "") != "":
			provider = ProviderOpenAI
		}
	}

	apiKey := getEnv("ORACLE_API_KEY", "")
	if apiKey == "" {
		switch provider {
		case ProviderAnthropic:
			apiKey = getEnv("ANTHROPIC_API_KEY", "")
		case ProviderOpenAI:
			apiKey = getEnv("OPENAI_API_KEY", "")
		}
	}

	return LLMConfig{
		Provider:  provider,
		APIKey:    apiKey,
		BaseURL:   getEnv("ORACLE_BASE_URL", ""),
		Model:     getEnv("ORACLE_MODEL", defaultModels[provider]),
		MaxTokens: getEnvInt("ORACLE_MAX_TOKENS", 1024),
		Timeout:   getEnvDuration("ORACLE_TIMEOUT", 30*time.Second),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c LLMConfig) Enabled() bool {
	return c.APIKey != "" && (c.Provider == ProviderOpenAI || c.Provider == ProviderAnthropic)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// Package config loads the Spark runtime settings from environment
// variables. The .env file (if any) is loaded by main before this
// package reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// PreflightMode selects how boundary classifications affect the turn.
type PreflightMode string

const (
	// PreflightModeSignals lets boundary signals flow into the system
	// prompt without gating the request. Default.
	PreflightModeSignals PreflightMode = "signals"
	// PreflightModeGate is the legacy behavior: a canned deflection is
	// emitted instead of a model call. Retained for rollback.
	PreflightModeGate PreflightMode = "gate"
)

// Settings holds every recognized configuration option.
type Settings struct {
	// Supabase project: the database behind the store and the identity
	// provider whose JWKS endpoint verifies admin tokens.
	SupabaseURL        string
	SupabaseServiceKey string

	// Provider API keys, resolved per model prefix.
	GoogleAIAPIKey  string
	MoonshotAPIKey  string
	GroqAPIKey      string
	OpenAIAPIKey    string

	// Model identifiers, "provider/model" form.
	PrimaryModel   string
	FallbackModel  string
	PreflightModel string

	// Embeddings.
	EmbeddingModel      string
	EmbeddingDimensions int

	// Conversation behavior.
	MaxTurnsDefault        int
	WindDownTurns          int
	MinTurnsBeforeWindDown int
	ContextTurns           int
	RateLimitRPM           int
	AdminRateLimitRPM      int
	MaxDocChunks           int
	DocMatchThreshold      float64
	SessionTimeout         time.Duration

	// Retention sweep.
	CleanupInterval time.Duration
	EventRetention  time.Duration

	// HTTP edge.
	AdminCORSOrigins string
	Host             string
	Port             int

	PreflightMode PreflightMode
}

// Load reads settings from the environment, applying documented
// defaults. Only the Supabase pair and the OpenAI key are required.
func Load() (*Settings, error) {
	s := &Settings{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		GoogleAIAPIKey:     os.Getenv("GOOGLE_AI_API_KEY"),
		MoonshotAPIKey:     os.Getenv("MOONSHOT_API_KEY"),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),

		PrimaryModel:   getEnv("SPARK_PRIMARY_MODEL", "gemini/gemini-3-flash-preview"),
		FallbackModel:  getEnv("SPARK_FALLBACK_MODEL", "moonshot/kimi-k2.5"),
		PreflightModel: getEnv("SPARK_PREFLIGHT_MODEL", "groq/llama-3.1-8b-instant"),

		EmbeddingModel:      getEnv("EMBEDDING_MODEL", "text-embedding-3-large"),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 2000),

		MaxTurnsDefault:        getEnvInt("SPARK_MAX_TURNS_DEFAULT", 20),
		WindDownTurns:          getEnvInt("SPARK_WIND_DOWN_TURNS", 3),
		MinTurnsBeforeWindDown: getEnvInt("SPARK_MIN_TURNS_BEFORE_WINDDOWN", 5),
		ContextTurns:           getEnvInt("SPARK_CONTEXT_TURNS", 8),
		RateLimitRPM:           getEnvInt("SPARK_RATE_LIMIT_RPM", 30),
		AdminRateLimitRPM:      getEnvInt("ADMIN_RATE_LIMIT_RPM", 60),
		MaxDocChunks:           getEnvInt("SPARK_MAX_DOC_CHUNKS", 5),
		DocMatchThreshold:      getEnvFloat("SPARK_DOC_MATCH_THRESHOLD", 0.3),
		SessionTimeout:         time.Duration(getEnvInt("SPARK_SESSION_TIMEOUT_MINUTES", 30)) * time.Minute,

		CleanupInterval: time.Duration(getEnvInt("SPARK_CLEANUP_INTERVAL_MINUTES", 10)) * time.Minute,
		EventRetention:  time.Duration(getEnvInt("SPARK_EVENT_RETENTION_DAYS", 90)) * 24 * time.Hour,

		AdminCORSOrigins: getEnv("ADMIN_CORS_ORIGINS", "https://app.trykin.ai"),
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnvInt("PORT", 8000),
	}

	switch mode := PreflightMode(getEnv("SPARK_PREFLIGHT_MODE", string(PreflightModeSignals))); mode {
	case PreflightModeSignals, PreflightModeGate:
		s.PreflightMode = mode
	default:
		return nil, fmt.Errorf("invalid SPARK_PREFLIGHT_MODE %q: must be signals or gate", mode)
	}

	if s.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if s.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if s.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required (embeddings)")
	}

	return s, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini/gemini-3-flash-preview", s.PrimaryModel)
	assert.Equal(t, "moonshot/kimi-k2.5", s.FallbackModel)
	assert.Equal(t, "groq/llama-3.1-8b-instant", s.PreflightModel)
	assert.Equal(t, 2000, s.EmbeddingDimensions)
	assert.Equal(t, 20, s.MaxTurnsDefault)
	assert.Equal(t, 3, s.WindDownTurns)
	assert.Equal(t, 5, s.MinTurnsBeforeWindDown)
	assert.Equal(t, 8, s.ContextTurns)
	assert.Equal(t, 30, s.RateLimitRPM)
	assert.Equal(t, 60, s.AdminRateLimitRPM)
	assert.Equal(t, 5, s.MaxDocChunks)
	assert.InDelta(t, 0.3, s.DocMatchThreshold, 1e-9)
	assert.Equal(t, PreflightModeSignals, s.PreflightMode)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")
}

func TestLoad_PreflightModeGate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPARK_PREFLIGHT_MODE", "gate")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, PreflightModeGate, s.PreflightMode)
}

func TestLoad_PreflightModeInvalid(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPARK_PREFLIGHT_MODE", "both")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPARK_MAX_TURNS_DEFAULT", "not-a-number")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, s.MaxTurnsDefault)
}

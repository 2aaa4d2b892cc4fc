package config

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PADEREWSKI_BASE_URL", "SECONDARY_BASE_URL", "PARTICIPANTS_URL", "JURY_URL",
		"FETCH_TIMEOUT_SECONDS", "HISTORY_EXCERPT_RUNES", "LLM_PROVIDER", "LLM_MODEL",
		"LLM_MAX_TOKENS", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"YOUTUBE_API_KEY", "YOUTUBE_QUERY", "YOUTUBE_MAX_RESULTS", "SERVER_ADDR",
		"CORS_ORIGINS", "LOG_LEVEL", "LOG_FILE", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://paderewskicompetition.pl/", cfg.Competition.BaseURL)
	assert.Equal(t, "https://www.konkurspaderewskiego.pl/uczestnicy-xiii-konkursu-2025/", cfg.Competition.ParticipantsURL)
	assert.Equal(t, "https://paderewskicompetition.pl/jury/", cfg.Competition.JuryURL)
	assert.Equal(t, 12*time.Second, cfg.Competition.FetchTimeout)
	assert.Equal(t, 1500, cfg.Competition.HistoryRunes)
	assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "", cfg.LLM.Model)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "Paderewski Piano Competition 2025", cfg.YouTube.DefaultQuery)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", " OpenAI ")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ORIGINS", "http://a, http://b")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 3*time.Second, cfg.Competition.FetchTimeout)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Server.CORSOrigins)
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "mistral")

	_, err := Load()
	require.Error(t, err)

	var cfgErr *apperrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "LLM_PROVIDER", cfgErr.Field)
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	cfg := &Config{
		Competition: CompetitionConfig{BaseURL: "a", ParticipantsURL: "b", JuryURL: "c"},
		LLM:         LLMConfig{MaxTokens: 10},
	}
	assert.Error(t, cfg.Validate())
}

func TestFallbackBases(t *testing.T) {
	cfg := &Config{Competition: CompetitionConfig{
		BaseURL:      "https://paderewskicompetition.pl/",
		SecondaryURL: "https://www.konkurspaderewskiego.pl",
	}}
	assert.Equal(t, []string{"https://paderewskicompetition.pl", "https://www.konkurspaderewskiego.pl"}, cfg.FallbackBases())

	cfg.Competition.SecondaryURL = "https://paderewskicompetition.pl"
	assert.Equal(t, []string{"https://paderewskicompetition.pl"}, cfg.FallbackBases())
}

func TestDiagnostics(t *testing.T) {
	cfg := &Config{
		LLM:       LLMConfig{Provider: ProviderAnthropic},
		Anthropic: AnthropicConfig{APIKey: "k"},
		OpenAI:    OpenAIConfig{APIKey: "o"},
	}

	d := cfg.Diagnostics("claude-sonnet-4-5-20250929")
	assert.Equal(t, "anthropic", d.Provider)
	assert.Equal(t, "claude-sonnet-4-5-20250929", d.Model)
	assert.Equal(t, VendorStatus{Ready: true, KeyPresent: true}, d.Anthropic)
	assert.Equal(t, VendorStatus{Ready: false, KeyPresent: true}, d.OpenAI)
	assert.Equal(t, VendorStatus{}, d.Gemini)
}

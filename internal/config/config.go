package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
)

// Supported LLM_PROVIDER values.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

type Config struct {
	Competition CompetitionConfig
	LLM         LLMConfig
	Anthropic   AnthropicConfig
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
	YouTube     YouTubeConfig
	Server      ServerConfig
	Logging     LoggingConfig
}

type CompetitionConfig struct {
	BaseURL         string
	SecondaryURL    string
	ParticipantsURL string
	JuryURL         string
	FetchTimeout    time.Duration
	HistoryRunes    int
}

type LLMConfig struct {
	Provider  string
	Model     string
	MaxTokens int
}

type AnthropicConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey string
}

type GeminiConfig struct {
	APIKey string
}

type YouTubeConfig struct {
	APIKey       string
	DefaultQuery string
	MaxResults   int
}

type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

type LoggingConfig struct {
	Level  string
	File   string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Competition: CompetitionConfig{
			BaseURL:         getEnv("PADEREWSKI_BASE_URL", "https://paderewskicompetition.pl/"),
			SecondaryURL:    getEnv("SECONDARY_BASE_URL", "https://www.konkurspaderewskiego.pl"),
			ParticipantsURL: getEnv("PARTICIPANTS_URL", "https://www.konkurspaderewskiego.pl/uczestnicy-xiii-konkursu-2025/"),
			JuryURL:         getEnv("JURY_URL", "https://paderewskicompetition.pl/jury/"),
			FetchTimeout:    getEnvDuration("FETCH_TIMEOUT_SECONDS", 12*time.Second),
			HistoryRunes:    getEnvInt("HISTORY_EXCERPT_RUNES", 1500),
		},
		LLM: LLMConfig{
			Provider:  strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", ProviderAnthropic))),
			Model:     getEnv("LLM_MODEL", ""),
			MaxTokens: getEnvInt("LLM_MAX_TOKENS", 1024),
		},
		Anthropic: AnthropicConfig{
			APIKey: getEnv("ANTHROPIC_API_KEY", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		YouTube: YouTubeConfig{
			APIKey:       getEnv("YOUTUBE_API_KEY", ""),
			DefaultQuery: getEnv("YOUTUBE_QUERY", "Paderewski Piano Competition 2025"),
			MaxResults:   getEnvInt("YOUTUBE_MAX_RESULTS", 5),
		},
		Server: ServerConfig{
			Addr:        getEnv("SERVER_ADDR", ":8000"),
			CORSOrigins: parseCommaSeparated(getEnv("CORS_ORIGINS", "*")),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			File:   getEnv("LOG_FILE", ""),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Competition.BaseURL == "" {
		return apperrors.NewConfigError("PADEREWSKI_BASE_URL", "PADEREWSKI_BASE_URL is required")
	}
	if c.Competition.ParticipantsURL == "" {
		return apperrors.NewConfigError("PARTICIPANTS_URL", "PARTICIPANTS_URL is required")
	}
	if c.Competition.JuryURL == "" {
		return apperrors.NewConfigError("JURY_URL", "JURY_URL is required")
	}
	if c.Competition.FetchTimeout <= 0 {
		return apperrors.NewConfigError("FETCH_TIMEOUT_SECONDS", "FETCH_TIMEOUT_SECONDS must be positive")
	}
	if c.LLM.MaxTokens <= 0 {
		return apperrors.NewConfigError("LLM_MAX_TOKENS", "LLM_MAX_TOKENS must be positive")
	}
	switch c.LLM.Provider {
	case "", ProviderAnthropic, ProviderOpenAI, ProviderGemini:
	default:
		return apperrors.NewConfigError("LLM_PROVIDER", fmt.Sprintf("unsupported LLM_PROVIDER %q", c.LLM.Provider))
	}
	return nil
}

// FallbackBases lists the known domains probed after the primary pages.
func (c *Config) FallbackBases() []string {
	bases := []string{strings.TrimRight(c.Competition.BaseURL, "/")}
	if secondary := strings.TrimRight(c.Competition.SecondaryURL, "/"); secondary != "" && secondary != bases[0] {
		bases = append(bases, secondary)
	}
	return bases
}

// VendorStatus reports whether a vendor is usable.
type VendorStatus struct {
	Ready      bool `json:"ready"`
	KeyPresent bool `json:"key_present"`
}

// Diagnostics is the configuration summary served by the debug endpoint.
type Diagnostics struct {
	Provider  string       `json:"provider"`
	Model     string       `json:"model"`
	Anthropic VendorStatus `json:"anthropic"`
	OpenAI    VendorStatus `json:"openai"`
	Gemini    VendorStatus `json:"gemini"`
}

// Diagnostics reports the configured provider and which vendors are usable.
// model is the resolved model identifier.
func (c *Config) Diagnostics(model string) Diagnostics {
	status := func(name, key string) VendorStatus {
		return VendorStatus{
			Ready:      c.LLM.Provider == name && key != "",
			KeyPresent: key != "",
		}
	}
	return Diagnostics{
		Provider:  c.LLM.Provider,
		Model:     model,
		Anthropic: status(ProviderAnthropic, c.Anthropic.APIKey),
		OpenAI:    status(ProviderOpenAI, c.OpenAI.APIKey),
		Gemini:    status(ProviderGemini, c.Gemini.APIKey),
	}
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

// getEnvDuration reads a value expressed in seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.ParseFloat(value, 64); err == nil {
			return time.Duration(seconds * float64(time.Second))
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

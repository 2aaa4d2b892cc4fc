package llm

import "strings"

const (
	DefaultAnthropicModel = "claude-sonnet-4-5-20250929"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultGeminiModel    = "gemini-2.5-flash"
)

// Spelling fixes applied in order to lowercased Anthropic model names.
var anthropicSpellings = []struct{ from, to string }{
	{"claude-4.5-sonnet-", "claude-sonnet-4-5-"},
	{"claude-4-5-sonnet-", "claude-sonnet-4-5-"},
	{"claude-4.5-sonnet", "claude-sonnet-4-5"},
	{"claude-4-5-sonnet", "claude-sonnet-4-5"},
	{"claude-3.5", "claude-3-5"},
}

// anthropicAliases maps short and "latest" names to dated releases.
var anthropicAliases = map[string]string{
	"claude-sonnet-4-5":          "claude-sonnet-4-5-20250929",
	"claude-sonnet-4-5-latest":   "claude-sonnet-4-5-20250929",
	"claude-3-7-sonnet-latest":   "claude-3-7-sonnet-20250219",
	"claude-3-5-sonnet-latest":   "claude-3-5-sonnet-20241022",
	"claude-3-5-sonnet-20241022": "claude-sonnet-4-5-20250929",
	"claude-3-5-haiku-latest":    "claude-3-5-haiku-20241022",
}

// ResolveModelID maps a configured model name to the identifier the provider
// expects. Unknown providers get the trimmed name back.
func ResolveModelID(provider, configured string) string {
	name := strings.TrimSpace(configured)

	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "anthropic":
		if name == "" {
			return DefaultAnthropicModel
		}
		name = strings.ToLower(name)
		for _, s := range anthropicSpellings {
			name = strings.ReplaceAll(name, s.from, s.to)
		}
		if alias, ok := anthropicAliases[name]; ok {
			return alias
		}
		return name
	case "openai":
		if name == "" {
			return DefaultOpenAIModel
		}
		return name
	case "gemini":
		if name == "" {
			return DefaultGeminiModel
		}
		return name
	default:
		return name
	}
}

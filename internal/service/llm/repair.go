package llm

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kapu/paderewski-ai-go/internal/domain"
)

var (
	leadingFence  = regexp.MustCompile("^\\s*```(?:json)?\\s*")
	trailingFence = regexp.MustCompile("\\s*```\\s*$")
	trailingComma = regexp.MustCompile(`,\s*}`)
)

// ParseJSON extracts a JSON object from raw model output. It strips code
// fences, tries a strict parse, then retries on the outermost {...} slice with
// trailing commas before } removed. The result is never nil; an empty map
// means nothing usable was found. Non-object JSON counts as unusable.
func ParseJSON(raw string) map[string]any {
	text := strings.TrimSpace(raw)
	if text == "" {
		return map[string]any{}
	}

	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")

	if obj, ok := decodeObject(text); ok {
		return obj
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return map[string]any{}
	}

	patched := trailingComma.ReplaceAllString(text[start:end+1], "}")
	if obj, ok := decodeObject(patched); ok {
		return obj
	}

	return map[string]any{}
}

func decodeObject(text string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// DecodeCandidates reads top_candidates and note from a repaired response.
// Entries that are not objects are skipped; probabilities may be numbers or
// numeric strings and default to 0.
func DecodeCandidates(data map[string]any) ([]domain.Candidate, string) {
	note, _ := data["note"].(string)

	list, ok := data["top_candidates"].([]any)
	if !ok {
		return []domain.Candidate{}, note
	}

	candidates := make([]domain.Candidate, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := entry["name"].(string)
		rationale, _ := entry["rationale"].(string)
		candidates = append(candidates, domain.Candidate{
			Name:        strings.TrimSpace(name),
			Probability: toProbability(entry["probability"]),
			Rationale:   rationale,
		})
	}
	return candidates, note
}

// toProbability reads a probability as a number, numeric string or bool.
// Anything unreadable or non-finite is 0.
func toProbability(v any) float64 {
	var f float64
	switch p := v.(type) {
	case float64:
		f = p
	case json.Number:
		f, _ = p.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if p {
			f = 1
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// SelectBest returns the candidate with the highest probability. Ties keep
// the earliest entry.
func SelectBest(candidates []domain.Candidate) (domain.Candidate, bool) {
	if len(candidates) == 0 {
		return domain.Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Probability > best.Probability {
			best = c
		}
	}
	return best, true
}

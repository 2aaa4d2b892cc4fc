package prompt

import "github.com/kapu/paderewski-ai-go/internal/util"

// PredictionInstruction asks for a JSON shortlist of likely winners.
const PredictionInstruction = "Jesteś analitykiem konkursu pianistycznego Paderewski 2025. " +
	"Na podstawie listy uczestników i typowego programu (etudy, sonaty, Paderewski, recital z Herdzinem i Mozartem, finałowy koncert), " +
	"zaproponuj 3 kandydatów do zwycięstwa. " +
	"Zwróć JSON: {top_candidates: [{name, probability, rationale}], note}. " +
	"Prawdopodobieństwa w sumie ≤ 1. Używaj wyłącznie nazw z listy."

const (
	predictionSystem      = "Jesteś precyzyjnym analitykiem konkursowym, który zwraca ściśle sformatowany JSON."
	predictionSystemASCII = "You are a precise competition analyst that outputs strict JSON."
)

type PredictionPromptData struct {
	Instruction string
	Names       []string
}

// BuildPredictionPrompt renders the user message for a winner prediction,
// normalised and optionally stripped of Polish diacritics.
func BuildPredictionPrompt(names []string, asciiFallback bool) (string, error) {
	out, err := DefaultPromptBuilder().Render(TemplatePredictionUser, PredictionPromptData{
		Instruction: PredictionInstruction,
		Names:       names,
	})
	if err != nil {
		return "", err
	}
	return util.NormalizeText(out, asciiFallback), nil
}

// PredictionSystemPrompt returns the system instruction for a prediction
// attempt. The ASCII variant is English.
func PredictionSystemPrompt(asciiFallback bool) string {
	if asciiFallback {
		return util.NormalizeText(predictionSystemASCII, true)
	}
	return util.NormalizeText(predictionSystem, false)
}

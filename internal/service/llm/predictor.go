package llm

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/kapu/paderewski-ai-go/internal/constants"
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/prompt"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"go.uber.org/zap"
)

// Rationales returned when no winner is chosen by the model.
const (
	RationaleNoParticipants = "Brak listy uczestników (nie udało się pobrać)."
	RationaleMalformed      = "Nieprawidłowy format odpowiedzi LLM (brak poprawnego JSON)."
	RationaleFallback       = "Fallback bez LLM (losowy wybór z listy uczestników)."
	RationaleNoCandidates   = "Brak uczestników do predykcji."
)

// Predictor picks a likely winner from a participant list. It never returns
// an error: every failure is reported through the prediction's rationale.
type Predictor struct {
	provider  Provider
	maxTokens int
	pick      func(n int) int
	logger    *zap.Logger
}

// NewPredictor creates a predictor. A nil provider selects the random,
// non-LLM fallback.
func NewPredictor(provider Provider, maxTokens int, logger *zap.Logger) *Predictor {
	if maxTokens <= 0 {
		maxTokens = constants.PredictionConfig.DefaultMaxTokens
	}
	return &Predictor{
		provider:  provider,
		maxTokens: maxTokens,
		pick:      rand.IntN,
		logger:    util.OrNop(logger),
	}
}

// Provider returns the configured provider, or nil.
func (p *Predictor) Provider() Provider {
	return p.provider
}

func (p *Predictor) PredictWinner(ctx context.Context, persons []domain.Person) domain.Prediction {
	names := domain.Names(persons)
	if len(names) == 0 {
		return domain.NoPrediction(RationaleNoParticipants)
	}

	if p.provider == nil {
		return p.randomFallback(names)
	}

	prediction, err := p.predictWithProvider(ctx, names)
	if err != nil {
		p.logger.Warn("LLM prediction failed",
			zap.String("provider", p.provider.Name()),
			zap.String("model", p.provider.Model()),
			zap.Error(err))
		return domain.NoPrediction(fmt.Sprintf("Błąd LLM (%s): %v", p.provider.Name(), err))
	}
	return prediction
}

func (p *Predictor) predictWithProvider(ctx context.Context, names []string) (domain.Prediction, error) {
	attempts := []bool{false}
	if p.provider.RetriesASCII() {
		attempts = append(attempts, true)
	}

	note := ""
	for i, ascii := range attempts {
		candidates, attemptNote, err := p.attempt(ctx, names, ascii)
		if err != nil {
			return domain.Prediction{}, err
		}
		note = attemptNote

		if best, ok := SelectBest(candidates); ok {
			if best.Name == "" {
				rationale := strings.TrimSpace(best.Rationale + " " + note)
				if rationale == "" {
					rationale = RationaleMalformed
				}
				return domain.NoPrediction(rationale), nil
			}
			name := best.Name
			p.logger.Info("Winner predicted",
				zap.String("provider", p.provider.Name()),
				zap.Int("attempt", i+1),
				zap.String("prediction", name),
				zap.Float64("confidence", best.Probability))
			return domain.Prediction{
				Prediction:    &name,
				Confidence:    best.Probability,
				Rationale:     strings.TrimSpace(best.Rationale + " " + note),
				TopCandidates: candidates,
			}, nil
		}

		p.logger.Debug("No candidates in LLM response",
			zap.String("provider", p.provider.Name()),
			zap.Int("attempt", i+1),
			zap.Bool("ascii", ascii))
	}

	if note == "" {
		note = RationaleMalformed
	}
	return domain.NoPrediction(note), nil
}

func (p *Predictor) attempt(ctx context.Context, names []string, ascii bool) ([]domain.Candidate, string, error) {
	user, err := prompt.BuildPredictionPrompt(names, ascii)
	if err != nil {
		return nil, "", err
	}

	result, err := p.provider.Generate(ctx, GenerateRequest{
		System:      prompt.PredictionSystemPrompt(ascii),
		User:        user,
		Temperature: constants.PredictionConfig.Temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return nil, "", err
	}

	p.logger.Debug("LLM response received",
		zap.String("provider", p.provider.Name()),
		zap.String("model", result.Model),
		zap.Bool("ascii", ascii),
		zap.Int("length", len(result.Text)))

	candidates, note := DecodeCandidates(ParseJSON(result.Text))
	return candidates, note, nil
}

func (p *Predictor) randomFallback(names []string) domain.Prediction {
	name := names[p.pick(len(names))]
	p.logger.Info("Random fallback prediction", zap.String("prediction", name))
	return domain.Prediction{
		Prediction:    &name,
		Confidence:    constants.PredictionConfig.FallbackConfidence,
		Rationale:     RationaleFallback,
		TopCandidates: []domain.Candidate{},
	}
}

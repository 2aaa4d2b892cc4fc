package command

import (
	"context"

	"github.com/kapu/paderewski-ai-go/internal/constants"
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"go.uber.org/zap"
)

// EmptyQueryResponse answers a blank question.
const EmptyQueryResponse = "Brak pytania."

// Router answers free-text questions by classifying them and running the
// matching command.
type Router struct {
	registry *Registry
	logger   *zap.Logger
}

func NewRouter(registry *Registry, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{registry: registry, logger: logger}
}

func (r *Router) Ask(ctx context.Context, query string) (string, error) {
	qc := domain.NewQueryContext(query)
	if qc.IsEmpty() {
		return EmptyQueryResponse, nil
	}
	qc.Type = Classify(qc.Normalized)

	r.logger.Info("Routing question",
		zap.String("type", qc.Type.String()),
		zap.String("query", util.TruncateString(qc.Raw, constants.AIInputLimits.MaxQueryLength)))

	return r.registry.Execute(ctx, qc.Type.String(), qc)
}

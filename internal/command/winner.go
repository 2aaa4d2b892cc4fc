package command

import (
	"context"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"go.uber.org/zap"
)

type WinnerCommand struct {
	deps *Dependencies
}

func NewWinnerCommand(deps *Dependencies) *WinnerCommand {
	return &WinnerCommand{deps: deps}
}

func (c *WinnerCommand) Name() string {
	return domain.QueryWinner.String()
}

func (c *WinnerCommand) Description() string {
	return "Prognoza zwycięzcy"
}

func (c *WinnerCommand) Execute(ctx context.Context, _ *domain.QueryContext) (string, error) {
	people := c.deps.People.ResolveParticipants(ctx)
	prediction := c.deps.Predictor.PredictWinner(ctx, people)

	c.deps.Logger.Debug("Winner prediction answered",
		zap.Int("participants", len(people)),
		zap.Bool("has_winner", prediction.HasWinner()))

	return c.deps.Formatter.FormatPrediction(prediction), nil
}

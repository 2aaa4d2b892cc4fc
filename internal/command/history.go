package command

import (
	"context"

	"github.com/kapu/paderewski-ai-go/internal/domain"
)

type HistoryCommand struct {
	deps *Dependencies
}

func NewHistoryCommand(deps *Dependencies) *HistoryCommand {
	return &HistoryCommand{deps: deps}
}

func (c *HistoryCommand) Name() string {
	return domain.QueryHistory.String()
}

func (c *HistoryCommand) Description() string {
	return "Skrót historii konkursu"
}

func (c *HistoryCommand) Execute(ctx context.Context, _ *domain.QueryContext) (string, error) {
	return c.deps.Formatter.FormatHistory(c.deps.History.Excerpt(ctx)), nil
}

package command

import (
	"context"

	"github.com/kapu/paderewski-ai-go/internal/domain"
)

type ParticipantsCommand struct {
	deps *Dependencies
}

func NewParticipantsCommand(deps *Dependencies) *ParticipantsCommand {
	return &ParticipantsCommand{deps: deps}
}

func (c *ParticipantsCommand) Name() string {
	return domain.QueryParticipants.String()
}

func (c *ParticipantsCommand) Description() string {
	return "Lista uczestników konkursu"
}

func (c *ParticipantsCommand) Execute(ctx context.Context, _ *domain.QueryContext) (string, error) {
	people := c.deps.People.ResolveParticipants(ctx)
	return c.deps.Formatter.FormatParticipants(people), nil
}

type JuryCommand struct {
	deps *Dependencies
}

func NewJuryCommand(deps *Dependencies) *JuryCommand {
	return &JuryCommand{deps: deps}
}

func (c *JuryCommand) Name() string {
	return domain.QueryJury.String()
}

func (c *JuryCommand) Description() string {
	return "Skład jury"
}

func (c *JuryCommand) Execute(ctx context.Context, _ *domain.QueryContext) (string, error) {
	people := c.deps.People.ResolveJury(ctx)
	return c.deps.Formatter.FormatJury(people), nil
}

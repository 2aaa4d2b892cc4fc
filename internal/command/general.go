package command

import (
	"context"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/service/rag"
	"go.uber.org/zap"
)

// GeneralCommand answers from the retrieval store and appends video links
// when the question mentions videos.
type GeneralCommand struct {
	deps *Dependencies
}

func NewGeneralCommand(deps *Dependencies) *GeneralCommand {
	return &GeneralCommand{deps: deps}
}

func (c *GeneralCommand) Name() string {
	return domain.QueryGeneral.String()
}

func (c *GeneralCommand) Description() string {
	return "Odpowiedź z bazy wiedzy"
}

func (c *GeneralCommand) Execute(ctx context.Context, query *domain.QueryContext) (string, error) {
	docs := c.deps.Retriever.Retrieve(query.Raw, rag.DefaultTopK)
	response := rag.GenerateResponse(docs)

	if c.deps.Videos == nil || !WantsVideos(query.Normalized) {
		return response, nil
	}

	videos, err := c.deps.Videos.SearchVideos(ctx, c.deps.VideoQuery, c.deps.VideoMaxResults)
	if err != nil {
		c.deps.Logger.Warn("Video search failed", zap.Error(err))
	}
	return response + "\n" + c.deps.Formatter.FormatVideos(videos, err), nil
}

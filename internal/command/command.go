package command

import (
	"context"

	"github.com/kapu/paderewski-ai-go/internal/adapter"
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"go.uber.org/zap"
)

// Command answers one class of question with a text response.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, query *domain.QueryContext) (string, error)
}

type PeopleSource interface {
	ResolveParticipants(ctx context.Context) []domain.Person
	ResolveJury(ctx context.Context) []domain.Person
}

type HistorySource interface {
	Excerpt(ctx context.Context) domain.HistoryExcerpt
}

type WinnerPredictor interface {
	PredictWinner(ctx context.Context, persons []domain.Person) domain.Prediction
}

type DocumentRetriever interface {
	Retrieve(query string, k int) []string
}

type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, maxResults int) ([]domain.Video, error)
}

type Dependencies struct {
	People    PeopleSource
	History   HistorySource
	Predictor WinnerPredictor
	Retriever DocumentRetriever
	Videos    VideoSearcher
	Formatter *adapter.ResponseFormatter
	Logger    *zap.Logger

	// VideoQuery and VideoMaxResults are passed to every video search. Zero
	// values select the searcher's defaults.
	VideoQuery      string
	VideoMaxResults int
}

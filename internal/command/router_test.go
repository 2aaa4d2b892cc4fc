package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/service/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePeople struct {
	participants []domain.Person
	jury         []domain.Person
	calls        []string
}

func (f *fakePeople) ResolveParticipants(_ context.Context) []domain.Person {
	f.calls = append(f.calls, "participants")
	return f.participants
}

func (f *fakePeople) ResolveJury(_ context.Context) []domain.Person {
	f.calls = append(f.calls, "jury")
	return f.jury
}

type fakeHistory struct {
	excerpt domain.HistoryExcerpt
}

func (f *fakeHistory) Excerpt(_ context.Context) domain.HistoryExcerpt {
	return f.excerpt
}

type fakePredictor struct {
	prediction domain.Prediction
	got        []domain.Person
}

func (f *fakePredictor) PredictWinner(_ context.Context, persons []domain.Person) domain.Prediction {
	f.got = persons
	return f.prediction
}

type fakeVideos struct {
	videos []domain.Video
	err    error
	calls  int
}

func (f *fakeVideos) SearchVideos(_ context.Context, _ string, _ int) ([]domain.Video, error) {
	f.calls++
	return f.videos, f.err
}

type fixture struct {
	people    *fakePeople
	predictor *fakePredictor
	videos    *fakeVideos
	router    *Router
}

func newFixture() *fixture {
	winner := "Jan Kowalski"
	f := &fixture{
		people: &fakePeople{
			participants: []domain.Person{{Name: "Jan Kowalski"}, {Name: "Anna Nowak"}},
			jury:         []domain.Person{{Name: "Piotr Paleczny", HasRole: true}},
		},
		predictor: &fakePredictor{prediction: domain.Prediction{
			Prediction: &winner,
			Confidence: 0.42,
			Rationale:  "Technika",
		}},
		videos: &fakeVideos{videos: []domain.Video{{Title: "Final", URL: "https://www.youtube.com/watch?v=x"}}},
	}
	registry := NewDefaultRegistry(&Dependencies{
		People:    f.people,
		History:   &fakeHistory{excerpt: domain.HistoryExcerpt{Excerpt: "Od 1994", Source: "https://example.org"}},
		Predictor: f.predictor,
		Retriever: rag.NewDefaultStore(),
		Videos:    f.videos,
	})
	f.router = NewRouter(registry, nil)
	return f
}

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  domain.QueryType
	}{
		{"Kto bierze udział?", domain.QueryParticipants},
		{"LISTA UCZESTNIKÓW", domain.QueryParticipants},
		{"pokaż jurorzy", domain.QueryJury},
		{"historia konkursu", domain.QueryHistory},
		{"Kto wygra w tym roku?", domain.QueryWinner},
		{"who is the winner", domain.QueryWinner},
		{"uczestnicy i jury", domain.QueryParticipants},
		{"jakie są nagrody", domain.QueryGeneral},
		{"   ", domain.QueryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

func TestWantsVideos(t *testing.T) {
	assert.True(t, WantsVideos("pokaż film z finału"))
	assert.True(t, WantsVideos("YouTube"))
	assert.False(t, WantsVideos("nagrody"))
}

func TestRouterEmptyQuery(t *testing.T) {
	f := newFixture()
	out, err := f.router.Ask(context.Background(), "  \t ")
	require.NoError(t, err)
	assert.Equal(t, EmptyQueryResponse, out)
	assert.Empty(t, f.people.calls)
}

func TestRouterParticipantsAndJury(t *testing.T) {
	f := newFixture()

	out, err := f.router.Ask(context.Background(), "Lista uczestników")
	require.NoError(t, err)
	assert.Equal(t, "Uczestnicy:\n- Jan Kowalski\n- Anna Nowak", out)

	out, err = f.router.Ask(context.Background(), "kto jest w jury?")
	require.NoError(t, err)
	assert.Equal(t, "Jury:\n- Piotr Paleczny", out)
	assert.Equal(t, []string{"participants", "jury"}, f.people.calls)
}

func TestRouterHistory(t *testing.T) {
	f := newFixture()
	out, err := f.router.Ask(context.Background(), "Archiwum")
	require.NoError(t, err)
	assert.Equal(t, "Historia — skrót:\nOd 1994\n\nŹródło: https://example.org", out)
}

func TestRouterWinner(t *testing.T) {
	f := newFixture()
	out, err := f.router.Ask(context.Background(), "kto wygra?")
	require.NoError(t, err)
	assert.Equal(t, "Prognoza (LLM): Jan Kowalski\nPewność: 42.0%\nTechnika", out)
	assert.Len(t, f.predictor.got, 2)
}

func TestRouterGeneralUsesRetrieval(t *testing.T) {
	f := newFixture()
	out, err := f.router.Ask(context.Background(), "Prizes for 1st place")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Informacje z kontekstu RAG:\nPrizes:"))
	assert.NotContains(t, out, "YouTube:")
	assert.Zero(t, f.videos.calls)
}

func TestRouterGeneralAppendsVideos(t *testing.T) {
	f := newFixture()
	out, err := f.router.Ask(context.Background(), "pokaż wideo")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\nYouTube:\nFinal: https://www.youtube.com/watch?v=x"))
	assert.Equal(t, 1, f.videos.calls)

	f.videos.err = errors.New("quota")
	out, err = f.router.Ask(context.Background(), "video")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\nYouTube:\nError: quota"))
}

func TestRegistryUnknownKey(t *testing.T) {
	r := NewRegistry()
	_, err := r.Execute(context.Background(), "missing", domain.NewQueryContext("x"))
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, 5, NewDefaultRegistry(&Dependencies{}).Count())
}

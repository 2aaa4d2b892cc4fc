package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kapu/paderewski-ai-go/internal/config"
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakePeople struct {
	participants []domain.Person
	jury         []domain.Person
}

func (f *fakePeople) ResolveParticipants(_ context.Context) []domain.Person {
	return f.participants
}

func (f *fakePeople) ResolveJury(_ context.Context) []domain.Person {
	return f.jury
}

type fakeHistory struct{}

func (fakeHistory) Excerpt(_ context.Context) domain.HistoryExcerpt {
	return domain.HistoryExcerpt{Excerpt: "Konkurs", Source: "https://example.org/"}
}

type fakePredictor struct {
	got []domain.Person
}

func (f *fakePredictor) PredictWinner(_ context.Context, persons []domain.Person) domain.Prediction {
	f.got = persons
	return domain.NoPrediction("Brak uczestników")
}

type fakeAsker struct {
	queries []string
	err     error
}

func (f *fakeAsker) Ask(_ context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	return "odpowiedź: " + query, f.err
}

func newTestServer() (*Server, *fakeAsker, *fakePredictor) {
	asker := &fakeAsker{}
	predictor := &fakePredictor{}
	srv := New(":0", Dependencies{
		People: &fakePeople{
			participants: []domain.Person{{Name: "Jan Kowalski"}},
			jury:         []domain.Person{{Name: "Piotr Paleczny", HasRole: true}},
		},
		History:   fakeHistory{},
		Predictor: predictor,
		Asker:     asker,
		Diagnostics: func() config.Diagnostics {
			return config.Diagnostics{Provider: "anthropic", Model: "claude-sonnet-4-5-20250929"}
		},
		CORSOrigins: []string{"*"},
	})
	return srv, asker, predictor
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	srv, _, _ := newTestServer()
	rec := do(t, srv, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Paderewski AI")
}

func TestPeopleEndpoints(t *testing.T) {
	srv, _, _ := newTestServer()

	rec := do(t, srv, http.MethodGet, "/participants", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Jan Kowalski","country":"","bio":""}]`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/jury", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Piotr Paleczny","role":null,"country":"","bio":""}]`, rec.Body.String())
}

func TestHistoryEndpoint(t *testing.T) {
	srv, _, _ := newTestServer()
	rec := do(t, srv, http.MethodGet, "/history", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"excerpt":"Konkurs","source":"https://example.org/"}`, rec.Body.String())
}

func TestPredictWinnerEndpoint(t *testing.T) {
	srv, _, predictor := newTestServer()
	rec := do(t, srv, http.MethodGet, "/predict_winner", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prediction":null,"confidence":0,"rationale":"Brak uczestników","top_candidates":[]}`, rec.Body.String())
	assert.Equal(t, []domain.Person{{Name: "Jan Kowalski"}}, predictor.got)
}

func TestDebugLLMEndpoint(t *testing.T) {
	srv, _, _ := newTestServer()
	rec := do(t, srv, http.MethodGet, "/debug_llm", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "anthropic", got["provider"])
	assert.Contains(t, got, "openai")
}

func TestAskEndpoint(t *testing.T) {
	srv, asker, _ := newTestServer()

	rec := do(t, srv, http.MethodPost, "/ask", `{"query":"kto wygra"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"odpowiedź: kto wygra"}`, rec.Body.String())
	assert.Equal(t, []string{"kto wygra"}, asker.queries)

	rec = do(t, srv, http.MethodPost, "/ask", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"kto wygra", ""}, asker.queries)
}

func TestAskEndpointRejectsBadJSON(t *testing.T) {
	srv, asker, _ := newTestServer()

	for _, body := range []string{`{"query":`, `{"query": 5}`, ""} {
		rec := do(t, srv, http.MethodPost, "/ask", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
	assert.Empty(t, asker.queries)
}

func TestAskEndpointAskerError(t *testing.T) {
	srv, asker, _ := newTestServer()
	asker.err = errors.New("boom")

	rec := do(t, srv, http.MethodPost, "/ask", `{"query":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "APP_ERROR")
}

func TestCORS(t *testing.T) {
	srv, _, _ := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	restricted := New(":0", Dependencies{CORSOrigins: []string{"https://a.example"}})

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://a.example")
	rec = httptest.NewRecorder()
	restricted.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://a.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://b.example")
	rec = httptest.NewRecorder()
	restricted.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "https://b.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	restricted.Handler().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSDisabledWithoutOrigins(t *testing.T) {
	srv := New(":0", Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

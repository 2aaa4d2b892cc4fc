package app

import (
	"context"
	"testing"
	"time"

	"github.com/kapu/paderewski-ai-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Competition: config.CompetitionConfig{
			BaseURL:         "https://paderewskicompetition.pl/",
			SecondaryURL:    "https://www.konkurspaderewskiego.pl",
			ParticipantsURL: "https://www.konkurspaderewskiego.pl/uczestnicy/",
			JuryURL:         "https://paderewskicompetition.pl/jury/",
			FetchTimeout:    time.Second,
			HistoryRunes:    100,
		},
		LLM:    config.LLMConfig{Provider: config.ProviderAnthropic, MaxTokens: 512},
		Server: config.ServerConfig{Addr: ":0", CORSOrigins: []string{"*"}},
	}
}

func TestBuildWithoutKeys(t *testing.T) {
	c, err := Build(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.Nil(t, c.Predictor.Provider())
	assert.False(t, c.Videos.Enabled())

	diag := c.Diagnostics()
	assert.Equal(t, config.ProviderAnthropic, diag.Provider)
	assert.NotEmpty(t, diag.Model)
	assert.False(t, diag.Anthropic.Ready)

	srv, err := c.NewServer()
	require.NoError(t, err)
	assert.NotNil(t, srv.Handler())

	out, err := c.Router.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Brak pytania.", out)
}

func TestBuildRejectsMissingInputs(t *testing.T) {
	_, err := Build(context.Background(), nil, zap.NewNop())
	assert.Error(t, err)

	_, err = Build(context.Background(), testConfig(), nil)
	assert.Error(t, err)
}

package app

import (
	"context"
	"fmt"

	"github.com/kapu/paderewski-ai-go/internal/adapter"
	"github.com/kapu/paderewski-ai-go/internal/command"
	"github.com/kapu/paderewski-ai-go/internal/config"
	"github.com/kapu/paderewski-ai-go/internal/server"
	"github.com/kapu/paderewski-ai-go/internal/service/llm"
	"github.com/kapu/paderewski-ai-go/internal/service/rag"
	"github.com/kapu/paderewski-ai-go/internal/service/scraper"
	"github.com/kapu/paderewski-ai-go/internal/service/youtube"
	"go.uber.org/zap"
)

// Container bundles assembled services for the HTTP server and CLI commands.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Resolver  *scraper.Resolver
	History   *scraper.HistoryService
	Predictor *llm.Predictor
	Store     *rag.Store
	Videos    *youtube.Service
	Router    *command.Router

	model string
}

// NewServer instantiates the HTTP server using the pre-built dependency graph.
func (c *Container) NewServer() (*server.Server, error) {
	if c == nil || c.Router == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return server.New(c.Config.Server.Addr, server.Dependencies{
		People:      c.Resolver,
		History:     c.History,
		Predictor:   c.Predictor,
		Asker:       c.Router,
		Diagnostics: c.Diagnostics,
		CORSOrigins: c.Config.Server.CORSOrigins,
		Logger:      c.Logger,
	}), nil
}

// Diagnostics reports the LLM configuration with the resolved model id.
func (c *Container) Diagnostics() config.Diagnostics {
	return c.Config.Diagnostics(c.model)
}

// Build assembles all services. Nothing here performs network I/O except
// client construction; pages are fetched per request.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fetcher := scraper.NewHTTPFetcher(cfg.Competition.FetchTimeout, logger)
	resolver := scraper.NewResolver(fetcher, scraper.Sources{
		ParticipantsURL: cfg.Competition.ParticipantsURL,
		JuryURL:         cfg.Competition.JuryURL,
		Bases:           cfg.FallbackBases(),
	}, logger)
	history := scraper.NewHistoryService(fetcher, cfg.Competition.BaseURL, cfg.Competition.HistoryRunes, logger)

	provider, err := llm.NewProvider(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}
	predictor := llm.NewPredictor(provider, cfg.LLM.MaxTokens, logger)

	model := llm.ResolveModelID(cfg.LLM.Provider, cfg.LLM.Model)
	if provider != nil {
		model = provider.Model()
		logger.Info("LLM provider ready",
			zap.String("provider", provider.Name()),
			zap.String("model", model))
	}

	videos, err := youtube.NewService(ctx, cfg.YouTube.APIKey, logger)
	if err != nil {
		logger.Warn("Failed to initialize YouTube service (optional feature)", zap.Error(err))
		videos, _ = youtube.NewService(ctx, "", logger)
	}

	store := rag.NewDefaultStore()
	registry := command.NewDefaultRegistry(&command.Dependencies{
		People:          resolver,
		History:         history,
		Predictor:       predictor,
		Retriever:       store,
		Videos:          videos,
		Formatter:       adapter.NewResponseFormatter(logger),
		Logger:          logger,
		VideoQuery:      cfg.YouTube.DefaultQuery,
		VideoMaxResults: cfg.YouTube.MaxResults,
	})

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Resolver:  resolver,
		History:   history,
		Predictor: predictor,
		Store:     store,
		Videos:    videos,
		Router:    command.NewRouter(registry, logger),
		model:     model,
	}, nil
}

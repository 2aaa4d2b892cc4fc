package server

import (
	"context"
	"embed"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kapu/paderewski-ai-go/internal/command"
	"github.com/kapu/paderewski-ai-go/internal/config"
	"github.com/kapu/paderewski-ai-go/internal/constants"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"go.uber.org/zap"
)

//go:embed static/index.html
var staticFS embed.FS

// Asker answers a free-text question.
type Asker interface {
	Ask(ctx context.Context, query string) (string, error)
}

type Dependencies struct {
	People      command.PeopleSource
	History     command.HistorySource
	Predictor   command.WinnerPredictor
	Asker       Asker
	Diagnostics func() config.Diagnostics
	CORSOrigins []string
	Logger      *zap.Logger
}

// Server exposes the competition data and question answering over HTTP.
type Server struct {
	deps       Dependencies
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

func New(addr string, deps Dependencies) *Server {
	deps.Logger = util.OrNop(deps.Logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(deps.Logger))
	_ = engine.SetTrustedProxies([]string{"127.0.0.1"})

	s := &Server{
		deps:   deps,
		engine: engine,
		logger: deps.Logger,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           withCORS(deps.CORSOrigins, engine),
		ReadHeaderTimeout: constants.ServerConfig.ReadHeaderTimeout,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.index)
	s.engine.GET("/health", s.health)
	s.engine.GET("/debug_llm", s.debugLLM)
	s.engine.GET("/participants", s.participants)
	s.engine.GET("/jury", s.jury)
	s.engine.GET("/history", s.history)
	s.engine.GET("/predict_winner", s.predictWinner)
	s.engine.POST("/ask", s.ask)
}

// Handler returns the routed engine behind the CORS layer.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
	"go.uber.org/zap"
)

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Response string `json:"response"`
}

func (s *Server) index(c *gin.Context) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		s.respondError(c, apperrors.NewAppError("index page unavailable", apperrors.CodeAppError, http.StatusInternalServerError, nil).WithCause(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) debugLLM(c *gin.Context) {
	if s.deps.Diagnostics == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, s.deps.Diagnostics())
}

func (s *Server) participants(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.People.ResolveParticipants(c.Request.Context()))
}

func (s *Server) jury(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.People.ResolveJury(c.Request.Context()))
}

func (s *Server) history(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.History.Excerpt(c.Request.Context()))
}

func (s *Server) predictWinner(c *gin.Context) {
	ctx := c.Request.Context()
	people := s.deps.People.ResolveParticipants(ctx)
	c.JSON(http.StatusOK, s.deps.Predictor.PredictWinner(ctx, people))
}

func (s *Server) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := apperrors.NewValidationError("invalid request body", "query", nil)
		s.respondError(c, verr.WithCause(err))
		return
	}

	response, err := s.deps.Asker.Ask(c.Request.Context(), req.Query)
	if err != nil {
		s.respondError(c, apperrors.NewAppError("failed to answer question", apperrors.CodeAppError, http.StatusInternalServerError, nil).WithCause(err))
		return
	}
	c.JSON(http.StatusOK, askResponse{Response: response})
}

func (s *Server) respondError(c *gin.Context, err *apperrors.AppError) {
	status := err.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		s.logger.Debug("Request rejected", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Message,
		"code":  err.Code,
	})
}

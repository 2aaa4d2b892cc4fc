package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	DefaultQuery      = "Paderewski Piano Competition 2025"
	DefaultMaxResults = 5
	maxResultsLimit   = 50
	watchURLFormat    = "https://www.youtube.com/watch?v=%s"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("YouTube search disabled: no API key")

// QuotaExceededError reports a 403 from the Data API, which it uses for
// exhausted daily quota.
type QuotaExceededError struct {
	Query string
	Cause error
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("YouTube API quota exceeded for query %q: %v", e.Query, e.Cause)
}

func (e *QuotaExceededError) Unwrap() error {
	return e.Cause
}

// Service searches competition videos with the YouTube Data API.
type Service struct {
	service *youtube.Service
	logger  *zap.Logger
}

// NewService returns a disabled service when apiKey is empty. Extra options
// are passed to the API client.
func NewService(ctx context.Context, apiKey string, logger *zap.Logger, opts ...option.ClientOption) (*Service, error) {
	logger = util.OrNop(logger)
	if apiKey == "" {
		logger.Info("YouTube search disabled (no API key)")
		return &Service{logger: logger}, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Service{
		service: service,
		logger:  logger,
	}, nil
}

func (s *Service) Enabled() bool {
	return s != nil && s.service != nil
}

// SearchVideos returns the newest videos matching query, newest first.
func (s *Service) SearchVideos(ctx context.Context, query string, maxResults int) ([]domain.Video, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if query == "" {
		query = DefaultQuery
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > maxResultsLimit {
		maxResults = maxResultsLimit
	}

	call := s.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Order("date")

	response, err := call.Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
			return nil, &QuotaExceededError{Query: query, Cause: err}
		}
		return nil, fmt.Errorf("YouTube API error: %w", err)
	}

	videos := make([]domain.Video, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, domain.Video{
			Title: item.Snippet.Title,
			URL:   fmt.Sprintf(watchURLFormat, item.Id.VideoId),
		})
	}

	s.logger.Debug("YouTube search completed",
		zap.String("query", query),
		zap.Int("videos", len(videos)))

	return videos, nil
}

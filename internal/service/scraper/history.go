package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"go.uber.org/zap"
)

const defaultHistoryRunes = 1500

// HistoryService returns the leading text of the competition's main page.
type HistoryService struct {
	fetcher  PageFetcher
	url      string
	maxRunes int
	logger   *zap.Logger
}

func NewHistoryService(fetcher PageFetcher, url string, maxRunes int, logger *zap.Logger) *HistoryService {
	if maxRunes <= 0 {
		maxRunes = defaultHistoryRunes
	}
	return &HistoryService{
		fetcher:  fetcher,
		url:      url,
		maxRunes: maxRunes,
		logger:   util.OrNop(logger),
	}
}

// Excerpt returns an empty excerpt when the page is unavailable.
func (h *HistoryService) Excerpt(ctx context.Context) domain.HistoryExcerpt {
	excerpt := domain.HistoryExcerpt{Source: h.url}

	result := h.fetcher.Fetch(ctx, h.url)
	if !result.OK() {
		h.logger.Warn("History page unavailable", zap.String("url", h.url), zap.Error(result.Err))
		return excerpt
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.Body))
	if err != nil {
		return excerpt
	}

	excerpt.Excerpt = util.Prefix(elementText(doc.Selection, "\n"), h.maxRunes)
	return excerpt
}

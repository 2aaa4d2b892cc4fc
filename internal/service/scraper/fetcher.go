package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kapu/paderewski-ai-go/internal/constants"
	"github.com/kapu/paderewski-ai-go/internal/util"
	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
	"go.uber.org/zap"
)

// FetchStatus tags the outcome of a page fetch.
type FetchStatus int

const (
	FetchUnavailable FetchStatus = iota
	FetchOK
)

// FetchResult is either a fetched page body or an unavailable page with the
// reason kept for logging.
type FetchResult struct {
	Status FetchStatus
	Body   string
	Err    error
}

func Fetched(body string) FetchResult {
	return FetchResult{Status: FetchOK, Body: body}
}

func Unavailable(err error) FetchResult {
	return FetchResult{Status: FetchUnavailable, Err: err}
}

func (r FetchResult) OK() bool {
	return r.Status == FetchOK
}

// PageFetcher retrieves raw HTML. Implementations never return errors; a
// failed fetch is reported as Unavailable.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) FetchResult
}

// HTTPFetcher fetches pages with a bounded timeout. Only 200 responses with a
// non-empty body count as fetched.
type HTTPFetcher struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPFetcher(timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	if timeout <= 0 {
		timeout = constants.FetchConfig.DefaultTimeout
	}
	return &HTTPFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: util.OrNop(logger),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) FetchResult {
	body, err := f.fetch(ctx, url)
	if err != nil {
		f.logger.Debug("Page unavailable", zap.String("url", url), zap.Error(err))
		return Unavailable(err)
	}
	return Fetched(body)
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperrors.NewFetchError("invalid request", url, 0, err)
	}

	req.Header.Set("User-Agent", constants.FetchConfig.UserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewFetchError("HTTP request failed", url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewFetchError(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), url, resp.StatusCode, nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, constants.FetchConfig.MaxPageBytes))
	if err != nil {
		return "", apperrors.NewFetchError("read body failed", url, resp.StatusCode, err)
	}
	if len(data) == 0 {
		return "", apperrors.NewFetchError("empty body", url, resp.StatusCode, nil)
	}

	return string(data), nil
}

package scraper

import (
	"context"
	"strings"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"go.uber.org/zap"
)

// Fallback path suffixes per profile, ending with the site root.
var candidatePaths = map[domain.Profile][]string{
	domain.ProfileParticipants: {"/uczestnicy/", "/participants/", "/contestants/", "/list-of-participants/", "/"},
	domain.ProfileJury:         {"/jury-xiii-konkursu-2025/", "/jury/", "/jurors/", "/komisja/", "/"},
}

// Sources names the pages a Resolver consults.
type Sources struct {
	ParticipantsURL string
	JuryURL         string
	// Bases are the known domains crossed with the fallback paths, in
	// priority order.
	Bases []string
}

// Resolver finds participant and jury lists across the competition sites.
// Candidates are tried one at a time; the first non-empty list wins.
type Resolver struct {
	fetcher PageFetcher
	sources Sources
	logger  *zap.Logger
}

func NewResolver(fetcher PageFetcher, sources Sources, logger *zap.Logger) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		sources: sources,
		logger:  util.OrNop(logger),
	}
}

// ResolveParticipants never fails; an empty list means nothing could be
// parsed, not that there are no participants.
func (r *Resolver) ResolveParticipants(ctx context.Context) []domain.Person {
	return r.resolve(ctx, domain.ProfileParticipants, r.sources.ParticipantsURL)
}

// ResolveJury never fails; jury records always carry a null role.
func (r *Resolver) ResolveJury(ctx context.Context) []domain.Person {
	return r.resolve(ctx, domain.ProfileJury, r.sources.JuryURL)
}

func (r *Resolver) resolve(ctx context.Context, profile domain.Profile, primaryURL string) []domain.Person {
	if primaryURL != "" {
		if persons := r.tryPage(ctx, primaryURL, ShapeFor(profile), profile); len(persons) > 0 {
			r.logger.Info("Resolved from primary page",
				zap.String("profile", profile.String()),
				zap.String("url", primaryURL),
				zap.Int("persons", len(persons)))
			return persons
		}
	}

	for _, url := range CandidateURLs(r.sources.Bases, profile) {
		if ctx.Err() != nil {
			r.logger.Debug("Resolution cancelled", zap.String("profile", profile.String()))
			break
		}
		if persons := r.tryPage(ctx, url, ShapeGeneric, profile); len(persons) > 0 {
			r.logger.Info("Resolved from fallback page",
				zap.String("profile", profile.String()),
				zap.String("url", url),
				zap.Int("persons", len(persons)))
			return persons
		}
	}

	r.logger.Warn("No persons resolved", zap.String("profile", profile.String()))
	return []domain.Person{}
}

func (r *Resolver) tryPage(ctx context.Context, url string, shape Shape, profile domain.Profile) []domain.Person {
	result := r.fetcher.Fetch(ctx, url)
	if !result.OK() {
		r.logger.Debug("Skipping candidate", zap.String("url", url), zap.Error(result.Err))
		return nil
	}

	persons := ParsePersons(result.Body, shape, profile)
	if len(persons) == 0 {
		r.logger.Debug("No names on page", zap.String("url", url))
	}
	return persons
}

// CandidateURLs crosses bases with the fallback paths of profile, base-major.
func CandidateURLs(bases []string, profile domain.Profile) []string {
	paths := candidatePaths[profile]
	urls := make([]string, 0, len(bases)*len(paths))
	for _, base := range bases {
		base = strings.TrimRight(base, "/")
		if base == "" {
			continue
		}
		for _, path := range paths {
			urls = append(urls, base+path)
		}
	}
	return urls
}

package enricher

import (
	"context"
	"time"

	"github.com/failsafe-go/failsafe-go/ratelimiter"

	"blurb/internal/client"
	"blurb/internal/config"
	"blurb/internal/models"
)

// Enricher resolves each movie entry to a detail page and attaches a plot
// description. Entries are processed strictly in order, one at a time.
type Enricher struct {
	client  client.Client
	limiter ratelimiter.RateLimiter[any]
}

// NewEnricher creates an enricher that paces remote requests at one per
// delay period, to stay polite toward the external site. A zero or negative
// delay disables pacing.
func NewEnricher(c client.Client, delay time.Duration) *Enricher {
	var limiter ratelimiter.RateLimiter[any]
	if delay > 0 {
		limiter = ratelimiter.NewSmoothWithMaxRate[any](delay)
	}
	return &Enricher{client: c, limiter: limiter}
}

// Enrich processes entries in input order: resolve the detail page, then
// extract the description. Entries with no resolvable URL are skipped and
// never retried; extraction failures degrade to the sentinel description.
// The returned slice preserves the order of the surviving entries.
func (e *Enricher) Enrich(ctx context.Context, entries []models.MovieEntry) ([]models.EnrichedEntry, error) {
	logger := config.GetLogger()
	enriched := make([]models.EnrichedEntry, 0, len(entries))

	for i, entry := range entries {
		logger.Info().
			Int("index", i+1).
			Int("total", len(entries)).
			Str("title", entry.Title).
			Str("year", entry.Year).
			Msg("Processing entry")

		if err := e.acquirePermit(ctx); err != nil {
			return enriched, err
		}

		detailURL, err := e.client.ResolveTitle(ctx, entry)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("title", entry.Title).
				Str("year", entry.Year).
				Msg("Skipping entry, no URL found")
			continue
		}

		if err := e.acquirePermit(ctx); err != nil {
			return enriched, err
		}

		description, err := e.client.FetchDescription(ctx, detailURL)
		if err != nil {
			logger.Warn().Err(err).Str("url", detailURL).Msg("Description extraction degraded")
		}

		enriched = append(enriched, models.EnrichedEntry{
			Title:       entry.Title,
			Year:        entry.Year,
			Description: description,
		})
	}

	logger.Info().
		Int("enriched", len(enriched)).
		Int("total", len(entries)).
		Msg("Enrichment complete")
	return enriched, nil
}

// acquirePermit waits for the next rate-limiter slot, honoring context
// cancellation. No-op when pacing is disabled.
func (e *Enricher) acquirePermit(ctx context.Context) error {
	if e.limiter == nil {
		return nil
	}
	return e.limiter.AcquirePermit(ctx)
}

package client

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"blurb/internal/config"
	"blurb/internal/models"
)

// ResolveTitle queries the find endpoint and picks the best candidate URL.
// The first candidate whose display text contains the year wins; otherwise
// the first candidate is used as a fallback. The year check is a cheap
// disambiguator against remakes and same-named titles.
func (c *client) ResolveTitle(ctx context.Context, entry models.MovieEntry) (string, error) {
	logger := config.GetLogger()

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s %s", entry.Title, entry.Year))
	params.Set("s", "tt")
	params.Set("ttype", "ft")
	params.Set("ref_", "nv_sr_sm")
	searchURL := fmt.Sprintf("%s/find?%s", c.baseURL, params.Encode())

	body, err := c.fetchPage(ctx, searchURL)
	if err != nil {
		return "", fmt.Errorf("search failed for %q (%s): %w", entry.Title, entry.Year, err)
	}

	results, err := c.searchParser.ParseHtml(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse search results: %w", err)
	}

	logger.Debug().
		Int("results", len(results)).
		Str("title", entry.Title).
		Str("year", entry.Year).
		Msg("Search results received")

	if len(results) == 0 {
		return "", &ErrNoResults{Title: entry.Title, Year: entry.Year}
	}

	for _, result := range results {
		if strings.Contains(result.Text, entry.Year) {
			detailURL := c.detailURL(result.Href)
			logger.Debug().Str("url", detailURL).Msg("Matched candidate by year")
			return detailURL, nil
		}
	}

	detailURL := c.detailURL(results[0].Href)
	logger.Debug().Str("url", detailURL).Msg("No year match, using first result")
	return detailURL, nil
}

// detailURL strips any query string from a result href and joins it to the
// site domain.
func (c *client) detailURL(href string) string {
	if idx := strings.Index(href, "?"); idx != -1 {
		href = href[:idx]
	}
	return c.baseURL + href
}

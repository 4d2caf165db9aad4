package parser

import (
	"fmt"
	"io"
	"strings"

	"blurb/internal/config"

	"github.com/PuerkitoBio/goquery"
)

// SentinelDescription is the placeholder written when no description can be
// extracted from a title page.
const SentinelDescription = "Description not found."

// creditsMarker truncates the meta-description fallback before the trailing
// credits blurb the site appends.
const creditsMarker = ". Directed by"

// DescriptionParser extracts a plot description from a title detail page.
type DescriptionParser struct{}

// NewDescriptionParser creates a new description parser instance
func NewDescriptionParser() *DescriptionParser {
	return &DescriptionParser{}
}

// ParseHtml extracts the plot description from a title page, in strict
// priority order: the extended plot field, then the page meta description
// truncated at the credits marker, then the sentinel. Both extraction rules
// are best-effort heuristics against undocumented markup.
func (p *DescriptionParser) ParseHtml(body io.Reader) (string, error) {
	logger := config.GetLogger()

	utf8Body, err := NewUTF8Reader(body)
	if err != nil {
		return SentinelDescription, fmt.Errorf("failed to decode HTML: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		return SentinelDescription, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Try the extended plot field first
	if plot := strings.TrimSpace(doc.Find(`span[data-testid="plot-xl"]`).First().Text()); plot != "" {
		logger.Debug().Msg("Extracted extended plot field")
		return plot, nil
	}

	// Fall back to the page meta description
	if content, exists := doc.Find(`meta[name="description"]`).First().Attr("content"); exists {
		if idx := strings.Index(content, creditsMarker); idx != -1 {
			content = content[:idx]
		}
		if content = strings.TrimSpace(content); content != "" {
			logger.Debug().Msg("Falling back to meta description")
			return content + ".", nil
		}
	}

	logger.Debug().Msg("No description found in page")
	return SentinelDescription, nil
}

package parser

import (
	"fmt"
	"io"
	"strings"

	"blurb/internal/config"
	"blurb/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// SearchResultParser extracts candidate title links from a find-results page.
// Candidates live in td.result_text cells; the markup is an undocumented
// dependency on the site and may break without notice.
type SearchResultParser struct{}

// NewSearchResultParser creates a new search result parser instance
func NewSearchResultParser() *SearchResultParser {
	return &SearchResultParser{}
}

// ParseHtml parses the find-results HTML and returns the candidate cells in
// page order. Cells without a usable link are dropped.
func (p *SearchResultParser) ParseHtml(body io.Reader) ([]models.SearchResult, error) {
	logger := config.GetLogger()

	utf8Body, err := NewUTF8Reader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HTML: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []models.SearchResult
	doc.Find("td.result_text").Each(func(i int, cell *goquery.Selection) {
		link := cell.Find("a").First()
		if link.Length() == 0 {
			logger.Debug().Int("cell", i).Msg("Result cell has no link, skipping")
			return
		}

		href, exists := link.Attr("href")
		if !exists || href == "" {
			logger.Debug().Int("cell", i).Msg("Result link missing href attribute, skipping")
			return
		}

		results = append(results, models.SearchResult{
			Text: collapseWhitespace(cell.Text()),
			Href: href,
		})
	})

	logger.Debug().Int("results", len(results)).Msg("Parsed find results")
	return results, nil
}

// collapseWhitespace trims a cell's text and folds internal runs of
// whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

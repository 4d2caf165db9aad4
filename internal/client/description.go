package client

import (
	"bytes"
	"context"
	"fmt"

	"blurb/internal/parser"
)

// FetchDescription scrapes the plot description from a resolved detail page.
// Extraction never fails an entry: request or parse failures degrade to the
// sentinel description, returned together with the cause for logging.
func (c *client) FetchDescription(ctx context.Context, detailURL string) (string, error) {
	body, err := c.fetchPage(ctx, detailURL)
	if err != nil {
		return parser.SentinelDescription, fmt.Errorf("detail page request failed: %w", err)
	}

	description, err := c.descriptionParser.ParseHtml(bytes.NewReader(body))
	if err != nil {
		return parser.SentinelDescription, fmt.Errorf("parse detail page: %w", err)
	}
	return description, nil
}

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"blurb/internal/config"
	"blurb/internal/models"
	"blurb/internal/parser"
)

// Client defines the interface for querying the movie database site
type Client interface {
	// ResolveTitle finds the detail-page URL for a movie entry. It returns
	// ErrNoResults when the search yields no candidates.
	ResolveTitle(ctx context.Context, entry models.MovieEntry) (string, error)

	// FetchDescription scrapes the plot description from a resolved detail
	// page. The returned string is always usable: any failure degrades to the
	// sentinel description, with the error reported alongside for logging.
	FetchDescription(ctx context.Context, detailURL string) (string, error)
}

// client implements the Client interface
type client struct {
	httpClient        *http.Client
	baseURL           string
	acceptLanguage    string
	referer           string
	searchParser      parser.Parser[models.SearchResult]
	descriptionParser parser.SingleParser[string]
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	// Parse timeout duration
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its connection pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	acceptLanguage := cfg.AcceptLanguage
	if acceptLanguage == "" {
		acceptLanguage = config.DefaultAcceptLanguage
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newDecompressionTransport(baseTransport),
		},
		baseURL:           cfg.ImdbDomain,
		acceptLanguage:    acceptLanguage,
		referer:           cfg.Referer,
		searchParser:      parser.NewSearchResultParser(),
		descriptionParser: parser.NewDescriptionParser(),
	}
}

// fetchPage performs a GET with the browser-like header set and returns the
// response body bytes.
func (c *client) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept-Language", c.acceptLanguage)
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrBadStatus{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

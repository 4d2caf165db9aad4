package models

// SearchResult is one candidate row from the find-results page.
type SearchResult struct {
	Text string `json:"text"` // full display text of the result cell
	Href string `json:"href"` // link target, relative to the site domain
}

package models

// MovieEntry is one row parsed from the input movie list.
type MovieEntry struct {
	Title string `json:"title"`
	Year  string `json:"year"` // 4-digit year, kept as a string for substring matching
}

// EnrichedEntry is a MovieEntry augmented with a plot description.
type EnrichedEntry struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

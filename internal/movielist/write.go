package movielist

import (
	"fmt"
	"io"
	"strings"

	"blurb/internal/models"
)

const (
	headerRow    = "| Title | Year | Description |"
	separatorRow = "|---|---|---|"
)

// WriteTable emits the enriched table: header row, separator row, then one
// data row per entry in input order. Data rows are joined by newline with no
// trailing newline after the last one.
func WriteTable(w io.Writer, entries []models.EnrichedEntry) error {
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, fmt.Sprintf("| %s | %s | %s |", e.Title, e.Year, e.Description))
	}

	var b strings.Builder
	b.WriteString(headerRow + "\n")
	b.WriteString(separatorRow + "\n")
	b.WriteString(strings.Join(rows, "\n"))

	_, err := io.WriteString(w, b.String())
	return err
}

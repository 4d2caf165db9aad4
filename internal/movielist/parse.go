package movielist

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"blurb/internal/config"
	"blurb/internal/models"
)

// rowPattern matches a pipe-delimited movie row: a leading "|", a non-empty
// title field, a "|", a 4-digit year, and a "|". Anything after the year
// field is ignored.
var rowPattern = regexp.MustCompile(`^\|\s*([^|]+?)\s*\|\s*(\d{4})\s*\|`)

// Parse extracts movie entries from the input list. Lines that do not match
// the row pattern are skipped. Order is preserved and duplicate rows produce
// separate entries.
func Parse(r io.Reader) ([]models.MovieEntry, error) {
	logger := config.GetLogger()

	var entries []models.MovieEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := rowPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		if title == "" {
			continue
		}
		entries = append(entries, models.MovieEntry{
			Title: title,
			Year:  m[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	logger.Debug().Int("entries", len(entries)).Msg("Parsed movie list")
	return entries, nil
}

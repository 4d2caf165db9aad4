package movielist

import (
	"strings"
	"testing"

	"blurb/internal/models"
)

func TestParse(t *testing.T) {
	input := `# My movie list

| Title | Year |
|---|---|
| The Matrix | 1999 | (unreleased) |
|  Blade Runner  | 1982 |
| The Matrix | 1999 |
some prose in between
| Alien | 1979 |
`

	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := []models.MovieEntry{
		{Title: "The Matrix", Year: "1999"},
		{Title: "Blade Runner", Year: "1982"},
		{Title: "The Matrix", Year: "1999"},
		{Title: "Alien", Year: "1979"},
	}

	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %v", len(expected), len(entries), entries)
	}
	for i, want := range expected {
		if entries[i] != want {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want, entries[i])
		}
	}
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing year field", "| The Matrix |"},
		{"three digit year", "| The Matrix | 999 |"},
		{"five digit year", "| The Matrix | 19999 |"},
		{"year with suffix", "| The Matrix | 1999x |"},
		{"no leading pipe", "The Matrix | 1999 |"},
		{"empty title", "|  | 1999 |"},
		{"year missing closing pipe", "| The Matrix | 1999"},
		{"separator row", "|---|---|"},
		{"plain text", "just some text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(strings.NewReader(tt.line))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("Expected no entries for %q, got %v", tt.line, entries)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	entries, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

package parser

import (
	"strings"
	"testing"
)

func TestSearchResultParser_ParseHtml(t *testing.T) {
	html := `
		<html><body><table>
		<tr><td class="result_text"><a href="/title/tt0133093/?ref_=fn_tt_tt_1">The Matrix</a> (1999)</td></tr>
		<tr><td class="result_text"><a href="/title/tt0106062/?ref_=fn_tt_tt_2">Matrix</a> (1993) (TV Series)</td></tr>
		<tr><td class="result_text">No link here (2001)</td></tr>
		</table></body></html>`

	p := NewSearchResultParser()
	results, err := p.ParseHtml(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d: %v", len(results), results)
	}

	if results[0].Href != "/title/tt0133093/?ref_=fn_tt_tt_1" {
		t.Errorf("Unexpected first href: %q", results[0].Href)
	}
	if results[0].Text != "The Matrix (1999)" {
		t.Errorf("Unexpected first text: %q", results[0].Text)
	}
	if results[1].Text != "Matrix (1993) (TV Series)" {
		t.Errorf("Unexpected second text: %q", results[1].Text)
	}
}

func TestSearchResultParser_ParseHtml_NoResults(t *testing.T) {
	html := `<html><body><p>No results found for your search.</p></body></html>`

	p := NewSearchResultParser()
	results, err := p.ParseHtml(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}

func TestSearchResultParser_ParseHtml_CollapsesWhitespace(t *testing.T) {
	html := `
		<html><body><table>
		<tr><td class="result_text">
			<a href="/title/tt0078748/">Alien</a>
			(1979)
		</td></tr>
		</table></body></html>`

	p := NewSearchResultParser()
	results, err := p.ParseHtml(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Text != "Alien (1979)" {
		t.Errorf("Expected collapsed text %q, got %q", "Alien (1979)", results[0].Text)
	}
}

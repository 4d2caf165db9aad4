package client

import "fmt"

// ErrNoResults is returned when the find endpoint yields no candidate titles
type ErrNoResults struct {
	Title string
	Year  string
}

// Error implements the error interface
func (e *ErrNoResults) Error() string {
	return fmt.Sprintf("no search results for %q (%s)", e.Title, e.Year)
}

// Is allows for error checking with errors.Is()
func (e *ErrNoResults) Is(target error) bool {
	_, ok := target.(*ErrNoResults)
	return ok
}

// ErrBadStatus is returned when a page request yields a non-success HTTP status
type ErrBadStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// Is allows for error checking with errors.Is()
func (e *ErrBadStatus) Is(target error) bool {
	_, ok := target.(*ErrBadStatus)
	return ok
}

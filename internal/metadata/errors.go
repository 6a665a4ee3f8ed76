package metadata

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMetadataBuffer indicates the buffer held no recognizable tags; callers treat it as cancellation.
	ErrEmptyMetadataBuffer = errors.New("metadata buffer is empty")
	// ErrMissingTitle indicates the title field is empty.
	ErrMissingTitle = errors.New("missing title")
	// ErrMissingYear indicates the year field is empty.
	ErrMissingYear = errors.New("missing year")
	// ErrMissingContributor indicates neither authors nor editors were given.
	ErrMissingContributor = errors.New("missing author or editor")
	// ErrEmptySlug indicates the reference contained nothing usable for a filename.
	ErrEmptySlug = errors.New("reference yields an empty filename")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrEmptyMetadataBuffer, "EmptyMetadataBuffer"},
	{ErrMissingTitle, "MissingTitle"},
	{ErrMissingYear, "MissingYear"},
	{ErrMissingContributor, "MissingContributor"},
	{ErrEmptySlug, "EmptySlug"},
}

// KindOf returns the stable kind name of a domain error, or "" when err is not one.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// ErrorForKind is the inverse of KindOf.
func ErrorForKind(kind string) error {
	for _, k := range kinds {
		if k.name == kind {
			return k.err
		}
	}
	return nil
}

// IssuesError reports every problem found in a record at once.
type IssuesError struct {
	Issues []error
}

// Error implements the error interface.
func (e *IssuesError) Error() string {
	if len(e.Issues) == 0 {
		return "no issues"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d metadata issues:\n", len(e.Issues)))
	for _, issue := range e.Issues {
		sb.WriteString(fmt.Sprintf("  - %s\n", issue))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Unwrap exposes the individual issues to errors.Is.
func (e *IssuesError) Unwrap() []error {
	return e.Issues
}

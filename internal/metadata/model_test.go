package metadata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecordValidate(t *testing.T) {
	valid := Record{Title: "T", Year: "2000", Authors: []string{"A B"}, Tags: 3}

	cases := []struct {
		name string
		mut  func(r *Record)
		want error
	}{
		{name: "valid", mut: func(r *Record) {}, want: nil},
		{name: "editors only", mut: func(r *Record) { r.Authors = nil; r.Editors = []string{"E F"} }, want: nil},
		{name: "empty buffer", mut: func(r *Record) { *r = Record{} }, want: ErrEmptyMetadataBuffer},
		{name: "missing title", mut: func(r *Record) { r.Title = "" }, want: ErrMissingTitle},
		{name: "missing year", mut: func(r *Record) { r.Year = " " }, want: ErrMissingYear},
		{name: "missing contributor", mut: func(r *Record) { r.Authors = nil }, want: ErrMissingContributor},
		{name: "sentinel only", mut: func(r *Record) { r.Authors = []string{Sentinel} }, want: ErrMissingContributor},
		{name: "title checked before year", mut: func(r *Record) { r.Title = ""; r.Year = "" }, want: ErrMissingTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := valid
			rec.Authors = append([]string(nil), valid.Authors...)
			tc.mut(&rec)
			err := rec.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRecordNames(t *testing.T) {
	rec := Record{Authors: []string{"A", "et al.", "C"}, Editors: []string{"E"}}
	names, cut := rec.Names(RoleAuthor)
	if !cut || len(names) != 1 || names[0] != "A" {
		t.Fatalf("unexpected authors: %v %v", names, cut)
	}
	names, cut = rec.Names(RoleEditor)
	if cut || len(names) != 1 {
		t.Fatalf("unexpected editors: %v %v", names, cut)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("buffer: %w", ErrMissingYear)
	if got := KindOf(wrapped); got != "MissingYear" {
		t.Fatalf("unexpected kind %q", got)
	}
	if KindOf(errors.New("other")) != "" || KindOf(nil) != "" {
		t.Fatalf("expected empty kind for foreign errors")
	}
	if ErrorForKind("MissingContributor") != ErrMissingContributor {
		t.Fatalf("expected round trip of kind")
	}
	if ErrorForKind("Nope") != nil {
		t.Fatalf("expected nil for unknown kind")
	}
}

func TestIssuesError(t *testing.T) {
	empty := &IssuesError{}
	if empty.Error() != "no issues" {
		t.Fatalf("unexpected message: %s", empty.Error())
	}

	single := &IssuesError{Issues: []error{ErrMissingTitle}}
	if single.Error() != ErrMissingTitle.Error() {
		t.Fatalf("unexpected message: %s", single.Error())
	}

	multi := &IssuesError{Issues: []error{ErrMissingTitle, ErrMissingYear}}
	msg := multi.Error()
	if !strings.Contains(msg, "found 2 metadata issues") || !strings.Contains(msg, "missing year") {
		t.Fatalf("unexpected message: %s", msg)
	}
	if !errors.Is(multi, ErrMissingYear) {
		t.Fatalf("expected errors.Is to see wrapped issue")
	}
}

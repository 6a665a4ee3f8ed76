// Package pipeline derives a filename slug from an edited metadata buffer.
//
// A run parses the buffer, checks the required fields, builds the reference
// string, transliterates it to ASCII and slugifies it. Runs are pure and
// independent; a Pipeline can be shared between goroutines.
package pipeline

import (
	"github.com/refslug/refslug/internal/metadata"
	"github.com/refslug/refslug/internal/reference"
	"github.com/refslug/refslug/internal/translit"
	"github.com/refslug/refslug/internal/util"
)

// Pipeline holds the per-run choices: buffer grammar and editor marker.
type Pipeline struct {
	format metadata.Format
	marker reference.MarkerStyle
}

// Result carries every intermediate of a successful run.
type Result struct {
	Record         metadata.Record        `yaml:"record" json:"record"`
	Authors        []reference.PersonName `yaml:"authors" json:"authors"`
	Editors        []reference.PersonName `yaml:"editors" json:"editors"`
	Reference      string                 `yaml:"reference" json:"reference"`
	Transliterated string                 `yaml:"transliterated" json:"transliterated"`
	Slug           string                 `yaml:"slug" json:"slug"`
}

// New returns a pipeline; empty arguments select the key=value grammar and
// the "(Hg.)" marker.
func New(format metadata.Format, marker reference.MarkerStyle) *Pipeline {
	if format == "" {
		format = metadata.FormatKeyValue
	}
	if marker == "" {
		marker = reference.MarkerHg
	}
	return &Pipeline{format: format, marker: marker}
}

// Format returns the configured buffer grammar.
func (p *Pipeline) Format() metadata.Format { return p.format }

// Marker returns the configured editor marker.
func (p *Pipeline) Marker() reference.MarkerStyle { return p.marker }

// Parse extracts the record from text without validating it.
func (p *Pipeline) Parse(text string) metadata.Record {
	return metadata.Parse(p.format, text)
}

// Run parses text and derives the slug. Errors are the metadata sentinel
// errors and can be classified with metadata.KindOf.
func (p *Pipeline) Run(text string) (*Result, error) {
	return p.FromRecord(p.Parse(text))
}

// FromRecord derives the slug for an already parsed record.
func (p *Pipeline) FromRecord(rec metadata.Record) (*Result, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	authors, editors, _ := reference.Contributors(rec, p.marker)
	ref, err := reference.Build(rec, p.marker)
	if err != nil {
		return nil, err
	}

	ascii := translit.ToASCII(ref)
	slug := util.Slugify(ascii)
	if slug == "" {
		return nil, metadata.ErrEmptySlug
	}

	return &Result{
		Record:         rec,
		Authors:        authors,
		Editors:        editors,
		Reference:      ref,
		Transliterated: ascii,
		Slug:           slug,
	}, nil
}

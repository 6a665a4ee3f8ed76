package validator

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"github.com/refslug/refslug/internal/config"
	"github.com/refslug/refslug/internal/metadata"
)

//go:embed schema.json
var recordSchema string

// Issue is one problem found in a record.
type Issue struct {
	Kind    string `json:"kind" yaml:"kind"`
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Report lists every issue of a record in check order.
type Report struct {
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Valid reports whether the record passed.
func (r *Report) Valid() bool {
	return len(r.Issues) == 0
}

// Err folds the report into a single error, nil when valid.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	issues := make([]error, 0, len(r.Issues))
	for _, issue := range r.Issues {
		issues = append(issues, metadata.ErrorForKind(issue.Kind))
	}
	return &metadata.IssuesError{Issues: issues}
}

// Validator checks records against the embedded JSON schema.
type Validator struct {
	schema *gojsonschema.Schema
	log    *logrus.Entry
}

// New compiles the record schema.
func New(opts *config.Options) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recordSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile record schema: %w", err)
	}
	return &Validator{
		schema: schema,
		log:    opts.Logger().WithField("component", "validator"),
	}, nil
}

// Check validates rec and reports every missing field at once.
func (v *Validator) Check(rec metadata.Record) (*Report, error) {
	if rec.Tags == 0 {
		v.log.Warn("Metadata buffer has no tags")
		return &Report{Issues: []Issue{newIssue(metadata.ErrEmptyMetadataBuffer, "(root)")}}, nil
	}

	authors, _ := rec.Names(metadata.RoleAuthor)
	editors, _ := rec.Names(metadata.RoleEditor)
	doc := map[string]interface{}{
		"title":   strings.TrimSpace(rec.Title),
		"year":    strings.TrimSpace(rec.Year),
		"authors": authors,
		"editors": editors,
	}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	found := map[error]string{}
	for _, desc := range result.Errors() {
		kind := classify(desc)
		if _, seen := found[kind]; !seen {
			found[kind] = desc.Field()
		}
	}

	report := &Report{}
	for _, kind := range []error{metadata.ErrMissingTitle, metadata.ErrMissingYear, metadata.ErrMissingContributor} {
		if field, ok := found[kind]; ok {
			report.Issues = append(report.Issues, newIssue(kind, field))
		}
	}

	if report.Valid() {
		v.log.Info("Record passed validation")
	} else {
		v.log.WithField("issues", len(report.Issues)).Warn("Record has missing fields")
	}
	return report, nil
}

// classify maps a schema error onto a domain error; anything that is not
// about title or year concerns the contributor lists.
func classify(desc gojsonschema.ResultError) error {
	field := desc.Field()
	if field == "(root)" {
		if property, ok := desc.Details()["property"].(string); ok {
			field = property
		}
	}
	switch {
	case field == "title":
		return metadata.ErrMissingTitle
	case field == "year":
		return metadata.ErrMissingYear
	default:
		return metadata.ErrMissingContributor
	}
}

func newIssue(err error, field string) Issue {
	return Issue{Kind: metadata.KindOf(err), Field: field, Message: err.Error()}
}

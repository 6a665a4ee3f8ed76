package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refslug/refslug/internal/config"
	"github.com/refslug/refslug/internal/metadata"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(config.New())
	require.NoError(t, err)
	return v
}

func kinds(report *Report) []string {
	out := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		out = append(out, issue.Kind)
	}
	return out
}

func TestCheckValidRecord(t *testing.T) {
	v := newValidator(t)
	report, err := v.Check(metadata.Record{
		Title:   "Oper und Drama",
		Year:    "1852",
		Authors: []string{"Richard Wagner"},
		Tags:    3,
	})
	require.NoError(t, err)
	assert.True(t, report.Valid())
	assert.NoError(t, report.Err())
}

func TestCheckEditorsOnly(t *testing.T) {
	v := newValidator(t)
	report, err := v.Check(metadata.Record{
		Title:   "Sammelband",
		Year:    "2001",
		Editors: []string{"Max Mustermann"},
		Tags:    3,
	})
	require.NoError(t, err)
	assert.True(t, report.Valid())
}

func TestCheckMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		record metadata.Record
		want   []string
	}{
		{
			name:   "title",
			record: metadata.Record{Year: "1852", Authors: []string{"A B"}, Tags: 2},
			want:   []string{"MissingTitle"},
		},
		{
			name:   "year",
			record: metadata.Record{Title: "T", Authors: []string{"A B"}, Tags: 2},
			want:   []string{"MissingYear"},
		},
		{
			name:   "contributor",
			record: metadata.Record{Title: "T", Year: "1852", Tags: 2},
			want:   []string{"MissingContributor"},
		},
		{
			name:   "blank title",
			record: metadata.Record{Title: "   ", Year: "1852", Authors: []string{"A B"}, Tags: 3},
			want:   []string{"MissingTitle"},
		},
		{
			name:   "everything",
			record: metadata.Record{Tags: 1},
			want:   []string{"MissingTitle", "MissingYear", "MissingContributor"},
		},
		{
			name:   "sentinel only",
			record: metadata.Record{Title: "T", Year: "1852", Authors: []string{metadata.Sentinel}, Tags: 3},
			want:   []string{"MissingContributor"},
		},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := v.Check(tt.record)
			require.NoError(t, err)
			assert.False(t, report.Valid())
			assert.Equal(t, tt.want, kinds(report))
		})
	}
}

func TestCheckEmptyBuffer(t *testing.T) {
	v := newValidator(t)
	report, err := v.Check(metadata.Record{})
	require.NoError(t, err)
	assert.Equal(t, []string{"EmptyMetadataBuffer"}, kinds(report))
	assert.True(t, errors.Is(report.Err(), metadata.ErrEmptyMetadataBuffer))
}

func TestReportErrWrapsEveryIssue(t *testing.T) {
	v := newValidator(t)
	report, err := v.Check(metadata.Record{Title: "T", Tags: 1})
	require.NoError(t, err)

	folded := report.Err()
	require.Error(t, folded)
	assert.True(t, errors.Is(folded, metadata.ErrMissingYear))
	assert.True(t, errors.Is(folded, metadata.ErrMissingContributor))
	assert.False(t, errors.Is(folded, metadata.ErrMissingTitle))
	assert.Contains(t, folded.Error(), "missing year")
}

func TestCheckAgreesWithValidate(t *testing.T) {
	v := newValidator(t)
	records := []metadata.Record{
		{Title: "T", Year: "1", Authors: []string{"A"}, Tags: 3},
		{Title: "T", Tags: 1},
		{Year: "1", Editors: []string{"E"}, Tags: 2},
		{Title: "T", Year: "1", Editors: []string{metadata.Sentinel, "E"}, Tags: 3},
	}
	for _, rec := range records {
		report, err := v.Check(rec)
		require.NoError(t, err)
		first := rec.Validate()
		if first == nil {
			assert.True(t, report.Valid())
			continue
		}
		require.NotEmpty(t, report.Issues)
		assert.Equal(t, metadata.KindOf(first), report.Issues[0].Kind)
	}
}

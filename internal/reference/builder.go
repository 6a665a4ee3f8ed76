package reference

import (
	"strings"

	"github.com/refslug/refslug/internal/metadata"
)

// Contributors normalizes and aggregates both roles of rec.
func Contributors(rec metadata.Record, marker MarkerStyle) (authors, editors []PersonName, part string) {
	authors, authorsCut := names(rec, metadata.RoleAuthor)
	editors, editorsCut := names(rec, metadata.RoleEditor)

	parts := make([]string, 0, 2)
	if agg := Aggregate(normalized(authors), authorsCut, metadata.RoleAuthor, marker); agg != "" {
		parts = append(parts, agg)
	}
	if agg := Aggregate(normalized(editors), editorsCut, metadata.RoleEditor, marker); agg != "" {
		parts = append(parts, agg)
	}
	return authors, editors, strings.Join(parts, "; ")
}

// Build assembles "Contributors (Year): Title", leaving out absent parts.
func Build(rec metadata.Record, marker MarkerStyle) (string, error) {
	_, _, contributors := Contributors(rec, marker)
	if contributors == "" {
		return "", metadata.ErrMissingContributor
	}
	var sb strings.Builder
	sb.WriteString(contributors)
	if year := strings.TrimSpace(rec.Year); year != "" {
		sb.WriteString(" (" + year + ")")
	}
	if title := strings.TrimSpace(rec.Title); title != "" {
		sb.WriteString(": " + title)
	}
	return sb.String(), nil
}

func names(rec metadata.Record, role metadata.Role) ([]PersonName, bool) {
	raw, cut := rec.Names(role)
	out := make([]PersonName, 0, len(raw))
	for _, name := range raw {
		if strings.TrimSpace(name) == "" {
			continue
		}
		out = append(out, NewPersonName(name))
	}
	return out, cut
}

func normalized(list []PersonName) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Normalized
	}
	return out
}

package reference

import (
	"fmt"
	"strings"

	"github.com/refslug/refslug/internal/metadata"
)

// MarkerStyle is the suffix that marks a name as an editor.
type MarkerStyle string

const (
	MarkerHg      MarkerStyle = "(Hg.)"
	MarkerHgLower MarkerStyle = "(hg)"
)

// ParseMarkerStyle accepts a marker with or without parentheses.
func ParseMarkerStyle(value string) (MarkerStyle, error) {
	switch strings.TrimSpace(value) {
	case "", "(Hg.)", "Hg.":
		return MarkerHg, nil
	case "(hg)", "hg":
		return MarkerHgLower, nil
	default:
		return "", fmt.Errorf("unknown editor marker %q (want \"(Hg.)\" or \"(hg)\")", value)
	}
}

// Aggregate joins the normalized names of one role. names must already be cut
// at the sentinel; truncated reports whether a sentinel was seen.
//
//	0 names            -> ""
//	1 name             -> "n1"
//	2 names            -> "n1; n2"
//	3+ or truncated    -> "n1 et al."
//
// Editor names, and the "et al." form, carry the marker suffix.
func Aggregate(names []string, truncated bool, role metadata.Role, marker MarkerStyle) string {
	if len(names) == 0 {
		return ""
	}
	suffix := ""
	if role == metadata.RoleEditor {
		suffix = " " + string(marker)
	}
	if truncated || len(names) >= 3 {
		return names[0] + suffix + " " + metadata.Sentinel + suffix
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name + suffix
	}
	return strings.Join(out, "; ")
}

// Package reference turns a metadata record into a human-readable citation
// string of the form "Last, First (Year): Title".
package reference

import "strings"

// PersonName pairs a name as typed with its "Last, First" form.
type PersonName struct {
	Raw        string `yaml:"raw" json:"raw"`
	Normalized string `yaml:"normalized" json:"normalized"`
}

// NewPersonName normalizes raw.
func NewPersonName(raw string) PersonName {
	return PersonName{Raw: raw, Normalized: NormalizeName(raw)}
}

// NormalizeName reorders "First Middle Last" to "Last, First Middle". Names
// that already contain a comma and single-word names are returned trimmed.
func NormalizeName(raw string) string {
	fields := strings.Fields(raw)
	if strings.Contains(raw, ",") || len(fields) < 2 {
		return strings.Join(fields, " ")
	}
	last := fields[len(fields)-1]
	return last + ", " + strings.Join(fields[:len(fields)-1], " ")
}

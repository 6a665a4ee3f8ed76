package metadata

import (
	"fmt"
	"strings"
)

// Sentinel is the literal a user types to cut a name list short.
const Sentinel = "et al."

// Role identifies which contributor list a name belongs to.
type Role string

const (
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
)

// Format selects the grammar of the editable metadata buffer.
type Format string

const (
	// FormatKeyValue is the KEY=VALUE line grammar.
	FormatKeyValue Format = "keyvalue"
	// FormatTagged is the <tag> ... </tag> block grammar.
	FormatTagged Format = "tagged"
	// FormatAuto picks one of the above by looking at the buffer.
	FormatAuto Format = "auto"
)

// ParseFormat resolves a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "keyvalue", "kv", "a":
		return FormatKeyValue, nil
	case "tagged", "tag", "b":
		return FormatTagged, nil
	case "auto":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unknown metadata format %q (want keyvalue, tagged or auto)", value)
	}
}

// Record holds the bibliographic fields extracted from one buffer.
type Record struct {
	Title   string   `yaml:"title" json:"title"`
	Year    string   `yaml:"year" json:"year"`
	Authors []string `yaml:"authors" json:"authors"`
	Editors []string `yaml:"editors" json:"editors"`

	// Tags counts the recognized tags in the source buffer.
	Tags int `yaml:"-" json:"-"`
}

// Names returns the raw names for role up to the first sentinel, and whether
// a sentinel cut the list.
func (r Record) Names(role Role) ([]string, bool) {
	list := r.Authors
	if role == RoleEditor {
		list = r.Editors
	}
	out := make([]string, 0, len(list))
	for _, name := range list {
		if IsSentinel(name) {
			return out, true
		}
		out = append(out, name)
	}
	return out, false
}

// Validate reports the first missing field in check order.
func (r Record) Validate() error {
	if r.Tags == 0 {
		return ErrEmptyMetadataBuffer
	}
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(r.Year) == "" {
		return ErrMissingYear
	}
	authors, _ := r.Names(RoleAuthor)
	editors, _ := r.Names(RoleEditor)
	if len(authors) == 0 && len(editors) == 0 {
		return ErrMissingContributor
	}
	return nil
}

// IsSentinel reports whether value is the manual truncation marker.
func IsSentinel(value string) bool {
	return strings.TrimSpace(value) == Sentinel
}

// appendName adds a cleaned name to list unless list is already closed by a sentinel.
func appendName(list []string, value string) []string {
	if value == "" {
		return list
	}
	if n := len(list); n > 0 && IsSentinel(list[n-1]) {
		return list
	}
	return append(list, value)
}

package util

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases input and folds every run of characters outside
// [a-z0-9] into a single underscore, without leading or trailing underscores.
// The result is empty when input has no ASCII letters or digits.
func Slugify(input string) string {
	lower := strings.ToLower(input)
	slug := slugPattern.ReplaceAllString(lower, "_")
	slug = strings.TrimPrefix(slug, "_")
	return strings.TrimSuffix(slug, "_")
}

// Package translit maps arbitrary text to ASCII without losing the meaning of
// ':' and '?'.
//
// The conversion runs in fixed stages: colon and question mark are escaped to
// sentinels, a table of known letters and punctuation is applied, a generic
// fallback folds what is left (compatibility decomposition, combining marks
// removed, anything still outside ASCII dropped), stray '?' are deleted, and
// the sentinels are restored.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	sentinelLead     = "\x1a"
	colonSentinel    = sentinelLead + "c"
	questionSentinel = sentinelLead + "q"
)

var escaper = strings.NewReplacer(
	":", colonSentinel,
	"?", questionSentinel,
)

// knownReplacer is the enumerated substitution table.
var knownReplacer = strings.NewReplacer(
	"„", `"`, "“", `"`, "”", `"`, "«", `"`, "»", `"`,
	"‚", `"`, "‘", `"`, "’", `"`, "‹", `"`, "›", `"`,
	"¦", "|",
	"¡", "!",
	"¿", questionSentinel,
	"÷", "/",
	"±", "+-",
	"¹", "^1", "²", "^2", "³", "^3",
	"Ä", "Ae", "ä", "ae",
	"Ö", "Oe", "ö", "oe",
	"Ü", "Ue", "ü", "ue",
	"Ø", "Oe", "ø", "oe",
	"Ð", "Dh", "ð", "dh",
	"Þ", "Th", "þ", "th",
)

// fallbackReplacer covers letters and punctuation that have no decomposition.
var fallbackReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ł", "L", "ł", "l",
	"Đ", "D", "đ", "d",
	"Ħ", "H", "ħ", "h",
	"Ŧ", "T", "ŧ", "t",
	"ı", "i",
	"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "―", "-", "−", "-",
	"×", "x",
	"€", "EUR",
)

// ToASCII transliterates s. It never fails and always returns ASCII.
func ToASCII(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, sentinelLead, "")
	s = escaper.Replace(s)
	s = knownReplacer.Replace(norm.NFC.String(s))
	s = fold(s)
	s = strings.ReplaceAll(s, "?", "")
	s = strings.ReplaceAll(s, questionSentinel, "?")
	return strings.ReplaceAll(s, colonSentinel, ":")
}

func fold(s string) string {
	s = fallbackReplacer.Replace(s)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}

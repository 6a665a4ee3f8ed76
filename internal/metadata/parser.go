package metadata

import (
	"regexp"
	"strings"
	"unicode"
)

var keyValuePattern = regexp.MustCompile(`^(TITLE|AUTHOR|EDITOR|YEAR)=(.*)$`)

// blockTags lists the tag names of the tagged grammar.
var blockTags = []string{"title", "year", "authors", "editors"}

// glyphReplacer undoes paste and OCR artifacts in tagged buffers.
var glyphReplacer = strings.NewReplacer(
	"–", "-",
	"¹", "1",
	"²", "2",
	"³", "3",
	"⁴", "4",
	"⁵", "5",
	"⁶", "6",
	"⁷", "7",
	"⁸", "8",
	"⁹", "9",
)

// Parse extracts a Record from a buffer written in the given format. It never
// fails: unrecognized or malformed content simply leaves fields empty.
func Parse(format Format, text string) Record {
	text = normalizeNewlines(text)
	if format == FormatAuto {
		format = DetectFormat(text)
	}
	if format == FormatTagged {
		return parseTagged(text)
	}
	return parseKeyValue(text)
}

// DetectFormat guesses the grammar of a buffer: any block delimiter line means tagged.
func DetectFormat(text string) Format {
	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		if _, _, ok := blockDelimiter(line); ok {
			return FormatTagged
		}
	}
	return FormatKeyValue
}

func parseKeyValue(text string) Record {
	var rec Record
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		m := keyValuePattern.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		rec.Tags++
		value := collapseSpace(m[2])
		if value == "" {
			continue
		}
		switch m[1] {
		case "TITLE":
			if rec.Title == "" {
				rec.Title = value
			}
		case "YEAR":
			if rec.Year == "" {
				rec.Year = value
			}
		case "AUTHOR":
			rec.Authors = appendName(rec.Authors, value)
		case "EDITOR":
			rec.Editors = appendName(rec.Editors, value)
		}
	}
	return rec
}

func parseTagged(text string) Record {
	var rec Record
	var current string
	buffer := make([]string, 0)

	flush := func() {
		switch current {
		case "title", "year":
			parts := make([]string, 0, len(buffer))
			for _, line := range buffer {
				if cleaned := cleanLine(line); cleaned != "" {
					parts = append(parts, cleaned)
				}
			}
			value := strings.Join(parts, " ")
			if current == "title" && rec.Title == "" {
				rec.Title = value
			}
			if current == "year" && rec.Year == "" {
				rec.Year = value
			}
		case "authors", "editors":
			for _, line := range buffer {
				for _, name := range splitNames(line) {
					if current == "authors" {
						rec.Authors = appendName(rec.Authors, name)
					} else {
						rec.Editors = appendName(rec.Editors, name)
					}
				}
			}
		}
		rec.Tags++
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		tag, closing, ok := blockDelimiter(line)
		switch {
		case ok && current == "" && !closing:
			current = tag
		case ok && closing && tag == current:
			flush()
			current = ""
		case current != "":
			buffer = append(buffer, line)
		}
	}

	return rec
}

// blockDelimiter reports whether line is <tag> or </tag> for a known tag.
func blockDelimiter(line string) (tag string, closing bool, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "<") || !strings.HasSuffix(trimmed, ">") {
		return "", false, false
	}
	inner := trimmed[1 : len(trimmed)-1]
	if strings.HasPrefix(inner, "/") {
		closing = true
		inner = inner[1:]
	}
	for _, known := range blockTags {
		if inner == known {
			return known, closing, true
		}
	}
	return "", false, false
}

func isNameDelimiter(r rune) bool {
	switch r {
	case '/', '·', '•', '|', '\x1f':
		return true
	}
	return false
}

func splitNames(line string) []string {
	segments := strings.FieldsFunc(line, isNameDelimiter)
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if cleaned := cleanLine(segment); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func cleanLine(line string) string {
	return glyphReplacer.Replace(collapseSpace(line))
}

// collapseSpace trims s and folds every whitespace run to a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

package metadata

import "strings"

const keyValueHelp = `# Fill in the fields below, save and quit the editor.
# One AUTHOR= or EDITOR= line per person; "et al." ends a list.
# Lines starting with # are ignored. Clear the buffer to cancel.
`

// RenderTemplate produces the editable buffer for format, prefilled from seed.
// Parsing the result with the same format yields seed back.
func RenderTemplate(format Format, seed Record) string {
	if format == FormatTagged {
		return renderTagged(seed)
	}
	return renderKeyValue(seed)
}

func renderKeyValue(seed Record) string {
	var sb strings.Builder
	sb.WriteString(keyValueHelp)
	sb.WriteString("TITLE=" + seed.Title + "\n")
	sb.WriteString("YEAR=" + seed.Year + "\n")
	if len(seed.Authors) == 0 {
		sb.WriteString("AUTHOR=\n")
	}
	for _, name := range seed.Authors {
		sb.WriteString("AUTHOR=" + name + "\n")
	}
	for _, name := range seed.Editors {
		sb.WriteString("EDITOR=" + name + "\n")
	}
	sb.WriteString("#AUTHOR=\n")
	sb.WriteString("#EDITOR=\n")
	return sb.String()
}

func renderTagged(seed Record) string {
	var sb strings.Builder
	block := func(tag string, lines ...string) {
		sb.WriteString("<" + tag + ">\n")
		for _, line := range lines {
			if line != "" {
				sb.WriteString(line + "\n")
			}
		}
		sb.WriteString("</" + tag + ">\n")
	}
	block("title", seed.Title)
	block("year", seed.Year)
	block("authors", seed.Authors...)
	block("editors", seed.Editors...)
	return sb.String()
}

// Package format holds the small pure text helpers shared by the display
// surfaces: markdown escaping, width shortening and duration formatting.
package format

import (
	"fmt"
	"strings"
)

const shortenPlaceholder = "..."

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
)

// EscapeMarkdown escapes the markdown control characters in a display name so
// track and artist names render verbatim.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Shorten collapses whitespace and truncates s to at most width characters,
// cutting at a word boundary and appending a placeholder when anything was
// dropped.
func Shorten(s string, width int) string {
	words := strings.Fields(s)
	collapsed := strings.Join(words, " ")
	if len(collapsed) <= width {
		return collapsed
	}

	out := ""
	for _, w := range words {
		candidate := w
		if out != "" {
			candidate = out + " " + w
		}
		if len(candidate)+len(shortenPlaceholder)+1 > width {
			break
		}
		out = candidate
	}
	if out == "" {
		return shortenPlaceholder
	}
	return out + " " + shortenPlaceholder
}

// Duration renders a millisecond count as MM:SS, the label format of the
// primary play link.
func Duration(ms int64) string {
	seconds := ms / 1000
	minutes := seconds / 60
	seconds %= 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// JoinNames joins a name list for display, comma separated.
func JoinNames(names []string) string {
	return strings.Join(names, ", ")
}

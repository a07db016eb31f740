// Package chunk splits raw content into ordered, bounded pages.
// Chunking is deterministic and pure: no I/O, no clock, no randomness.
package chunk

import (
	"strings"
	"unicode/utf8"

	"github.com/linernotes/liner/internal/domain"
)

const (
	// maxChars bounds the character count of a free-text page
	maxChars = 1024
	// maxLines bounds the line count of a free-text page
	maxLines = 30
	// maxItems bounds the entry count of an item-list page
	maxItems = 15

	// placeholder is emitted as the single page for empty content
	placeholder = "No content available."
)

// Text splits free-form prose into pages of at most maxChars characters and
// maxLines lines. Paragraphs (separated by blank lines) contribute exactly one
// blank separator line each; a separator never forces a page break on its own.
// Finished pages are trimmed of surrounding whitespace and empty pages are
// dropped, so content ending exactly on a boundary yields no trailing page.
// Empty content yields a single placeholder page, never an empty sequence.
func Text(content string) []domain.Page {
	var pages []domain.Page
	var cur []string
	curLen := 0

	flush := func() {
		page := strings.TrimSpace(strings.Join(cur, "\n"))
		if page != "" {
			pages = append(pages, domain.Page(page))
		}
		cur = cur[:0]
		curLen = 0
	}

	for _, paragraph := range strings.Split(content, "\n\n") {
		for _, line := range splitLines(paragraph) {
			for _, part := range hardWrap(line) {
				n := utf8.RuneCountInString(part)
				if len(cur) >= maxLines || (len(cur) > 0 && curLen+n+1 > maxChars) {
					flush()
				}
				cur = append(cur, part)
				curLen += n + 1
			}
		}
		if len(cur) > 0 {
			cur = append(cur, "")
			curLen++
		}
	}
	flush()

	if len(pages) == 0 {
		pages = []domain.Page{placeholder}
	}
	return pages
}

// Items splits formatted entries into pages of at most maxItems entries, each
// page prefixed with the same header verbatim. A final partial page is only
// emitted when it holds at least one entry, unless there are no entries at all
// (the header alone then forms the single page).
func Items(header string, entries []string) []domain.Page {
	var pages []domain.Page
	cur := []string{header}

	for _, entry := range entries {
		cur = append(cur, entry)
		if len(cur) == maxItems+1 {
			pages = append(pages, domain.Page(strings.Join(cur, "\n")))
			cur = []string{header}
		}
	}
	if len(cur) > 1 || len(pages) == 0 {
		pages = append(pages, domain.Page(strings.Join(cur, "\n")))
	}
	return pages
}

// splitLines behaves like splitting on newlines without a phantom final
// element: "a\nb\n" yields [a b], "" yields nothing.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// hardWrap breaks a single line that alone exceeds the page character bound.
// Lyric and listing lines never get near the bound, but the page invariant
// must hold for arbitrary input.
func hardWrap(line string) []string {
	if utf8.RuneCountInString(line) < maxChars {
		return []string{line}
	}
	var parts []string
	runes := []rune(line)
	for len(runes) >= maxChars {
		parts = append(parts, string(runes[:maxChars-1]))
		runes = runes[maxChars-1:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

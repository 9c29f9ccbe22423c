package markup

import (
	"regexp"
	"strings"
)

// Inline substitutions, applied in this order. Each pass runs over the output
// of the previous one, so e.g. asterisks inside a code span are still
// eligible for emphasis.
var (
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	boldRegex       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	// The emphasized text must not start or end with whitespace, which keeps
	// "a * b * c" and stray bullet-like asterisks literal.
	italicRegex = regexp.MustCompile(`\*(\S(?:.*?\S)??)\*`)
	linkRegex   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// RenderInline applies code span, bold, italic and link substitution to a
// single line. The text is not escaped.
func RenderInline(line string) string {
	line = inlineCodeRegex.ReplaceAllString(line, `<code class="inline-code">${1}</code>`)
	line = boldRegex.ReplaceAllString(line, `<strong>${1}</strong>`)
	line = italicRegex.ReplaceAllString(line, `<em>${1}</em>`)
	line = linkRegex.ReplaceAllString(line, `<a href="${2}" target="_blank" class="markdown-link">${1}</a>`)
	return line
}

// StripInline removes inline markup from a line, for outputs that cannot
// show it. Links keep their target in parentheses.
func StripInline(line string) string {
	line = inlineCodeRegex.ReplaceAllString(line, "${1}")
	line = boldRegex.ReplaceAllString(line, "${1}")
	line = italicRegex.ReplaceAllString(line, "${1}")
	line = linkRegex.ReplaceAllString(line, "${1} (${2})")
	return strings.TrimSpace(line)
}

// Link is an inline [text](href) link.
type Link struct {
	Text string
	Href string
}

// Links returns the inline links in text, in order.
func Links(text string) []Link {
	matches := linkRegex.FindAllStringSubmatch(text, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], Href: m[2]})
	}
	return links
}

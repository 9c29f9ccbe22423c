// Package normalize implements the Normalizer interface.
// It converts a cleaned HTML lesson body into the lesson dialect, the
// line-oriented markdown subset the player renders.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts HTML to the lesson dialect using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts a cleaned HTML fragment into lesson text.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return Dialect(markdown), nil
}

var (
	deepHeadingRegex = regexp.MustCompile(`^#{4,6} `)
	nestedItemRegex  = regexp.MustCompile(`^\s+([-*]|\d+\.) `)
)

// Dialect rewrites CommonMark constructs the lesson dialect does not know:
// h4-h6 become h3 and nested list items are flattened to the top level.
// Trailing whitespace and repeated blank lines are dropped. Fenced code is
// left untouched.
func Dialect(markdown string) string {
	var out []string
	inFence := false
	for _, line := range strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			out = append(out, strings.TrimSpace(line))
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		line = strings.TrimRight(line, " \t")
		switch {
		case line == "" && len(out) > 0 && out[len(out)-1] == "":
			continue
		case deepHeadingRegex.MatchString(line):
			line = "### " + strings.TrimLeft(line, "# ")
		case nestedItemRegex.MatchString(line):
			line = strings.TrimLeft(line, " \t")
		}
		out = append(out, line)
	}
	text := strings.TrimSpace(strings.Join(out, "\n"))
	if text == "" {
		return ""
	}
	return text + "\n"
}

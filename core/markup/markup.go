// Package markup renders lesson content, a small line-oriented markdown
// dialect, into an HTML fragment for the course player.
//
// Rendering is a pure map over blocks: the input is split into blocks on
// blank lines, each block is classified by an ordered chain of predicates and
// rendered on its own, and the results are joined with newlines.
//
// Only code-fence content is HTML-escaped. Text in paragraphs, lists,
// blockquotes, headings and table cells is emitted as written, so callers
// that display untrusted content must sanitize the returned fragment.
package markup

import "strings"

// Render converts lesson text into an HTML fragment. Empty input yields "".
func Render(text string) string {
	if text == "" {
		return ""
	}
	blocks := Segment(text)
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, RenderBlock(b))
	}
	return strings.Join(parts, "\n")
}

// RenderPtr is Render for content that may be absent. A nil text yields "".
func RenderPtr(text *string) string {
	if text == nil {
		return ""
	}
	return Render(*text)
}

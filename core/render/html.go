// Package render provides output renderers for the lessonmd pipeline.
// This file implements the HTML renderer, the format the course player
// injects into the lesson view.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/gaurav-prasanna/lessonmd/core/markup"
)

// HTMLRenderer renders lesson content to an HTML fragment. With Standalone
// set, the fragment is wrapped in a minimal page for previewing.
type HTMLRenderer struct {
	Standalone bool
}

// NewHTMLRenderer creates an HTMLRenderer producing bare fragments.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// NewPageRenderer creates an HTMLRenderer producing standalone pages.
func NewPageRenderer() *HTMLRenderer {
	return &HTMLRenderer{Standalone: true}
}

// Render converts the lesson content to HTML. The fragment is not
// sanitized; see package markup.
func (r *HTMLRenderer) Render(lesson core.Lesson) ([]byte, error) {
	fragment := markup.RenderPtr(lesson.Content)
	if !r.Standalone {
		return []byte(fragment), nil
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if lesson.Title != "" {
		b.WriteString("<title>" + markup.EscapeHTML(lesson.Title) + "</title>\n")
	}
	b.WriteString("</head>\n<body>\n<article class=\"lesson-content\">\n")
	b.WriteString(fragment)
	b.WriteString("\n</article>\n</body>\n</html>\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// Package render — Markdown renderer.
// Writes the lesson source as-is, e.g. to export lessons from the HTTP store.
package render

import (
	"github.com/gaurav-prasanna/lessonmd/core"
)

// MarkdownRenderer writes the lesson text unchanged.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the lesson text as bytes (passthrough).
func (r *MarkdownRenderer) Render(lesson core.Lesson) ([]byte, error) {
	return []byte(lesson.Text()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// Package core defines the pipeline interfaces for lessonmd.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/gaurav-prasanna/lessonmd/core/markup"
)

// Lesson is a lesson as served by the course content store.
// Content is nil when the lesson has no text body (e.g. video lessons).
type Lesson struct {
	ID          int     `json:"id"`
	SectionID   int     `json:"sectionId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"` // video | text | quiz | assignment
	Order       int     `json:"order"`
	Duration    int     `json:"duration,omitempty"`
	Content     *string `json:"content"`
	VideoURL    string  `json:"videoUrl,omitempty"`

	// Source is where the lesson was loaded from (file path or URL).
	Source string `json:"-"`
}

// Text returns the lesson content, or "" when there is none.
func (l Lesson) Text() string {
	if l.Content == nil {
		return ""
	}
	return *l.Content
}

// BlockSummary describes one classified block of a lesson.
type BlockSummary struct {
	Index     int              `json:"index"`
	Kind      markup.BlockKind `json:"kind"`
	FirstLine string           `json:"first_line"`
	Lines     int              `json:"lines"`
}

// Heading is a heading found in the lesson.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink found in the lesson.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CodeSample is a fenced code sample found in the lesson.
type CodeSample struct {
	Language string `json:"language"`
	Label    string `json:"label"`
	Lines    int    `json:"lines"`
}

// LessonOutline is the structural JSON output for a single lesson.
type LessonOutline struct {
	ID       int                      `json:"id,omitempty"`
	Title    string                   `json:"title,omitempty"`
	Source   string                   `json:"source,omitempty"`
	Blocks   []BlockSummary           `json:"blocks"`
	Counts   map[markup.BlockKind]int `json:"counts"`
	Headings []Heading                `json:"headings"`
	Links    []Link                   `json:"links"`
	Code     []CodeSample             `json:"code"`
}

// ContentStore supplies the raw lesson text to render.
type ContentStore interface {
	Lesson(ctx context.Context, ref string) (*Lesson, error)
}

// Extractor pulls the main content from a legacy HTML lesson page.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into the lesson dialect.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a lesson into a final output format.
type Renderer interface {
	Render(lesson Lesson) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}

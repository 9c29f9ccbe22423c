// Package render — JSON renderer.
// Builds a structural outline of a lesson: the kind assigned to every block
// plus the headings, links and code samples an author or course builder
// might want to check. The outline uses the same classifier as the HTML
// renderer, so it reports what the player will actually show.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/gaurav-prasanna/lessonmd/core/markup"
)

// JSONRenderer produces the lesson outline as JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the lesson into its JSON outline.
func (r *JSONRenderer) Render(lesson core.Lesson) ([]byte, error) {
	data, err := json.MarshalIndent(Outline(lesson), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Outline classifies every block of the lesson and collects its structure.
func Outline(lesson core.Lesson) core.LessonOutline {
	outline := core.LessonOutline{
		ID:       lesson.ID,
		Title:    lesson.Title,
		Source:   lesson.Source,
		Blocks:   []core.BlockSummary{},
		Counts:   map[markup.BlockKind]int{},
		Headings: []core.Heading{},
		Links:    []core.Link{},
		Code:     []core.CodeSample{},
	}

	for i, b := range markup.Segment(lesson.Text()) {
		kind := markup.Classify(b)
		outline.Blocks = append(outline.Blocks, core.BlockSummary{
			Index:     i,
			Kind:      kind,
			FirstLine: b.Lines[0],
			Lines:     len(b.Lines),
		})
		outline.Counts[kind]++

		switch kind {
		case markup.KindCodeFence:
			for _, f := range markup.Fences(b.Text()) {
				outline.Code = append(outline.Code, core.CodeSample{
					Language: f.Language,
					Label:    markup.FenceLabel(f.Language),
					Lines:    strings.Count(f.Code, "\n") + 1,
				})
			}
		case markup.KindHeading:
			level, text, _ := markup.Heading(b)
			outline.Headings = append(outline.Headings, core.Heading{Level: level, Text: text})
		case markup.KindUnorderedList, markup.KindOrderedList, markup.KindBlockquote, markup.KindParagraph:
			// Only these kinds go through inline rendering, so only their
			// links reach the player.
			outline.Links = append(outline.Links, extractLinks(b.Text())...)
		}
	}
	return outline
}

func extractLinks(text string) []core.Link {
	found := markup.Links(text)
	links := make([]core.Link, 0, len(found))
	for _, l := range found {
		links = append(links, core.Link{Text: l.Text, Href: l.Href})
	}
	return links
}

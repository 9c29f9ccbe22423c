// Package extract implements the Extractor interface.
// It isolates the lesson body from a legacy HTML lesson page by:
//  1. Finding the best content container (.lesson-content, <main>, <article>, or <body>)
//  2. Removing page chrome and player decorations that are not lesson text
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before extraction.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".lesson-nav", ".quiz-panel",
	// Language headers added around code samples by the lesson renderer.
	".code-header",
}

// containerSelectors are tried in order; the first match is the lesson body.
var containerSelectors = []string{".lesson-content", "main", "article", "body"}

// HTMLExtractor strips page chrome and returns the lesson body fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes a full HTML page and returns the inner HTML of its lesson
// container.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, sel := range containerSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			content = found.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// Title returns the page title: the <title> element, else the first <h1>.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

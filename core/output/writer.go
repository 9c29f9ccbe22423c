// Package output handles file naming and writing for lessonmd outputs.
// Store lessons are named after their id (lesson-42.html); file lessons
// keep their base name (intro.md → intro.html).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/lessonmd/core"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data for the lesson and returns the written path.
func (w *Writer) Write(lesson core.Lesson, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(lesson)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename returns the output base name for a lesson, without extension.
func Filename(lesson core.Lesson) string {
	if lesson.ID != 0 && !isLocal(lesson.Source) {
		return "lesson-" + strconv.Itoa(lesson.ID)
	}
	if lesson.Source != "" {
		base := lesson.Source
		if u, err := url.Parse(lesson.Source); err == nil && u.Scheme != "" && u.Host != "" {
			base = strings.TrimSuffix(u.Path, "/")
		}
		base = filepath.Base(base)
		if name := sanitize(strings.TrimSuffix(base, filepath.Ext(base))); name != "" {
			return name
		}
	}
	if lesson.Title != "" {
		return sanitize(strings.ToLower(lesson.Title))
	}
	return "lesson"
}

func isLocal(source string) bool {
	u, err := url.Parse(source)
	return err != nil || u.Scheme == "" || len(u.Scheme) == 1
}

// sanitize replaces characters outside [A-Za-z0-9_-] with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

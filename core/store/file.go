package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/gaurav-prasanna/lessonmd/core/markup"
)

// lessonExt is the extension of lesson files on disk.
const lessonExt = ".md"

// FileStore loads lessons from files. A reference is either a path to an
// existing file or a lesson name resolved as Dir/<name>.md.
type FileStore struct {
	Dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Lesson reads the lesson file for ref.
func (s *FileStore) Lesson(_ context.Context, ref string) (*core.Lesson, error) {
	path := s.resolve(ref)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("lesson %s: %w", ref, ErrLessonNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return FromText(path, string(data)), nil
}

func (s *FileStore) resolve(ref string) string {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return ref
	}
	name := ref
	if filepath.Ext(name) != lessonExt {
		name += lessonExt
	}
	return filepath.Join(s.Dir, name)
}

// FromText builds a text lesson from raw content. The title is the first
// heading, falling back to the file name; numeric file names become the id.
func FromText(source, text string) *core.Lesson {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	lesson := &core.Lesson{
		Title:   base,
		Type:    "text",
		Content: &text,
		Source:  source,
	}
	if id, err := strconv.Atoi(base); err == nil {
		lesson.ID = id
	}
	for _, b := range markup.Segment(text) {
		if markup.Classify(b) != markup.KindHeading {
			continue
		}
		if _, title, ok := markup.Heading(b); ok && title != "" {
			lesson.Title = title
			break
		}
	}
	return lesson
}

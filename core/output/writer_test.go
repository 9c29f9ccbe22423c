package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		lesson core.Lesson
		want   string
	}{
		{"store lesson", core.Lesson{ID: 42, Source: "http://localhost:3000/api/lessons/42"}, "lesson-42"},
		{"numeric file", core.Lesson{ID: 42, Source: "lessons/42.md"}, "42"},
		{"named file", core.Lesson{Source: "course/intro to abl.md"}, "intro_to_abl"},
		{"imported page", core.Lesson{Source: "https://site.example.com/course/loops.html"}, "loops"},
		{"title only", core.Lesson{Title: "Loops & Blocks"}, "loops___blocks"},
		{"nothing", core.Lesson{}, "lesson"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Filename(tt.lesson))
		})
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write(core.Lesson{Source: "intro.md"}, []byte("<p>x</p>"), ".html")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "intro.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<p>x</p>", string(data))
}

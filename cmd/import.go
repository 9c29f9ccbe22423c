// Package cmd — import command.
// Converts a legacy HTML lesson page into lesson text:
// fetch → extract → normalize → write.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/gaurav-prasanna/lessonmd/core/extract"
	"github.com/gaurav-prasanna/lessonmd/core/logfields"
	"github.com/gaurav-prasanna/lessonmd/core/normalize"
	"github.com/gaurav-prasanna/lessonmd/core/output"
	"github.com/spf13/cobra"
)

const importTimeout = 30 * time.Second

var flagImportOutputDir string

var importCmd = &cobra.Command{
	Use:   "import <url|file.html>",
	Short: "Convert a legacy HTML lesson page into lesson text",
	Long: `Import extracts the lesson body from an HTML page, converts it to the
lesson dialect and writes it as a .md file ready for the content store.

Examples:
  lessonmd import https://courses.example.com/lessons/intro.html
  lessonmd import ./legacy/intro.html --output_dir ./lessons`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&flagImportOutputDir, "output_dir", "", "Output directory (default: store directory)")
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	page, err := readPage(ctx, source)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	slog.Debug("Fetched page", logfields.Stage("fetch"), logfields.URL(source))

	lesson, err := importLesson(page, source, extract.New(), normalize.New())
	if err != nil {
		return err
	}

	dir := flagImportOutputDir
	if dir == "" {
		dir = cfg.Store.Dir
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(*lesson, []byte(lesson.Text()), ".md")
	if err != nil {
		return err
	}
	slog.Info("Imported lesson", logfields.Stage("write"), logfields.URL(source), logfields.Path(path))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// importLesson runs a page through extraction and normalization.
func importLesson(page, source string, extractor core.Extractor, normalizer core.Normalizer) (*core.Lesson, error) {
	body, err := extractor.Extract(page)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	text, err := normalizer.Normalize(body)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return &core.Lesson{
		Title:   extract.Title(page),
		Type:    "text",
		Content: &text,
		Source:  source,
	}, nil
}

// readPage loads the HTML from a URL or a local file.
func readPage(ctx context.Context, source string) (string, error) {
	parsed, err := url.Parse(source)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		data, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", source, err)
		}
		return string(data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	client := &http.Client{Timeout: importTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, source)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

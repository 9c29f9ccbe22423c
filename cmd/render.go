// Package cmd — render command.
// This is the main command that orchestrates the pipeline:
// load (content store) → render → write.
//
// It handles flag validation, store and renderer selection, and stdin input.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/gaurav-prasanna/lessonmd/core/config"
	"github.com/gaurav-prasanna/lessonmd/core/logfields"
	"github.com/gaurav-prasanna/lessonmd/core/markup"
	"github.com/gaurav-prasanna/lessonmd/core/output"
	"github.com/gaurav-prasanna/lessonmd/core/render"
	"github.com/gaurav-prasanna/lessonmd/core/store"
	"github.com/spf13/cobra"
)

// stdinRef reads the lesson from standard input.
const stdinRef = "-"

// Render flag variables.
var (
	flagFormat    string
	flagStore     string
	flagDir       string
	flagBaseURL   string
	flagOutputDir string
	flagStdout    bool
)

var renderCmd = &cobra.Command{
	Use:   "render <lesson>...",
	Short: "Render lessons to HTML, JSON, PDF or Markdown",
	Long: `Render loads each lesson from the content store and writes the rendered
output. A lesson is a file path, a lesson name in the store directory, or a
lesson id when the http store is used. "-" reads lesson text from stdin.

Examples:
  lessonmd render intro.md --stdout
  lessonmd render 12 13 --store http --base_url http://localhost:3000/api
  lessonmd render intro.md --format pdf --output_dir ./handouts
  cat intro.md | lessonmd render -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: "+strings.Join(config.Formats, ", "))
	renderCmd.Flags().StringVar(&flagStore, "store", "", "Content store: file or http")
	renderCmd.Flags().StringVar(&flagDir, "dir", "", "Lesson directory for the file store")
	renderCmd.Flags().StringVar(&flagBaseURL, "base_url", "", "Course API base URL for the http store")
	renderCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	renderCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write output to stdout instead of files")
}

func runRender(cmd *cobra.Command, args []string) error {
	applyRenderFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.Output.Format)
	if err != nil {
		return err
	}
	contentStore, err := selectStore(cfg.Store)
	if err != nil {
		return err
	}

	toStdout := flagStdout || (len(args) == 1 && args[0] == stdinRef)
	var writer *output.Writer
	if !toStdout {
		writer, err = output.New(cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var errCount int
	for _, ref := range args {
		lesson, err := loadLesson(ctx, contentStore, ref, cmd.InOrStdin())
		if err != nil {
			slog.Error("Load failed", logfields.Lesson(ref), logfields.Error(err))
			errCount++
			continue
		}

		data, err := renderLesson(renderer, *lesson, cfg.Output.Format)
		if err != nil {
			slog.Error("Render failed", logfields.Lesson(ref), logfields.Error(err))
			errCount++
			continue
		}

		if toStdout {
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			continue
		}

		path, err := writer.Write(*lesson, data, renderer.Extension())
		if err != nil {
			slog.Error("Write failed", logfields.Lesson(ref), logfields.Error(err))
			errCount++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d lessons failed", errCount, len(args))
	}
	return nil
}

// applyRenderFlags overrides config values with explicitly set flags.
func applyRenderFlags(c *config.Config) {
	if flagFormat != "" {
		c.Output.Format = strings.ToLower(flagFormat)
	}
	if flagStore != "" {
		c.Store.Kind = strings.ToLower(flagStore)
	}
	if flagDir != "" {
		c.Store.Dir = flagDir
	}
	if flagBaseURL != "" {
		c.Store.BaseURL = flagBaseURL
	}
	if flagOutputDir != "" {
		c.Output.Dir = flagOutputDir
	}
}

// loadLesson resolves ref through the store, or reads stdin for "-".
func loadLesson(ctx context.Context, s core.ContentStore, ref string, stdin io.Reader) (*core.Lesson, error) {
	if ref != stdinRef {
		return s.Lesson(ctx, ref)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return store.FromText("stdin", string(data)), nil
}

// renderLesson runs the renderer and logs how long it took.
func renderLesson(r core.Renderer, lesson core.Lesson, format string) ([]byte, error) {
	start := time.Now()
	data, err := r.Render(lesson)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("Rendered lesson",
			logfields.Lesson(lesson.Source),
			logfields.Stage("render"),
			logfields.Format(format),
			logfields.Blocks(len(markup.Segment(lesson.Text()))),
			logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	}
	return data, nil
}

// selectRenderer creates the Renderer for an output format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "html":
		return render.NewHTMLRenderer(), nil
	case "page":
		return render.NewPageRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// selectStore creates the ContentStore described by the store config.
func selectStore(c config.StoreConfig) (core.ContentStore, error) {
	switch c.Kind {
	case "file":
		return store.NewFileStore(c.Dir), nil
	case "http":
		if c.BaseURL == "" {
			return nil, errors.New("--base_url is required for the http store")
		}
		return store.NewHTTPStore(c.BaseURL, c.Token, c.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown store %q", c.Kind)
	}
}

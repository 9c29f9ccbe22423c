// Package cmd — inspect command.
// Prints how each block of a lesson is classified, so authors can see why a
// block rendered the way it did.
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/gaurav-prasanna/lessonmd/core/render"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <lesson>",
	Short: "Show the block classification of a lesson",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&flagDir, "dir", "", "Lesson directory for the file store")
	inspectCmd.Flags().StringVar(&flagStore, "store", "", "Content store: file or http")
	inspectCmd.Flags().StringVar(&flagBaseURL, "base_url", "", "Course API base URL for the http store")
}

func runInspect(cmd *cobra.Command, args []string) error {
	applyRenderFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	contentStore, err := selectStore(cfg.Store)
	if err != nil {
		return err
	}

	lesson, err := loadLesson(cmd.Context(), contentStore, args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	outline := render.Outline(*lesson)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tLINES\tFIRST LINE")
	for _, b := range outline.Blocks {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", b.Index, b.Kind, b.Lines, truncate(b.FirstLine, 60))
	}
	return w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyLesson     = "lesson"
	KeyFormat     = "format"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyStage      = "stage"
	KeyBlocks     = "blocks"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Lesson(ref string) slog.Attr     { return slog.String(KeyLesson, ref) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Blocks(n int) slog.Attr          { return slog.Int(KeyBlocks, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

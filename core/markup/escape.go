package markup

import "strings"

// htmlEscaper replaces the five HTML-sensitive characters with entities.
// Only code-fence content goes through it; every other block kind emits its
// text unescaped and leaves sanitization to the display surface.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes s for literal display inside a <pre>/<code> element.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

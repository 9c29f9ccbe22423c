package markup

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fenceDelimiter = "```"

	// LegacyDialectTag is the fence language tag for Progress OpenEdge ABL
	// samples; its header shows LegacyDialectLabel instead of the upper-cased tag.
	LegacyDialectTag   = "progress"
	LegacyDialectLabel = "OpenEdge 4GL"

	plaintextLanguage = "plaintext"
)

// fenceRegex matches one fence: optional language tag on the opening line,
// then everything up to the nearest closing delimiter.
var fenceRegex = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")

var upperCaser = cases.Upper(language.Und)

// FenceLabel returns the header label shown above a fence with the given
// language tag.
func FenceLabel(lang string) string {
	switch {
	case lang == "":
		return plaintextLanguage
	case lang == LegacyDialectTag:
		return LegacyDialectLabel
	default:
		return upperCaser.String(lang)
	}
}

// renderCodeFence replaces every fence in the block with a code wrapper.
// Text outside the fences is left as it is.
func renderCodeFence(block string) string {
	return fenceRegex.ReplaceAllStringFunc(block, func(match string) string {
		m := fenceRegex.FindStringSubmatch(match)
		return codeWrapper(m[1], m[2])
	})
}

func codeWrapper(lang, code string) string {
	class := lang
	if class == "" {
		class = plaintextLanguage
	}
	// The newline before the closing delimiter belongs to the fence, not the sample.
	code = strings.TrimSuffix(code, "\n")

	var b strings.Builder
	b.WriteString(`<div class="code-block-wrapper">`)
	b.WriteString(`<div class="code-header"><span class="code-language">`)
	b.WriteString(FenceLabel(lang))
	b.WriteString(`</span></div>`)
	b.WriteString(`<pre class="code-block language-`)
	b.WriteString(class)
	b.WriteString(`"><code>`)
	b.WriteString(EscapeHTML(code))
	b.WriteString(`</code></pre></div>`)
	return b.String()
}

// Fence is a fenced code sample found in a block.
type Fence struct {
	Language string
	Code     string
}

// Fences returns the fences of a block in source order.
func Fences(block string) []Fence {
	matches := fenceRegex.FindAllStringSubmatch(block, -1)
	fences := make([]Fence, 0, len(matches))
	for _, m := range matches {
		fences = append(fences, Fence{
			Language: m[1],
			Code:     strings.TrimSuffix(m[2], "\n"),
		})
	}
	return fences
}

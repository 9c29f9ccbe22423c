package markup

import (
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRender_EmptyInput(t *testing.T) {
	require.Equal(t, "", Render(""))
	require.Equal(t, "", RenderPtr(nil))

	empty := ""
	require.Equal(t, "", RenderPtr(&empty))

	text := "Hello"
	require.Equal(t, "<p>Hello</p>", RenderPtr(&text))
}

func TestRender_Blocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraph", "Hello World", "<p>Hello World</p>"},
		{"h1", "# Heading 1", "<h1>Heading 1</h1>"},
		{"h2", "## Heading 2", "<h2>Heading 2</h2>"},
		{"h3", "### Heading 3", "<h3>Heading 3</h3>"},
		{"h4 is a paragraph", "#### Four", "<p>#### Four</p>"},
		{"heading skips inline", "# **bold** title", "<h1>**bold** title</h1>"},
		{"heading with body lines", "# Title\nbody *x*", "<h1>Title</h1>\n<p>body <em>x</em></p>"},
		{"hr", "---", "<hr>"},
		{"long hr", "------", "<hr>"},
		{"unordered dashes", "- Item 1\n- Item 2", "<ul><li>Item 1</li><li>Item 2</li></ul>"},
		{"unordered asterisks", "* Item A\n* Item B", "<ul><li>Item A</li><li>Item B</li></ul>"},
		{"ordered", "1. First\n2. Second\n3. Third", "<ol><li>First</li><li>Second</li><li>Third</li></ol>"},
		{"list drops stray lines", "- one\nstray\n- two", "<ul><li>one</li><li>two</li></ul>"},
		{"list inline", "- **Bold item**\n- `Code item`", `<ul><li><strong>Bold item</strong></li><li><code class="inline-code">Code item</code></li></ul>`},
		{"blockquote", "> Line 1\n> Line 2\n>Line 3", "<blockquote>Line 1<br>Line 2<br>Line 3</blockquote>"},
		{"blockquote inline", "> **Bold quote** with *italic*", "<blockquote><strong>Bold quote</strong> with <em>italic</em></blockquote>"},
		{"blockquote trailing empty line", "> a\n>", "<blockquote>a</blockquote>"},
		{"blockquote lazy line", "> a\nb", "<blockquote>a<br>b</blockquote>"},
		{"blockquote keeps typed break", "> see<br>", "<blockquote>see<br></blockquote>"},
		{"colon separator table", "| a |\n|:::|\n| b |", `<table class="markdown-table"><thead><tr><th>a</th></tr></thead><tbody><tr><td>b</td></tr></tbody></table>`},
		{"multi-line paragraph", "Line 1\nLine 2\nLine 3", "<p>Line 1<br>Line 2<br>Line 3</p>"},
		{"two paragraphs", "Paragraph 1\n\nParagraph 2", "<p>Paragraph 1</p>\n<p>Paragraph 2</p>"},
		{"blank runs collapse", "\n\nText\n\n\n\nMore text\n\n", "<p>Text</p>\n<p>More text</p>"},
		{"crlf", "# T\r\n\r\nbody", "<h1>T</h1>\n<p>body</p>"},
		{"pipe row without separator", "| a | b |\nplain", "<p>| a | b |<br>plain</p>"},
		{"text is not escaped", `Text with & < > " characters`, `<p>Text with & < > " characters</p>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}
}

func TestRender_Inline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold text**", "<strong>bold text</strong>"},
		{"*italic text*", "<em>italic text</em>"},
		{"Use `code` here", `Use <code class="inline-code">code</code> here`},
		{"[Click here](https://example.com)", `<a href="https://example.com" target="_blank" class="markdown-link">Click here</a>`},
		{"**bold1** **bold2** **bold3**", "<strong>bold1</strong> <strong>bold2</strong> <strong>bold3</strong>"},
		{"file*name*test", "file<em>name</em>test"},
		{"*a* and *b*", "<em>a</em> and <em>b</em>"},
		{"a * b * c", "a * b * c"},
		{"`a*b*c`", `<code class="inline-code">a<em>b</em>c</code>`},
		{
			"**bold** and *italic* and `code` and [link](https://test.com)",
			`<strong>bold</strong> and <em>italic</em> and <code class="inline-code">code</code> and <a href="https://test.com" target="_blank" class="markdown-link">link</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderInline(tt.in))
		})
	}
}

func TestRender_CodeFence(t *testing.T) {
	out := Render("```javascript\nconst x = 1;\n```")
	require.Equal(t,
		`<div class="code-block-wrapper"><div class="code-header"><span class="code-language">JAVASCRIPT</span></div>`+
			`<pre class="code-block language-javascript"><code>const x = 1;</code></pre></div>`,
		out)
}

func TestRender_CodeFenceWithoutLanguage(t *testing.T) {
	out := Render("```\nconst x = 1;\n```")
	require.Contains(t, out, `<span class="code-language">plaintext</span>`)
	require.Contains(t, out, `<pre class="code-block language-plaintext"><code>const x = 1;</code></pre>`)
}

func TestRender_CodeFenceLegacyDialect(t *testing.T) {
	out := Render("```progress\nFOR EACH Customer:\nEND.\n```")
	require.Contains(t, out, `<span class="code-language">OpenEdge 4GL</span>`)
	require.Contains(t, out, `language-progress`)
	require.NotContains(t, out, "PROGRESS")
}

func TestRender_CodeFenceLegacyTagIsCaseSensitive(t *testing.T) {
	out := Render("```PROGRESS\nDISPLAY 1.\n```")
	require.Contains(t, out, `<span class="code-language">PROGRESS</span>`)
	require.Contains(t, out, `language-PROGRESS`)
	require.NotContains(t, out, "OpenEdge 4GL")
}

func TestRender_CodeFenceIsLiteral(t *testing.T) {
	out := Render("```\n**bold** *italic* `code` [l](u)\n```")
	require.NotContains(t, out, "<strong>")
	require.NotContains(t, out, "<em>")
	require.NotContains(t, out, "<a ")
	require.Contains(t, out, "<code>**bold** *italic* `code` [l](u)</code>")
}

func TestRender_CodeFenceEscapesHTML(t *testing.T) {
	out := Render("```html\n<div class=\"x\">Tom & 'Jerry'</div>\n```")
	require.Contains(t, out, "&lt;div class=&quot;x&quot;&gt;Tom &amp; &#039;Jerry&#039;&lt;/div&gt;")
	require.NotContains(t, out, "<div class=\"x\">")
}

func TestRender_CodeFenceKeepsBlankLines(t *testing.T) {
	out := Render("Before\n\n```\nLine 1\n\nLine 2\n```\n\nAfter")
	require.Equal(t,
		"<p>Before</p>\n"+
			`<div class="code-block-wrapper"><div class="code-header"><span class="code-language">plaintext</span></div>`+
			"<pre class=\"code-block language-plaintext\"><code>Line 1\n\nLine 2</code></pre></div>\n"+
			"<p>After</p>",
		out)
}

func TestRender_MultipleFencesInOneBlock(t *testing.T) {
	out := Render("```go\na := 1\n```\n```python\nb = 2\n```")
	require.Equal(t, 2, strings.Count(out, `<div class="code-block-wrapper">`))
	require.Contains(t, out, `<span class="code-language">GO</span>`)
	require.Contains(t, out, `<span class="code-language">PYTHON</span>`)
	require.Less(t, strings.Index(out, "a := 1"), strings.Index(out, "b = 2"))
}

func TestRender_UnterminatedFenceIsLeftAsIs(t *testing.T) {
	require.Equal(t, "```js\ncode", Render("```js\ncode"))
}

func TestRender_StrayDelimiterInProse(t *testing.T) {
	require.Equal(t,
		"Type ``` to open a fence.\n<h1>Next</h1>\n<ul><li>item</li></ul>",
		Render("Type ``` to open a fence.\n\n# Next\n\n- item"))
}

func TestRender_UnclosedFenceKeepsLaterBlocks(t *testing.T) {
	require.Equal(t,
		"```js\nunclosed\n<h1>Heading</h1>\n<p>Para</p>",
		Render("```js\nunclosed\n\n# Heading\n\nPara"))
}

func TestStripInline(t *testing.T) {
	require.Equal(t, "bold and italic and code and docs (https://x.io)",
		StripInline("**bold** and *italic* and `code` and [docs](https://x.io)"))
}

func TestLinks(t *testing.T) {
	require.Equal(t,
		[]Link{{Text: "a", Href: "/a"}, {Text: "b", Href: "/b"}},
		Links("see [a](/a) and [b](/b)"))
	require.Empty(t, Links("no links"))
}

func TestRender_Table(t *testing.T) {
	in := "| Header 1 | Header 2 |\n|----------|:--------:|\n| Cell 1 | Cell 2 |\n| Cell 3 | Cell 4 |"
	require.Equal(t,
		`<table class="markdown-table"><thead><tr><th>Header 1</th><th>Header 2</th></tr></thead>`+
			`<tbody><tr><td>Cell 1</td><td>Cell 2</td></tr><tr><td>Cell 3</td><td>Cell 4</td></tr></tbody></table>`,
		Render(in))
}

func TestRender_TableCellsAreVerbatim(t *testing.T) {
	out := Render("| a |\n|---|\n| **b** & <i> |")
	require.Contains(t, out, "<td>**b** & <i></td>")
}

func TestRender_TableKeepsEmptyInnerCells(t *testing.T) {
	out := Render("| a | b | c |\n|---|---|---|\n| 1 |  | 3 |")
	require.Contains(t, out, "<tr><td>1</td><td></td><td>3</td></tr>")
}

func TestRender_TableStructure(t *testing.T) {
	in := "| Name | Age |\n|------|-----|\n| John | 30 |\n| Jane | 25 |\n| Bob | 35 |"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Render(in)))
	require.NoError(t, err)

	var headers []string
	doc.Find("table.markdown-table thead th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	require.Equal(t, []string{"Name", "Age"}, headers)

	rows := doc.Find("table.markdown-table tbody tr")
	require.Equal(t, 3, rows.Length())

	var cells []string
	rows.Find("td").Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, s.Text())
	})
	require.Equal(t, []string{"John", "30", "Jane", "25", "Bob", "35"}, cells)
}

const mixedLesson = "# Title\n\n" +
	"This is a paragraph with **bold** and *italic* text.\n\n" +
	"- List item 1\n- List item 2\n\n" +
	"```javascript\nconst code = 'example';\n```\n\n" +
	"| Key | Value |\n|-----|-------|\n| a | 1 |\n\n" +
	"1. One\n2. Two\n\n" +
	"> A quote\n> with [a link](https://example.com)\n\n" +
	"---"

func TestRender_MixedLesson(t *testing.T) {
	out := Render(mixedLesson)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	require.Equal(t, "Title", doc.Find("h1").Text())
	require.Equal(t, "bold", doc.Find("p strong").Text())
	require.Equal(t, "italic", doc.Find("p em").Text())
	require.Equal(t, 2, doc.Find("ul li").Length())
	require.Equal(t, 2, doc.Find("ol li").Length())
	require.Equal(t, "const code = 'example';", doc.Find("pre.code-block.language-javascript code").Text())
	require.Equal(t, "JAVASCRIPT", doc.Find(".code-header .code-language").Text())
	require.Equal(t, 1, doc.Find("table.markdown-table").Length())
	require.Equal(t, 1, doc.Find("blockquote").Length())
	href, ok := doc.Find("blockquote a.markdown-link").Attr("href")
	require.True(t, ok)
	require.Equal(t, "https://example.com", href)
	require.Equal(t, 1, doc.Find("hr").Length())

	// Blocks are joined in source order.
	require.True(t, strings.HasPrefix(out, "<h1>Title</h1>\n<p>"))
	require.True(t, strings.HasSuffix(out, "</blockquote>\n<hr>"))
	requireBalanced(t, out)
}

// requireBalanced walks the fragment and fails on any unclosed or
// mismatched element.
func requireBalanced(t *testing.T, fragment string) {
	t.Helper()

	void := map[string]bool{"br": true, "hr": true}
	var stack []string
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			require.Empty(t, stack, "unclosed elements")
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !void[string(name)] {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			require.NotEmpty(t, stack, "unexpected </%s>", name)
			require.Equal(t, stack[len(stack)-1], string(name))
			stack = stack[:len(stack)-1]
		}
	}
}

func TestRender_EscapingIsAsymmetric(t *testing.T) {
	raw := `& < > "`
	out := Render(raw + "\n\n```\n" + raw + "\n```")
	require.Contains(t, out, "<p>"+raw+"</p>")
	require.Contains(t, out, "<code>&amp; &lt; &gt; &quot;</code>")
}

func TestRender_Concurrent(t *testing.T) {
	want := Render(mixedLesson)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Render(mixedLesson)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

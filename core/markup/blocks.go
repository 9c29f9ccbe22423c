package markup

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tableRowRegex       = regexp.MustCompile(`^\s*\|(.+)\|\s*$`)
	tableSeparatorRegex = regexp.MustCompile(`^\s*\|[-:\s|]+\|\s*$`)
	unorderedItemRegex  = regexp.MustCompile(`^[-*] (.+)$`)
	orderedItemRegex    = regexp.MustCompile(`^\d+\. (.+)$`)
	horizontalRuleRegex = regexp.MustCompile(`^-{3,}$`)
	headingRegex        = regexp.MustCompile(`^(#{1,3}) (.*)$`)
)

// renderTable emits the header row as <th> cells and every row after the
// separator as <td> cells. Cell text is inserted verbatim.
func renderTable(lines []string) string {
	header, rows := TableCells(Block{Lines: lines})

	var b strings.Builder
	b.WriteString(`<table class="markdown-table"><thead><tr>`)
	for _, cell := range header {
		b.WriteString("<th>" + cell + "</th>")
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, cells := range rows {
		b.WriteString("<tr>")
		for _, cell := range cells {
			b.WriteString("<td>" + cell + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// splitRow splits a pipe-delimited row into trimmed cells, dropping the empty
// tokens produced by the edge pipes.
func splitRow(line string) []string {
	tokens := strings.Split(strings.TrimSpace(line), "|")
	if len(tokens) > 0 && strings.TrimSpace(tokens[0]) == "" {
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && strings.TrimSpace(tokens[len(tokens)-1]) == "" {
		tokens = tokens[:len(tokens)-1]
	}
	cells := make([]string, len(tokens))
	for i, tok := range tokens {
		cells[i] = strings.TrimSpace(tok)
	}
	return cells
}

// renderList wraps every line matching itemRegex in <li>. Lines that do not
// match are skipped.
func renderList(lines []string, itemRegex *regexp.Regexp, tag string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, line := range lines {
		m := itemRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		b.WriteString("<li>" + RenderInline(m[1]) + "</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

// renderHeading renders the first line as <h1>..<h3>. Heading text is not
// inline-rendered. Any further lines of the block follow as a paragraph.
func renderHeading(lines []string) string {
	n, text, _ := Heading(Block{Lines: lines})
	level := strconv.Itoa(n)
	html := "<h" + level + ">" + text + "</h" + level + ">"
	if rest := strings.TrimSpace(strings.Join(lines[1:], "\n")); rest != "" {
		html += "\n" + renderParagraph(strings.Split(rest, "\n"))
	}
	return html
}

// renderBlockquote strips the '>' marker and one optional space from each
// quoted line. Unmarked lines are kept as lazy continuation lines. Trailing
// empty lines are dropped so the quote never ends in a line break.
func renderBlockquote(lines []string) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, ">") {
			line = strings.TrimPrefix(line[1:], " ")
		}
		rendered = append(rendered, RenderInline(line))
	}
	for len(rendered) > 0 && strings.TrimSpace(rendered[len(rendered)-1]) == "" {
		rendered = rendered[:len(rendered)-1]
	}
	return "<blockquote>" + strings.Join(rendered, "<br>") + "</blockquote>"
}

func renderParagraph(lines []string) string {
	if strings.TrimSpace(strings.Join(lines, "\n")) == "" {
		return ""
	}
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = RenderInline(line)
	}
	return "<p>" + strings.Join(rendered, "<br>") + "</p>"
}

// Heading returns the level and text of a heading block's first line.
func Heading(b Block) (level int, text string, ok bool) {
	if len(b.Lines) == 0 {
		return 0, "", false
	}
	m := headingRegex.FindStringSubmatch(b.Lines[0])
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// TableCells returns the header cells and body rows of a table block. The
// separator row is skipped.
func TableCells(b Block) (header []string, rows [][]string) {
	if len(b.Lines) < 2 {
		return nil, nil
	}
	header = splitRow(b.Lines[0])
	for _, line := range b.Lines[2:] {
		if cells := splitRow(line); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return header, rows
}

// ListItems returns the item text of a list block, prefix stripped and
// before inline rendering. Non-item lines are skipped as in rendering.
func ListItems(b Block) []string {
	itemRegex := unorderedItemRegex
	if Classify(b) == KindOrderedList {
		itemRegex = orderedItemRegex
	}
	var items []string
	for _, line := range b.Lines {
		if m := itemRegex.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
		}
	}
	return items
}

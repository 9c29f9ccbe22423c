package markup

import "strings"

// BlockKind is the category assigned to a block.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindCodeFence
	KindTable
	KindUnorderedList
	KindOrderedList
	KindHorizontalRule
	KindHeading
	KindBlockquote
)

var kindNames = map[BlockKind]string{
	KindParagraph:      "paragraph",
	KindCodeFence:      "code_fence",
	KindTable:          "table",
	KindUnorderedList:  "unordered_list",
	KindOrderedList:    "ordered_list",
	KindHorizontalRule: "horizontal_rule",
	KindHeading:        "heading",
	KindBlockquote:     "blockquote",
}

func (k BlockKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets kinds appear by name in JSON output.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// classifier is one entry of the ordered predicate chain.
type classifier struct {
	kind    BlockKind
	matches func(b Block) bool
}

// classifiers are tried in order and the first match wins. The predicates
// overlap (a table row may also look like a list item, a list block may
// contain a fence), so the order decides the output.
var classifiers = []classifier{
	{KindCodeFence, func(b Block) bool {
		return strings.Contains(b.Text(), fenceDelimiter)
	}},
	{KindTable, func(b Block) bool {
		return len(b.Lines) >= 2 &&
			tableRowRegex.MatchString(b.Lines[0]) &&
			tableSeparatorRegex.MatchString(b.Lines[1])
	}},
	{KindUnorderedList, func(b Block) bool {
		return b.anyLine(unorderedItemRegex.MatchString)
	}},
	{KindOrderedList, func(b Block) bool {
		return b.anyLine(orderedItemRegex.MatchString)
	}},
	{KindHorizontalRule, func(b Block) bool {
		return horizontalRuleRegex.MatchString(b.Text())
	}},
	{KindHeading, func(b Block) bool {
		return headingRegex.MatchString(b.Lines[0])
	}},
	{KindBlockquote, func(b Block) bool {
		return b.anyLine(func(line string) bool { return strings.HasPrefix(line, ">") })
	}},
}

// Classify returns the kind of the block. Paragraph is the fallback.
func Classify(b Block) BlockKind {
	if len(b.Lines) == 0 {
		return KindParagraph
	}
	for _, c := range classifiers {
		if c.matches(b) {
			return c.kind
		}
	}
	return KindParagraph
}

// RenderBlock classifies the block and renders it with the matching renderer.
func RenderBlock(b Block) string {
	switch Classify(b) {
	case KindCodeFence:
		return renderCodeFence(b.Text())
	case KindTable:
		return renderTable(b.Lines)
	case KindUnorderedList:
		return renderList(b.Lines, unorderedItemRegex, "ul")
	case KindOrderedList:
		return renderList(b.Lines, orderedItemRegex, "ol")
	case KindHorizontalRule:
		return "<hr>"
	case KindHeading:
		return renderHeading(b.Lines)
	case KindBlockquote:
		return renderBlockquote(b.Lines)
	default:
		return renderParagraph(b.Lines)
	}
}

package markup

import "strings"

// Block is a run of input lines between blank-line separators.
type Block struct {
	Lines []string
}

// Text returns the block's lines joined by newlines.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

func (b Block) anyLine(pred func(string) bool) bool {
	for _, line := range b.Lines {
		if pred(line) {
			return true
		}
	}
	return false
}

// Segment splits text into blocks on runs of two or more newlines. Blank
// lines between an opening fence line and its closing fence line do not
// split. A fence still open at the end of the text protects nothing. Each
// block is trimmed and blocks that are empty after trimming are dropped.
func Segment(text string) []Block {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	protected := fencedBlankLines(lines)

	var (
		blocks  []Block
		current []string
	)
	flush := func() {
		trimmed := strings.TrimSpace(strings.Join(current, "\n"))
		if trimmed != "" {
			blocks = append(blocks, Block{Lines: strings.Split(trimmed, "\n")})
		}
		current = current[:0]
	}

	for i, line := range lines {
		if line == "" && !protected[i] {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// fencedBlankLines returns the indexes of blank lines inside closed fences.
// Only a line starting with the delimiter opens or closes a fence, and a
// line holding a complete inline pair like ```x``` does neither.
func fencedBlankLines(lines []string) map[int]bool {
	protected := make(map[int]bool)
	var (
		inFence bool
		pending []int
	)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fenceDelimiter) && strings.Count(trimmed, fenceDelimiter)%2 == 1 {
			if inFence {
				for _, idx := range pending {
					protected[idx] = true
				}
				pending = pending[:0]
			}
			inFence = !inFence
			continue
		}
		if inFence && line == "" {
			pending = append(pending, i)
		}
	}
	return protected
}

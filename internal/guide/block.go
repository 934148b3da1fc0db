package guide

import "strings"

// Block is one paginated content unit. It is a closed set: the layout engine
// switches exhaustively over the four kinds below.
type Block interface {
	block()
}

// Heading is a titled line. Level 1 is a document title, 2 a section heading,
// 3 a subheading.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a single logical line of prose. Lines are pre-split; no reflow
// happens downstream, and a blank Paragraph advances the cursor without a
// draw call.
type Paragraph struct {
	Text string
}

// Bullet is rendered with a bullet glyph and a fixed indent.
type Bullet struct {
	Text string
}

// QAEntry is one interview question with its classified answer lines. Fence
// marker lines are removed before the entry is built.
type QAEntry struct {
	Subcategory string
	Question    string
	AnswerLines []string
	HasCode     bool
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Bullet) block()    {}
func (QAEntry) block()   {}

// ClassifyLine turns one narrative line into a Block using literal-prefix
// matching, checked in order: "# ", "## ", "### ", "- ", else plain.
func ClassifyLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "# "):
		return Heading{Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, "## "):
		return Heading{Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "### "):
		return Heading{Level: 3, Text: line[4:]}
	case strings.HasPrefix(line, "- "):
		return Bullet{Text: line[2:]}
	default:
		return Paragraph{Text: line}
	}
}

// IsFenceMarker reports whether a line is a code-fence delimiter. Such lines
// are stripped from answers and never drawn.
func IsFenceMarker(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

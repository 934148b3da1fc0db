package guide

import "time"

// Document is the fully assembled guide, built once per generation run and
// immutable during layout.
type Document struct {
	Meta     TitleMeta
	TOC      []TOCEntry
	Sections []Section
}

// TitleMeta feeds the centered title page only; the generic flow never
// reads it.
type TitleMeta struct {
	JobTitle      string
	Company       string
	GeneratedAt   time.Time
	QuestionCount int
}

// TOCEntry is one numbered table-of-contents line.
type TOCEntry struct {
	Number int
	Label  string
}

// Section is a named grouping of blocks, rendered as one guide chapter.
// Block order is insertion order and is never re-sorted.
type Section struct {
	Title  string
	Blocks []Block
}

// HasQuestions reports whether this section holds QAEntry blocks (a question
// chapter) rather than narrative lines.
func (s Section) HasQuestions() bool {
	if len(s.Blocks) == 0 {
		return false
	}
	_, ok := s.Blocks[0].(QAEntry)
	return ok
}

package layout

import (
	"fmt"

	"github.com/mtreece/prepguide/internal/guide"
)

// Canvas is the narrow rendering surface the flow engine draws on. Exactly
// one page is open at a time; a page is never revisited after FinalizePage.
// Drawing errors surface from Save, so the flow itself has no error path.
type Canvas interface {
	NewPage()
	DrawText(font Font, size, x, y float64, text string)
	FinalizePage()
	Save(dest string) (string, error)
}

// Flow paginates blocks onto fixed-size pages. It owns only the transient
// cursor and open-page state; the document it draws is read-only. The
// vertical cursor decreases while drawing and resets to PageHeight-Margin
// each time a page opens. Not safe for concurrent use.
type Flow struct {
	cfg      Config
	canvas   Canvas
	y        float64
	pageOpen bool
}

func NewFlow(cfg Config, c Canvas) *Flow {
	return &Flow{cfg: cfg, canvas: c}
}

func (f *Flow) newPage() {
	if f.pageOpen {
		f.canvas.FinalizePage()
	}
	f.canvas.NewPage()
	f.y = f.cfg.PageHeight - f.cfg.Margin
	f.pageOpen = true
}

func (f *Flow) endPage() {
	if f.pageOpen {
		f.canvas.FinalizePage()
		f.pageOpen = false
	}
}

// emitLine draws one styled line at the cursor and advances by the style's
// line height. A cursor already past the bottom margin opens a new page
// first. Empty text advances without a draw call (blank-line spacing).
func (f *Flow) emitLine(st Style, text string) {
	if !f.pageOpen || f.y < f.cfg.Margin {
		f.newPage()
	}
	if text != "" {
		f.canvas.DrawText(st.Font, st.Size, f.cfg.Margin+st.Indent, f.y, text)
	}
	f.y -= st.LineHeight
}

// StartSection draws a chapter heading followed by one blank line of
// spacing. It opens a new page when none is open or when the heading plus
// its spacing would not fit above the bottom margin. Note the fit check here
// looks two line heights ahead, unlike emitLine which only checks the
// current cursor.
func (f *Flow) StartSection(title string) {
	if !f.pageOpen || f.y-2*sectionStyle.LineHeight < f.cfg.Margin {
		f.newPage()
	}
	f.canvas.DrawText(sectionStyle.Font, sectionStyle.Size, f.cfg.Margin, f.y, title)
	f.y -= 2 * sectionStyle.LineHeight
}

// EmitBlock flows one block. The block set is closed; QAEntry gets its own
// multi-line treatment, everything else is a single styled line.
func (f *Flow) EmitBlock(b guide.Block) {
	switch blk := b.(type) {
	case guide.QAEntry:
		f.emitEntry(blk)
	default:
		st, text := Resolve(b)
		f.emitLine(st, text)
	}
}

// emitEntry draws one question: optional subcategory label, the question
// line, a literal answer marker, then each answer line classified as code or
// prose. Missing fields are skipped rather than treated as errors so a
// partially populated entry still renders.
func (f *Flow) emitEntry(e guide.QAEntry) {
	if !f.pageOpen {
		f.newPage()
	}
	if e.Subcategory != "" {
		f.emitLine(subcategoryStyle, e.Subcategory)
	}
	if e.Question != "" {
		f.emitLine(questionStyle, "Q: "+e.Question)
	}
	f.emitLine(plainStyle, "A:")
	for _, line := range e.AnswerLines {
		if guide.IsFenceMarker(line) {
			continue
		}
		if IsCodeLine(line, e.HasCode) {
			f.emitLine(codeStyle, line)
		} else {
			f.emitLine(answerStyle, line)
		}
	}
}

// RenderSection flows one section. A section with no blocks draws nothing
// (it still appears in the table of contents). Question chapters open with a
// drawn heading; the first entry continues on the heading's page and every
// later entry forces a fresh page so no question starts on space left over
// from the previous one. Narrative chapters carry their headings as blocks
// and flow line by line with the ordinary overflow rule.
func (f *Flow) RenderSection(sec guide.Section) {
	if len(sec.Blocks) == 0 {
		return
	}
	if sec.HasQuestions() {
		f.StartSection(sec.Title)
		for i, b := range sec.Blocks {
			if i > 0 {
				f.newPage()
			}
			f.EmitBlock(b)
		}
		return
	}
	for _, b := range sec.Blocks {
		f.EmitBlock(b)
	}
}

// RenderDocument flows a complete document: a centered title page, a table
// of contents page, then each section in order. The open page is finalized
// after every section so each chapter starts at the top of a fresh page.
func RenderDocument(cfg Config, c Canvas, doc *guide.Document) {
	f := NewFlow(cfg, c)
	f.TitlePage(doc.Meta)
	f.TOCPage(doc.TOC)
	for _, sec := range doc.Sections {
		f.RenderSection(sec)
		f.endPage()
	}
	f.endPage()
}

// TOCPage draws the table of contents as a single dedicated page.
func (f *Flow) TOCPage(entries []guide.TOCEntry) {
	f.newPage()
	f.canvas.DrawText(FontBold, 18, f.cfg.Margin, f.y, "Table of Contents")
	f.y -= 2 * sectionStyle.LineHeight
	for _, e := range entries {
		f.emitLine(plainStyle, fmt.Sprintf("%d. %s", e.Number, e.Label))
	}
	f.endPage()
}

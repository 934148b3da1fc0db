package layout

import (
	"fmt"

	"github.com/mtreece/prepguide/internal/guide"
	"github.com/mtreece/prepguide/internal/jobdesc"
)

// Vertical offsets on the title page, measured down from a shared anchor
// 200pt below the top edge.
const (
	titleAnchorDrop   = 200
	jobTitleDrop      = 40
	companyDrop       = 70
	generatedDrop     = 120
	questionCountDrop = 150
)

// centerLine places text so its horizontal center sits on the page center,
// using per-character advance widths at the given size.
func (f *Flow) centerLine(font Font, size, y float64, text string) {
	w := TextWidth(font, size, text)
	f.canvas.DrawText(font, size, f.cfg.PageWidth/2-w/2, y, text)
}

// TitlePage draws the dedicated cover page: document title, job title, an
// optional company line, the generation date and the question count, each
// centered at a fixed offset. The company line is omitted when the parser
// could not determine one.
func (f *Flow) TitlePage(meta guide.TitleMeta) {
	f.newPage()
	anchor := f.cfg.PageHeight - titleAnchorDrop

	f.centerLine(FontBold, 24, anchor, "Technical Interview Guide")
	f.centerLine(FontBold, 18, anchor-jobTitleDrop, meta.JobTitle)
	if meta.Company != "" && meta.Company != jobdesc.UnknownCompany {
		f.centerLine(FontNormal, 14, anchor-companyDrop, "at "+meta.Company)
	}
	f.centerLine(FontNormal, 12, anchor-generatedDrop,
		"Generated on: "+meta.GeneratedAt.Format("January 2, 2006"))
	f.centerLine(FontNormal, 12, anchor-questionCountDrop,
		fmt.Sprintf("Contains %d interview questions and answers", meta.QuestionCount))

	f.endPage()
}

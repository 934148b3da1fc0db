// Package render encodes layout placement instructions into a PDF file.
package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/mtreece/prepguide/internal/layout"
)

// Canvas draws layout instructions into a PDF document via gofpdf. Layout
// hands in y coordinates measured up from the page bottom; gofpdf measures
// down from the top, so DrawText flips the axis. Automatic page breaking is
// disabled: pagination decisions belong to the flow engine alone.
type Canvas struct {
	pdf        *gofpdf.Fpdf
	translate  func(string) string
	pageHeight float64
}

func NewCanvas(cfg layout.Config) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	return &Canvas{
		pdf: pdf,
		// Core fonts are cp1252; this maps the bullet glyph and friends.
		translate:  pdf.UnicodeTranslatorFromDescriptor(""),
		pageHeight: cfg.PageHeight,
	}
}

func (c *Canvas) NewPage() {
	c.pdf.AddPage()
}

func (c *Canvas) DrawText(font layout.Font, size, x, y float64, text string) {
	family, style := fontSpec(font)
	c.pdf.SetFont(family, style, size)
	c.pdf.Text(x, c.pageHeight-y, c.translate(text))
}

// FinalizePage is a no-op: gofpdf closes the current page when the next one
// opens or when the document is written out.
func (c *Canvas) FinalizePage() {}

func (c *Canvas) Save(dest string) (string, error) {
	if err := c.pdf.OutputFileAndClose(dest); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return dest, nil
}

func fontSpec(f layout.Font) (family, style string) {
	switch f {
	case layout.FontBold:
		return "Helvetica", "B"
	case layout.FontMono:
		return "Courier", ""
	default:
		return "Helvetica", ""
	}
}

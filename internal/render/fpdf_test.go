package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mtreece/prepguide/internal/guide"
	"github.com/mtreece/prepguide/internal/layout"
)

func TestCanvas_SaveWritesPDF(t *testing.T) {
	cfg := layout.DefaultConfig()
	c := NewCanvas(cfg)

	doc := &guide.Document{
		Meta: guide.TitleMeta{
			JobTitle:      "Java Developer",
			GeneratedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			QuestionCount: 1,
		},
		TOC: []guide.TOCEntry{{Number: 1, Label: "Core Java Questions"}},
		Sections: []guide.Section{
			{Title: "Core Java Questions", Blocks: []guide.Block{
				guide.QAEntry{Question: "What is the JVM?", AnswerLines: []string{"A runtime."}},
			}},
		},
	}
	layout.RenderDocument(cfg, c, doc)

	dest := filepath.Join(t.TempDir(), "guide.pdf")
	path, err := c.Save(dest)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != dest {
		t.Errorf("path = %q, want %q", path, dest)
	}
	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("output PDF is empty")
	}
}

func TestCanvas_SaveToBadPath(t *testing.T) {
	cfg := layout.DefaultConfig()
	c := NewCanvas(cfg)
	c.NewPage()
	c.DrawText(layout.FontNormal, 10, 50, 700, "hello")
	if _, err := c.Save(filepath.Join(t.TempDir(), "missing", "guide.pdf")); err == nil {
		t.Fatalf("Save into missing directory succeeded, want error")
	}
}

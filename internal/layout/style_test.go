package layout

import (
	"math"
	"testing"
	"time"

	"github.com/mtreece/prepguide/internal/guide"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		line     string
		wantSize float64
		wantLH   float64
		wantText string
	}{
		{"# Technical Interview Guide", 18, 22, "Technical Interview Guide"},
		{"## Key Skills", 14, 18, "Key Skills"},
		{"### Collections", 12, 14, "Collections"},
		{"- Java", 10, 14, "• Java"},
		{"Plain prose line.", 10, 14, "Plain prose line."},
		{"", 10, 7, ""},
		{"   ", 10, 7, ""},
	}
	for _, tt := range tests {
		st, text := Resolve(guide.ClassifyLine(tt.line))
		if st.Size != tt.wantSize || st.LineHeight != tt.wantLH {
			t.Errorf("Resolve(%q) style = %v/%v, want %v/%v",
				tt.line, st.Size, st.LineHeight, tt.wantSize, tt.wantLH)
		}
		if text != tt.wantText {
			t.Errorf("Resolve(%q) text = %q, want %q", tt.line, text, tt.wantText)
		}
	}
}

func TestResolve_BulletIndent(t *testing.T) {
	st, _ := Resolve(guide.Bullet{Text: "Spring Boot"})
	if st.Indent != 20 {
		t.Errorf("bullet indent = %v, want 20", st.Indent)
	}
	if st.Font != FontNormal {
		t.Errorf("bullet font = %v, want %v", st.Font, FontNormal)
	}
}

func TestIsCodeLine(t *testing.T) {
	tests := []struct {
		line    string
		hasCode bool
		want    bool
	}{
		{"    int x = 5;", true, true},
		{"This explains public fields.", true, true},
		{"This explains public fields.", false, false},
		{"A plain explanation.", true, false},
		{"private int count;", true, true},
		{"class loading happens lazily", true, true},
		{"publicly available", true, false},
		{"   three spaces only", true, false},
	}
	for _, tt := range tests {
		if got := IsCodeLine(tt.line, tt.hasCode); got != tt.want {
			t.Errorf("IsCodeLine(%q, %v) = %v, want %v", tt.line, tt.hasCode, got, tt.want)
		}
	}
}

func TestTextWidth(t *testing.T) {
	// Courier is fixed-pitch: ten characters at 600/1000 em, 24pt.
	if got := TextWidth(FontMono, 24, "0123456789"); math.Abs(got-144) > 1e-9 {
		t.Errorf("Courier width = %v, want 144", got)
	}
	// Helvetica narrow glyph.
	if got := TextWidth(FontNormal, 10, "i"); math.Abs(got-2.22) > 1e-9 {
		t.Errorf("Helvetica 'i' width = %v, want 2.22", got)
	}
	// Bold is wider than regular for the same text.
	reg := TextWidth(FontNormal, 12, "Interview")
	bold := TextWidth(FontBold, 12, "Interview")
	if bold <= reg {
		t.Errorf("bold width %v not wider than regular %v", bold, reg)
	}
}

func TestTitlePage_Centering(t *testing.T) {
	cfg := DefaultConfig()
	rc := &recordingCanvas{}
	f := NewFlow(cfg, rc)
	f.TitlePage(guide.TitleMeta{
		JobTitle:      "Java Developer",
		Company:       "Acme",
		GeneratedAt:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		QuestionCount: 155,
	})

	var texts []canvasOp
	for _, op := range rc.ops {
		if op.kind == "text" {
			texts = append(texts, op)
		}
	}
	if len(texts) != 5 {
		t.Fatalf("title page ops = %d, want 5", len(texts))
	}

	for _, op := range texts {
		want := cfg.PageWidth/2 - TextWidth(op.font, op.size, op.text)/2
		if math.Abs(op.x-want) > 1e-9 {
			t.Errorf("%q x = %v, want %v", op.text, op.x, want)
		}
	}

	anchor := cfg.PageHeight - 200
	if texts[0].text != "Technical Interview Guide" || texts[0].y != anchor || texts[0].size != 24 {
		t.Errorf("title line = %+v, want bold 24 at anchor", texts[0])
	}
	if texts[2].text != "at Acme" || texts[2].y != anchor-70 {
		t.Errorf("company line = %+v, want at anchor-70", texts[2])
	}
	if texts[3].text != "Generated on: March 15, 2024" {
		t.Errorf("date line = %q", texts[3].text)
	}
	if texts[4].text != "Contains 155 interview questions and answers" {
		t.Errorf("count line = %q", texts[4].text)
	}
}

func TestTitlePage_UnknownCompanyOmitted(t *testing.T) {
	rc := &recordingCanvas{}
	f := NewFlow(DefaultConfig(), rc)
	f.TitlePage(guide.TitleMeta{
		JobTitle:    "Java Developer",
		Company:     "Unknown Company",
		GeneratedAt: time.Now(),
	})

	n := 0
	for _, op := range rc.ops {
		if op.kind == "text" {
			n++
		}
	}
	if n != 4 {
		t.Errorf("title page ops = %d, want 4 (company line omitted)", n)
	}
}

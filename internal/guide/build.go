package guide

import (
	"strings"
	"time"

	"github.com/mtreece/prepguide/internal/jobdesc"
	"github.com/mtreece/prepguide/internal/question"
)

// Build assembles the complete Document: title metadata, table of contents,
// narrative sections and one question section per category, in supply order.
func Build(jd *jobdesc.JobDescription, cats *question.CategorySet, intro, tips string, now time.Time) *Document {
	doc := &Document{
		Meta: TitleMeta{
			JobTitle:      jd.Title,
			Company:       jd.Company,
			GeneratedAt:   now,
			QuestionCount: cats.Total(),
		},
	}

	// Table of contents lists every chapter, including narrative chapters
	// that may turn out to have no body content.
	doc.TOC = append(doc.TOC, TOCEntry{Number: 1, Label: "Introduction"})
	num := 2
	for _, cat := range cats.Categories() {
		doc.TOC = append(doc.TOC, TOCEntry{Number: num, Label: cat + " Questions"})
		num++
	}
	doc.TOC = append(doc.TOC, TOCEntry{Number: num, Label: "Final Tips & Resources"})

	doc.Sections = append(doc.Sections, narrativeSection("Introduction", intro))
	for _, cat := range cats.Categories() {
		doc.Sections = append(doc.Sections, questionSection(cat, cats.Questions(cat)))
	}
	doc.Sections = append(doc.Sections, narrativeSection("Final Tips & Resources", tips))

	return doc
}

// narrativeSection splits a markdown-like blob into one block per line. An
// empty blob yields a section with zero blocks, which layout skips.
func narrativeSection(title, blob string) Section {
	s := Section{Title: title}
	if strings.TrimSpace(blob) == "" {
		return s
	}
	for _, line := range strings.Split(blob, "\n") {
		s.Blocks = append(s.Blocks, ClassifyLine(line))
	}
	return s
}

func questionSection(category string, qs []question.Question) Section {
	s := Section{Title: category + " Questions"}
	for _, q := range qs {
		s.Blocks = append(s.Blocks, QAEntry{
			Subcategory: q.Subcategory,
			Question:    q.Question,
			AnswerLines: answerLines(q.Answer),
			HasCode:     q.CodeExample != "",
		})
	}
	return s
}

// answerLines splits an answer on line boundaries, dropping fence markers.
func answerLines(answer string) []string {
	if answer == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(answer, "\n") {
		if IsFenceMarker(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

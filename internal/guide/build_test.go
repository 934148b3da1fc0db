package guide

import (
	"strings"
	"testing"
	"time"

	"github.com/mtreece/prepguide/internal/jobdesc"
	"github.com/mtreece/prepguide/internal/question"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want Block
	}{
		{"# Title", Heading{Level: 1, Text: "Title"}},
		{"## Section", Heading{Level: 2, Text: "Section"}},
		{"### Sub", Heading{Level: 3, Text: "Sub"}},
		{"- item", Bullet{Text: "item"}},
		{"plain prose", Paragraph{Text: "plain prose"}},
		{"", Paragraph{Text: ""}},
		{"#no space", Paragraph{Text: "#no space"}},
		{"-dash without space", Paragraph{Text: "-dash without space"}},
		{"#### too deep", Paragraph{Text: "#### too deep"}},
	}
	for _, tt := range tests {
		got := ClassifyLine(tt.line)
		if got != tt.want {
			t.Errorf("ClassifyLine(%q) = %#v, want %#v", tt.line, got, tt.want)
		}
	}
}

func TestBuild_TOCNumbering(t *testing.T) {
	jd := &jobdesc.JobDescription{Title: "Java Developer", Company: "Acme"}
	cats := question.NewCategorySet()
	cats.Add("Core Java", question.Question{Question: "q1", Answer: "a1"})
	cats.Add("Spring Framework", question.Question{Question: "q2", Answer: "a2"})

	doc := Build(jd, cats, "# Intro\n\nhello", "# Tips", time.Now())

	wantTOC := []TOCEntry{
		{Number: 1, Label: "Introduction"},
		{Number: 2, Label: "Core Java Questions"},
		{Number: 3, Label: "Spring Framework Questions"},
		{Number: 4, Label: "Final Tips & Resources"},
	}
	if len(doc.TOC) != len(wantTOC) {
		t.Fatalf("TOC entries = %d, want %d", len(doc.TOC), len(wantTOC))
	}
	for i, want := range wantTOC {
		if doc.TOC[i] != want {
			t.Errorf("TOC[%d] = %+v, want %+v", i, doc.TOC[i], want)
		}
	}

	if len(doc.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(doc.Sections))
	}
	if got := doc.Sections[1].Title; got != "Core Java Questions" {
		t.Errorf("section 1 title = %q, want %q", got, "Core Java Questions")
	}
	if doc.Meta.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", doc.Meta.QuestionCount)
	}
}

func TestBuild_EmptyNarrativeHasNoBlocks(t *testing.T) {
	jd := &jobdesc.JobDescription{Title: "Dev"}
	cats := question.NewCategorySet()

	doc := Build(jd, cats, "", "  \n ", time.Now())

	if n := len(doc.Sections[0].Blocks); n != 0 {
		t.Errorf("intro blocks = %d, want 0", n)
	}
	if n := len(doc.Sections[1].Blocks); n != 0 {
		t.Errorf("tips blocks = %d, want 0", n)
	}
}

func TestQuestionSection_FenceMarkersStripped(t *testing.T) {
	cats := question.NewCategorySet()
	cats.Add("Core Java", question.Question{
		Question:    "What does this print?",
		Answer:      "It prints 42:\n```java\nSystem.out.println(42);\n```\nAlways.",
		CodeExample: "System.out.println(42);",
	})

	doc := Build(&jobdesc.JobDescription{Title: "Dev"}, cats, "", "", time.Now())

	sec := doc.Sections[1]
	if !sec.HasQuestions() {
		t.Fatalf("section %q: HasQuestions() = false, want true", sec.Title)
	}
	qa := sec.Blocks[0].(QAEntry)
	if !qa.HasCode {
		t.Errorf("HasCode = false, want true")
	}
	want := []string{"It prints 42:", "System.out.println(42);", "Always."}
	if len(qa.AnswerLines) != len(want) {
		t.Fatalf("answer lines = %v, want %v", qa.AnswerLines, want)
	}
	for i := range want {
		if qa.AnswerLines[i] != want[i] {
			t.Errorf("answer line %d = %q, want %q", i, qa.AnswerLines[i], want[i])
		}
	}
}

func TestSection_HasQuestions(t *testing.T) {
	narrative := Section{Title: "Intro", Blocks: []Block{Paragraph{Text: "hi"}}}
	if narrative.HasQuestions() {
		t.Errorf("narrative section reported questions")
	}
	empty := Section{Title: "Empty"}
	if empty.HasQuestions() {
		t.Errorf("empty section reported questions")
	}
}

func TestIntroduction_MentionsCompanyAndSkills(t *testing.T) {
	jd := &jobdesc.JobDescription{
		Title:   "Senior Java Developer",
		Company: "Initech",
		Skills:  []string{"Java", "Spring Boot"},
	}
	got := Introduction(jd)
	for _, want := range []string{"Senior Java Developer", "at Initech", "- Java\n", "- Spring Boot\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Introduction missing %q", want)
		}
	}
}

func TestIntroduction_UnknownCompanyOmitted(t *testing.T) {
	jd := &jobdesc.JobDescription{Title: "Dev", Company: jobdesc.UnknownCompany}
	if got := Introduction(jd); strings.Contains(got, "at "+jobdesc.UnknownCompany) {
		t.Errorf("Introduction mentioned unknown company")
	}
}

package jobdesc

import (
	"strings"
	"testing"
)

func TestTextParser_LabeledSections(t *testing.T) {
	input := `Job Title: Senior Java Developer
Company: Acme Corp

Required Skills:
- Java 17
- Spring Boot
- SQL and database design

Responsibilities:
- Build backend services
- Review code
`
	p := &TextParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jd.Title != "Senior Java Developer" {
		t.Errorf("expected title %q, got %q", "Senior Java Developer", jd.Title)
	}
	if jd.Company != "Acme Corp" {
		t.Errorf("expected company %q, got %q", "Acme Corp", jd.Company)
	}

	wantSkills := []string{"Java 17", "Spring Boot", "SQL and database design"}
	if len(jd.Skills) != len(wantSkills) {
		t.Fatalf("expected %d skills, got %d (%v)", len(wantSkills), len(jd.Skills), jd.Skills)
	}
	for i, w := range wantSkills {
		if jd.Skills[i] != w {
			t.Errorf("skill[%d]: expected %q, got %q", i, w, jd.Skills[i])
		}
	}

	if len(jd.Responsibilities) != 2 {
		t.Errorf("expected 2 responsibilities, got %d (%v)", len(jd.Responsibilities), jd.Responsibilities)
	}
}

func TestTextParser_TechnologiesInferredFromSkills(t *testing.T) {
	input := `Position: Platform Engineer

Skills:
- Java and Spring experience
- Docker in production
- Problem solving
`
	p := &TextParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"java", "docker"}
	if len(jd.Technologies) != len(want) {
		t.Fatalf("expected technologies %v, got %v", want, jd.Technologies)
	}
	for i, w := range want {
		if jd.Technologies[i] != w {
			t.Errorf("tech[%d]: expected %q, got %q", i, w, jd.Technologies[i])
		}
	}
}

func TestTextParser_FirstLineFallbackTitle(t *testing.T) {
	input := "Backend Developer\n\nWe are hiring.\n"
	p := &TextParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jd.Title != "Backend Developer" {
		t.Errorf("expected first-line title, got %q", jd.Title)
	}
	if jd.Company != UnknownCompany {
		t.Errorf("expected %q, got %q", UnknownCompany, jd.Company)
	}
}

func TestTextParser_EmptyInputDefaults(t *testing.T) {
	p := &TextParser{}
	jd, err := p.Parse(strings.NewReader(""), "jd.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jd.Title != DefaultTitle {
		t.Errorf("expected default title %q, got %q", DefaultTitle, jd.Title)
	}
	if len(jd.Skills) != 0 {
		t.Errorf("expected no skills, got %v", jd.Skills)
	}
}

func TestExtractSection_InlineList(t *testing.T) {
	lines := []string{"Tech Stack: Kafka, Redis; Elasticsearch"}
	items := extractSection(lines, technologyKeywords)

	want := []string{"Kafka", "Redis", "Elasticsearch"}
	if len(items) != len(want) {
		t.Fatalf("expected %v, got %v", want, items)
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item[%d]: expected %q, got %q", i, w, items[i])
		}
	}
}

func TestExtractSection_StopsAtNextHeader(t *testing.T) {
	lines := []string{
		"Skills:",
		"- Java",
		"Benefits:",
		"- Free snacks",
	}
	items := extractSection(lines, skillKeywords)
	if len(items) != 1 || items[0] != "Java" {
		t.Fatalf("expected [Java], got %v", items)
	}
}

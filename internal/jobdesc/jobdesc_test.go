package jobdesc

import (
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"jd.txt", "*jobdesc.TextParser"},
		{"jd.json", "*jobdesc.JSONParser"},
		{"jd.yaml", "*jobdesc.YAMLParser"},
		{"jd.yml", "*jobdesc.YAMLParser"},
		{"jd.md", "*jobdesc.MarkdownParser"},
		{"jd.html", "*jobdesc.HTMLParser"},
		{"jd.pdf", "*jobdesc.PDFParser"},
		{"jd.docx", "*jobdesc.DOCXParser"},
	}
	for _, c := range cases {
		p, err := ForFile(c.filename)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.filename, err)
			continue
		}
		got := typeName(p)
		if got != c.want {
			t.Errorf("%s: expected %s, got %s", c.filename, c.want, got)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("jd.xlsx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("jd.xlsx") {
		t.Error("xlsx should not be supported")
	}
	if !IsSupportedExtension("jd.YAML") {
		t.Error("extension check should be case-insensitive")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *TextParser:
		return "*jobdesc.TextParser"
	case *JSONParser:
		return "*jobdesc.JSONParser"
	case *YAMLParser:
		return "*jobdesc.YAMLParser"
	case *MarkdownParser:
		return "*jobdesc.MarkdownParser"
	case *HTMLParser:
		return "*jobdesc.HTMLParser"
	case *PDFParser:
		return "*jobdesc.PDFParser"
	case *DOCXParser:
		return "*jobdesc.DOCXParser"
	default:
		return "unknown"
	}
}

func TestJSONParser_FlexibleKeys(t *testing.T) {
	input := `{
		"jobTitle": "Staff Engineer",
		"employer": "Initech",
		"skills": ["Java", "Spring Boot", {"name": "Kubernetes"}],
		"technologies": "Docker, AWS"
	}`
	p := &JSONParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jd.Title != "Staff Engineer" {
		t.Errorf("expected title %q, got %q", "Staff Engineer", jd.Title)
	}
	if jd.Company != "Initech" {
		t.Errorf("expected company %q, got %q", "Initech", jd.Company)
	}

	wantSkills := []string{"Java", "Spring Boot", "Kubernetes"}
	if len(jd.Skills) != len(wantSkills) {
		t.Fatalf("expected skills %v, got %v", wantSkills, jd.Skills)
	}
	wantTech := []string{"Docker", "AWS"}
	if len(jd.Technologies) != len(wantTech) {
		t.Fatalf("expected technologies %v, got %v", wantTech, jd.Technologies)
	}
}

func TestJSONParser_Defaults(t *testing.T) {
	p := &JSONParser{}
	jd, err := p.Parse(strings.NewReader(`{}`), "jd.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jd.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", jd.Title)
	}
	if jd.Company != UnknownCompany {
		t.Errorf("expected %q, got %q", UnknownCompany, jd.Company)
	}
}

func TestJSONParser_Invalid(t *testing.T) {
	p := &JSONParser{}
	if _, err := p.Parse(strings.NewReader("not json"), "jd.json"); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestYAMLParser_Basic(t *testing.T) {
	input := `
title: DevOps Engineer
company: Globex
skills:
  - Terraform
  - name: Kubernetes
technologies: [docker, jenkins]
`
	p := &YAMLParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jd.Title != "DevOps Engineer" {
		t.Errorf("expected title %q, got %q", "DevOps Engineer", jd.Title)
	}
	if jd.Company != "Globex" {
		t.Errorf("expected company %q, got %q", "Globex", jd.Company)
	}
	wantSkills := []string{"Terraform", "Kubernetes"}
	if len(jd.Skills) != len(wantSkills) {
		t.Fatalf("expected skills %v, got %v", wantSkills, jd.Skills)
	}
	if len(jd.Technologies) != 2 {
		t.Fatalf("expected 2 technologies, got %v", jd.Technologies)
	}
}

func TestMarkdownParser_HeadingSections(t *testing.T) {
	input := `# Senior Backend Engineer

Company: Initech

## Required Skills

- Go
- Kubernetes

## Technologies

- Docker
- PostgreSQL
`
	p := &MarkdownParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jd.Title != "Senior Backend Engineer" {
		t.Errorf("expected h1 title, got %q", jd.Title)
	}
	if jd.Company != "Initech" {
		t.Errorf("expected company Initech, got %q", jd.Company)
	}
	if len(jd.Skills) != 2 || jd.Skills[0] != "Go" {
		t.Errorf("expected skills [Go Kubernetes], got %v", jd.Skills)
	}
	if len(jd.Technologies) != 2 || jd.Technologies[0] != "Docker" {
		t.Errorf("expected technologies [Docker PostgreSQL], got %v", jd.Technologies)
	}
}

func TestHTMLParser_Basic(t *testing.T) {
	input := `<html><head><title>Java Developer at Hooli</title></head><body>
<h1>Java Developer</h1>
<h2>Skills</h2>
<ul><li>Java</li><li>Hibernate</li></ul>
</body></html>`
	p := &HTMLParser{}
	jd, err := p.Parse(strings.NewReader(input), "jd.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jd.Title != "Java Developer at Hooli" {
		t.Errorf("expected page title, got %q", jd.Title)
	}
	if len(jd.Skills) != 2 || jd.Skills[0] != "Java" {
		t.Errorf("expected skills [Java Hibernate], got %v", jd.Skills)
	}
}

package jobdesc

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// TextParser handles plain text job postings with keyword-based section
// extraction.
type TextParser struct{}

var skillKeywords = []string{
	"required skills", "technical skills", "technical requirements",
	"skills", "requirements", "qualifications", "competencies",
}

var responsibilityKeywords = []string{
	"key responsibilities", "job responsibilities", "role responsibilities",
	"responsibilities", "job duties", "duties", "what you'll do",
}

var technologyKeywords = []string{
	"tech stack", "technical environment", "technologies", "tools",
	"programming languages", "frameworks", "software", "platforms",
}

var (
	titleRe   = regexp.MustCompile(`(?im)^\s*(?:job title|position|role)\s*:\s*(\S[^\n]*)`)
	companyRe = regexp.MustCompile(`(?im)^\s*(?:company|organization|employer)\s*:\s*(\S[^\n]*)`)
	headerRe  = regexp.MustCompile(`^[A-Z][A-Za-z /&']*:\s*$`)
	bulletRe  = regexp.MustCompile(`^\s*(?:•|-|\*|\d+\.)\s*`)
)

func (p *TextParser) Parse(r io.Reader, filename string) (*JobDescription, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return parseTextLines(lines), nil
}

// parseTextLines applies the keyword heuristics to pre-split lines. The HTML,
// PDF and DOCX parsers reuse it after flattening their input to plain text.
func parseTextLines(lines []string) *JobDescription {
	content := strings.Join(lines, "\n")

	jd := &JobDescription{Description: content}

	if m := titleRe.FindStringSubmatch(content); m != nil {
		jd.Title = strings.TrimSpace(m[1])
	} else {
		for _, line := range lines {
			if t := strings.TrimSpace(line); t != "" {
				jd.Title = t
				break
			}
		}
		if jd.Title == "" {
			jd.Title = DefaultTitle
		}
	}

	if m := companyRe.FindStringSubmatch(content); m != nil {
		jd.Company = strings.TrimSpace(m[1])
	} else {
		jd.Company = UnknownCompany
	}

	jd.Skills = extractSection(lines, skillKeywords)
	jd.Responsibilities = extractSection(lines, responsibilityKeywords)
	jd.Technologies = extractSection(lines, technologyKeywords)

	if len(jd.Technologies) == 0 {
		jd.Technologies = technologiesFromSkills(jd.Skills)
	}

	return jd
}

// extractSection finds the first keyword that labels a section and collects
// its items: the remainder of the label line, then following lines until a
// blank line or another section header.
func extractSection(lines []string, keywords []string) []string {
	for _, kw := range keywords {
		for i, line := range lines {
			lower := strings.ToLower(line)
			idx := strings.Index(lower, kw)
			if idx < 0 || idx > 20 || len(lower) > 80 {
				continue
			}

			var items []string
			rest := strings.TrimSpace(line[idx+len(kw):])
			rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			if rest != "" {
				items = append(items, splitInline(rest)...)
			}

			for j := i + 1; j < len(lines); j++ {
				l := strings.TrimSpace(lines[j])
				if l == "" {
					break
				}
				if headerRe.MatchString(l) {
					break
				}
				item := strings.TrimSpace(bulletRe.ReplaceAllString(l, ""))
				if item != "" {
					items = append(items, item)
				}
			}

			if len(items) > 0 {
				return items
			}
		}
	}
	return nil
}

// splitInline breaks an inline list ("Java, Spring; SQL") into items.
func splitInline(s string) []string {
	var items []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if t := strings.TrimSpace(part); t != "" {
			items = append(items, t)
		}
	}
	return items
}

var techTerms = []string{
	"java", "spring", "spring boot", "hibernate", "jpa", "sql", "nosql",
	"mongodb", "postgresql", "mysql", "oracle", "aws", "azure", "gcp",
	"docker", "kubernetes", "microservices", "rest", "soap", "api", "git",
	"jenkins", "ci/cd", "junit", "mockito", "maven", "gradle", "kafka",
	"rabbitmq", "redis", "elasticsearch",
}

// technologiesFromSkills mines known technology names out of the skills list
// when the posting has no dedicated technologies section.
func technologiesFromSkills(skills []string) []string {
	var techs []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, term := range techTerms {
			if strings.Contains(lower, term) {
				techs = append(techs, term)
				break
			}
		}
	}
	return techs
}

package jobdesc

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown job postings using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*JobDescription, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	jd := &JobDescription{Description: string(src)}

	// bucket receives list items under the most recent recognized heading.
	var bucket *[]string

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if node.Level == 1 && jd.Title == "" {
				jd.Title = title
				bucket = nil
				continue
			}
			bucket = bucketForHeading(jd, title)

		case *ast.List:
			if bucket == nil {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if t := strings.TrimSpace(nodeText(item, src)); t != "" {
					*bucket = append(*bucket, t)
				}
			}

		default:
			t := nodeText(n, src)
			if m := companyRe.FindStringSubmatch(t); m != nil && jd.Company == "" {
				jd.Company = strings.TrimSpace(m[1])
			}
			if m := titleRe.FindStringSubmatch(t); m != nil && jd.Title == "" {
				jd.Title = strings.TrimSpace(m[1])
			}
		}
	}

	if jd.Title == "" {
		jd.Title = DefaultTitle
	}
	if jd.Company == "" {
		jd.Company = UnknownCompany
	}
	if len(jd.Technologies) == 0 {
		jd.Technologies = technologiesFromSkills(jd.Skills)
	}

	return jd, nil
}

// bucketForHeading matches a heading title against the section keyword lists.
func bucketForHeading(jd *JobDescription, title string) *[]string {
	lower := strings.ToLower(title)
	for _, kw := range technologyKeywords {
		if strings.Contains(lower, kw) {
			return &jd.Technologies
		}
	}
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			return &jd.Skills
		}
	}
	for _, kw := range responsibilityKeywords {
		if strings.Contains(lower, kw) {
			return &jd.Responsibilities
		}
	}
	return nil
}

// nodeText gets the text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(nodeText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

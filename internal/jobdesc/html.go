package jobdesc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLParser handles HTML job postings. The page is flattened to plain text
// lines (headings become "Heading:" labels) and the text heuristics take over.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*JobDescription, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if t := textContent(n); t != "" {
					lines = append(lines, strings.TrimSuffix(t, ":")+":")
				}
				return
			case "p", "li", "td", "blockquote":
				if t := textContent(n); t != "" {
					lines = append(lines, t)
				}
				return
			case "ul", "ol", "table", "div", "section":
				// Recurse, then separate the group from what follows.
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				if len(lines) > 0 && lines[len(lines)-1] != "" {
					lines = append(lines, "")
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	jd := parseTextLines(lines)

	// Prefer the page <title> when the posting has no explicit title label.
	if !titleRe.MatchString(strings.Join(lines, "\n")) {
		if t := findTitle(doc); t != "" {
			jd.Title = t
		}
	}

	return jd, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

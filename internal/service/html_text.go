package service

import (
	"strings"

	"golang.org/x/net/html"
)

var (
	textBlockTags = map[string]bool{
		"p": true, "div": true, "section": true, "article": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"li": true, "ul": true, "ol": true, "blockquote": true,
	}
	textSkipTags = map[string]bool{
		"script": true, "style": true, "head": true, "title": true, "nav": true,
	}
)

// htmlToText extracts the visible text of an HTML document, separating block
// elements with blank lines.
func htmlToText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil || doc == nil {
		return content
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tag := strings.ToLower(n.Data)
			if textSkipTags[tag] {
				return
			}
			if tag == "br" {
				sb.WriteString("\n")
			}
			if textBlockTags[tag] {
				sb.WriteString("\n\n")
			}
		}
		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				out := sb.String()
				if len(out) > 0 && !strings.HasSuffix(out, "\n") && !strings.HasSuffix(out, " ") {
					sb.WriteString(" ")
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && textBlockTags[strings.ToLower(n.Data)] {
			sb.WriteString("\n\n")
		}
	}
	walk(doc)

	return sb.String()
}

// normalizeText trims every line and collapses runs of blank lines to one.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		t := strings.Join(strings.Fields(line), " ")
		if t == "" {
			blank++
			if blank == 1 {
				out = append(out, "")
			}
			continue
		}
		blank = 0
		out = append(out, t)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

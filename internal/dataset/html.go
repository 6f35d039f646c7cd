package dataset

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the visible text from a description carrying HTML
// markup, collapsing runs of whitespace to single spaces. Input without
// markup comes back unchanged apart from whitespace normalization.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// html.Parse is lenient; on the rare failure keep the raw text.
		return strings.Join(strings.Fields(s), " ")
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}

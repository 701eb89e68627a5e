// ABOUTME: HTML utilities for turning markup into plain text
// ABOUTME: Walks the parsed node tree and joins visible text nodes with single spaces

package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements never contribute visible text
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// VisibleText parses markup and returns every visible text node, trimmed and
// joined by a single space. Empty text nodes are dropped.
func VisibleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipped[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			if text := CollapseWhitespace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}

// StripHTML removes tags from a fragment and returns its visible text
func StripHTML(markup string) string {
	text, err := VisibleText(strings.NewReader(markup))
	if err != nil {
		return CollapseWhitespace(markup)
	}
	return text
}

// CollapseWhitespace trims s and replaces each whitespace run with one space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

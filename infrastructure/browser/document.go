// ABOUTME: goquery-backed Document and Element adapters for loaded pages
// ABOUTME: Lookups report absence with a bool instead of an error

package browser

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/xiajiun/article-scraping/core/interfaces"
	htmlutil "github.com/xiajiun/article-scraping/pkg/utils/html"
)

// Document is a parsed page
type Document struct {
	node
	url string
}

// NewDocument parses markup loaded from pageURL
func NewDocument(pageURL string, r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{node: node{sel: doc.Selection}, url: pageURL}, nil
}

// URL returns the location the page was loaded from
func (d *Document) URL() string {
	return d.url
}

// Element is one matched node
type Element struct {
	node
}

// Text returns the element text with whitespace collapsed
func (e *Element) Text() string {
	return htmlutil.CollapseWhitespace(e.sel.Text())
}

// Attr returns an attribute value and whether it is present
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

type node struct {
	sel *goquery.Selection
}

func (n node) First(selector string) (interfaces.Element, bool) {
	if selector == "" {
		return nil, false
	}
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Element{node{sel: found}}, true
}

func (n node) All(selector string) []interfaces.Element {
	if selector == "" {
		return nil
	}
	var out []interfaces.Element
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Element{node{sel: s}})
	})
	return out
}

func (n node) has(selector string) bool {
	return n.sel.Find(selector).Length() > 0
}

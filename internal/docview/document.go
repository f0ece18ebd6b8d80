// Package docview prepares generated wiki pages for display: it unwraps the
// document shell, promotes the first top-level heading to a page title, and
// annotates section headings with stable anchors for a table of contents.
//
// The package works on a parsed HTML node tree rather than pattern matching,
// so nested or untidy markup inside headings does not break extraction.
package docview

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TOCEntry is one table-of-contents row: a level 2 or 3 heading with the
// anchor identifier it can be reached by.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Document is a wiki page prepared for viewing. Body holds the page content
// with the title heading removed and section headings annotated; TOC lists
// the section headings in document order.
type Document struct {
	Title string     `json:"title"`
	Body  string     `json:"body"`
	TOC   []TOCEntry `json:"toc"`
}

// Parse reads a full HTML document (or fragment) and produces the viewer
// model. The first <h1> inside <body> becomes the title and is removed from
// the body. Every <h2> and <h3> missing an id attribute gets one derived from
// its text via Slug; headings that already carry an id keep it untouched, so
// running Parse over already-annotated content changes nothing.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	body := findElement(root, atom.Body)
	if body == nil {
		// html.Parse always synthesizes a body; this guards a caller
		// handing us a pre-built tree without one.
		body = root
	}

	doc := &Document{}

	var title *html.Node
	var sections []*html.Node
	walk(body, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.H1:
			if title == nil {
				title = n
			}
		case atom.H2, atom.H3:
			sections = append(sections, n)
		}
	})

	if title != nil {
		doc.Title = strings.TrimSpace(nodeText(title))
		title.Parent.RemoveChild(title)
	}

	for _, h := range sections {
		text := strings.TrimSpace(nodeText(h))
		id := attrValue(h, "id")
		if id == "" {
			id = Slug(text)
			h.Attr = append(h.Attr, html.Attribute{Key: "id", Val: id})
		}
		level := 2
		if h.DataAtom == atom.H3 {
			level = 3
		}
		doc.TOC = append(doc.TOC, TOCEntry{ID: id, Text: text, Level: level})
	}

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, fmt.Errorf("render body: %w", err)
		}
	}
	doc.Body = buf.String()

	return doc, nil
}

// walk visits every node under n in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findElement returns the first element with the given atom, or nil.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// nodeText concatenates the text content of a node's subtree, dropping any
// nested tags. Entity references were already decoded by the parser.
func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

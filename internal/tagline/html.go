package tagline

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Nodes returns the segments as HTML nodes: the prefix and suffix as text,
// the marker wrapped in a <strong> element. Empty segments are omitted.
func (em Emphasis) Nodes() []*html.Node {
	var nodes []*html.Node
	if em.Prefix != "" {
		nodes = append(nodes, &html.Node{Type: html.TextNode, Data: em.Prefix})
	}
	if em.Matched {
		strong := &html.Node{Type: html.ElementNode, Data: "strong", DataAtom: atom.Strong}
		strong.AppendChild(&html.Node{Type: html.TextNode, Data: em.MarkerText})
		nodes = append(nodes, strong)
	}
	if em.Suffix != "" {
		nodes = append(nodes, &html.Node{Type: html.TextNode, Data: em.Suffix})
	}
	return nodes
}

// RenderHTML writes the escaped HTML form of em to w.
func (em Emphasis) RenderHTML(w io.Writer) error {
	for _, n := range em.Nodes() {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// HTML returns the escaped HTML form of em.
func (em Emphasis) HTML() string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = em.RenderHTML(&b)
	return b.String()
}

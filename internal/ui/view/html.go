package view

import (
	"html"
	"sort"
	"strings"
)

var voidElements = map[string]bool{"input": true, "br": true, "hr": true, "img": true}

// HTML serializes the tree as markup. Attributes are written in a stable
// order: class first, then the rest sorted by name.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n == nil {
		return
	}
	b.WriteString("<")
	b.WriteString(n.Tag)
	if len(n.Classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(n.ClassName()))
		b.WriteString(`"`)
	}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[k]))
		b.WriteString(`"`)
	}
	if n.Checked {
		b.WriteString(" checked")
	}
	if n.Hidden {
		b.WriteString(` style="display: none;"`)
	}
	b.WriteString(">")

	if voidElements[n.Tag] {
		return
	}
	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}

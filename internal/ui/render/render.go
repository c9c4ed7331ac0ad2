package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/biobank-directory/dirview/internal/ui/view"
)

// FocusMarker prefixes the line of the focused element.
const FocusMarker = "›"

var inlineTags = map[string]bool{
	"a": true, "input": true, "label": true, "span": true, "small": true, "strong": true,
}

// Renderer turns a view tree into terminal text.
type Renderer struct {
	focus  *view.Node
	styles Styles
}

// New creates a renderer with the given styles.
func New(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// WithFocus returns a copy of the renderer that highlights n.
func (r *Renderer) WithFocus(n *view.Node) *Renderer {
	c := *r
	c.focus = n
	return &c
}

// Render draws root and its visible descendants.
func (r *Renderer) Render(root *view.Node) string {
	return r.node(root)
}

func (r *Renderer) node(n *view.Node) string {
	if n == nil || n.Hidden {
		return ""
	}

	var out string
	switch {
	case n.Tag == "input" && n.Attr("type") == "checkbox":
		out = Checkbox(n.Checked)
		if n.Checked {
			out = r.styles.Selected.Render(out)
		}
	case n.Tag == "tr":
		out = r.row(n)
	case n.HasClass("nav-tabs"):
		out = r.join(n.Children, " │ ")
	case len(n.Children) == 0:
		out = r.text(n)
	case allInline(n.Children):
		out = r.join(n.Children, " ")
	default:
		out = r.join(n.Children, "\n")
		if n.Text != "" {
			out = r.text(n) + "\n" + out
		}
	}

	if n.HasClass("card") && out != "" {
		out = r.styles.Card.Render(out)
	}
	if r.focus != nil && n == r.focus {
		out = FocusMarker + " " + r.styles.Focused.Render(out)
	}
	return out
}

// Checkbox draws a checkbox glyph.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (r *Renderer) text(n *view.Node) string {
	text := n.Text
	switch {
	case n.HasClass("filter-header"):
		marker := "▸"
		if n.Attr("aria-expanded") != "false" {
			marker = "▾"
		}
		return r.styles.Header.Render(marker + " " + text)
	case n.Tag == "h1":
		return r.styles.Title.Render(text)
	case n.HasClass("badge-success"):
		return r.styles.Yes.Render(text)
	case n.HasClass("badge-danger"):
		return r.styles.No.Render(text)
	case n.HasClass("nav-link") && n.HasClass("active"):
		return r.styles.Selected.Render("[" + text + "]")
	case n.Tag == "a":
		return r.styles.Link.Render(text)
	case n.Tag == "th":
		return r.styles.Label.Render(text + ":")
	case n.Tag == "small", n.HasClass("spinner"):
		return r.styles.Muted.Render(text)
	default:
		return text
	}
}

func (r *Renderer) row(n *view.Node) string {
	cells := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if s := r.node(c); s != "" {
			cells = append(cells, s)
		}
	}
	return strings.Join(cells, " ")
}

func (r *Renderer) join(children []*view.Node, sep string) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if s := r.node(c); s != "" {
			parts = append(parts, s)
		}
	}
	if sep == "\n" {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return strings.Join(parts, sep)
}

func allInline(nodes []*view.Node) bool {
	for _, n := range nodes {
		if !inlineTags[n.Tag] {
			return false
		}
	}
	return true
}

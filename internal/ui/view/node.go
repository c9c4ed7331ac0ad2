// Package view provides the element tree components render into.
//
// A Node mirrors a DOM element closely enough for components to be queried
// the way a browser test would: by tag or class, reading text, checked state
// and visibility, and dispatching click/change events to the handlers the
// component attached. Renderers (terminal, HTML) walk the same tree.
package view

import (
	"strings"
)

// Node is a single element in a rendered component tree.
type Node struct {
	Attrs    map[string]string
	OnClick  func()
	OnChange func(checked bool)
	Tag      string
	Text     string
	Classes  []string
	Children []*Node
	Checked  bool
	Hidden   bool
}

// El creates an element with a space separated class list.
func El(tag, classes string, children ...*Node) *Node {
	n := &Node{Tag: tag, Classes: strings.Fields(classes)}
	n.Append(children...)
	return n
}

// TextEl creates an element whose only content is text.
func TextEl(tag, classes, text string) *Node {
	n := El(tag, classes)
	n.Text = text
	return n
}

// Append adds children, skipping nil entries so callers can pass
// conditionally built nodes directly.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns an attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	if n == nil {
		return false
	}
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ClassName returns the class attribute value.
func (n *Node) ClassName() string {
	return strings.Join(n.Classes, " ")
}

// Exists reports whether a query found a node. It is safe on nil.
func (n *Node) Exists() bool {
	return n != nil
}

// IsVisible reports whether the node exists and is not hidden.
func (n *Node) IsVisible() bool {
	return n != nil && !n.Hidden
}

// Interactive reports whether the node handles click or change events.
func (n *Node) Interactive() bool {
	return n != nil && (n.OnClick != nil || n.OnChange != nil)
}

// Content returns the text of the node and its descendants, with runs of
// whitespace collapsed and the result trimmed.
func (n *Node) Content() string {
	if n == nil {
		return ""
	}
	var parts []string
	n.walk(func(c *Node) bool {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
		return true
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Click dispatches a click event. Checkboxes toggle their checked state
// through OnChange, as a browser would.
func (n *Node) Click() {
	if n == nil {
		return
	}
	if n.OnClick != nil {
		n.OnClick()
		return
	}
	if n.OnChange != nil {
		n.OnChange(!n.Checked)
	}
}

// SetChecked dispatches a change event when the checked state differs.
func (n *Node) SetChecked(checked bool) {
	if n == nil || n.OnChange == nil || n.Checked == checked {
		return
	}
	n.OnChange(checked)
}

// walk visits n and its descendants depth first in document order.
// Returning false from fn skips the children of that node.
func (n *Node) walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn)
	}
}

package view

import "strings"

// selector is a compound selector: an optional tag, zero or more classes and
// optional [attr=value] constraints, e.g. "input[type=checkbox]" or ".card-body".
type selector struct {
	attrs   map[string]string
	tag     string
	classes []string
}

func parseSelector(s string) selector {
	sel := selector{}
	s = strings.TrimSpace(s)

	for {
		open := strings.IndexByte(s, '[')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open:], ']')
		if end < 0 {
			break
		}
		key, value, _ := strings.Cut(s[open+1:open+end], "=")
		if sel.attrs == nil {
			sel.attrs = make(map[string]string)
		}
		sel.attrs[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
		s = s[:open] + s[open+end+1:]
	}

	parts := strings.Split(s, ".")
	sel.tag = parts[0]
	for _, c := range parts[1:] {
		if c != "" {
			sel.classes = append(sel.classes, c)
		}
	}
	return sel
}

func (s selector) matches(n *Node) bool {
	if s.tag != "" && s.tag != n.Tag {
		return false
	}
	for _, c := range s.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	for k, v := range s.attrs {
		if n.Attr(k) != v {
			return false
		}
	}
	return true
}

// Find returns the first node matching selector in document order, including
// n itself, or nil.
func (n *Node) Find(sel string) *Node {
	if n == nil {
		return nil
	}
	s := parseSelector(sel)
	var found *Node
	n.walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if s.matches(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching selector in document order.
func (n *Node) FindAll(sel string) []*Node {
	if n == nil {
		return nil
	}
	s := parseSelector(sel)
	var out []*Node
	n.walk(func(c *Node) bool {
		if s.matches(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Interactives returns every node with an event handler in document order,
// skipping hidden subtrees.
func (n *Node) Interactives() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	n.walk(func(c *Node) bool {
		if c.Hidden {
			return false
		}
		if c.Interactive() {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Package document provides the parsed tree the validation engine consumes:
// a minimal immutable DOM with ordered attributes, parent links and
// diagnostic paths.
package document

import "strings"

// Attr is a single element attribute. Attribute order is preserved
// from the source document and names are unique per element.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the parsed document. Nodes are built once by
// Parse and never mutated afterwards; a tree is owned exclusively by the
// validation run that parsed it.
type Node struct {
	// Tag is the element's local name.
	Tag string

	// Attrs holds the element's attributes in document order.
	Attrs []Attr

	// Children holds child elements in document order.
	Children []*Node

	// Text is the element's accumulated character data.
	Text string

	parent *Node
}

// Parent returns the enclosing element, or nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Attr returns the value of a named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// TrimText returns the element text with surrounding whitespace removed.
func (n *Node) TrimText() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text)
}

// First returns the first direct child with the given tag, or nil.
func (n *Node) First(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildText returns the trimmed text of the first direct child with the
// given tag, or "" when the child is absent.
func (n *Node) ChildText(tag string) string {
	return n.First(tag).TrimText()
}

// ChildrenByTag returns the direct children with the given tag, in order.
func (n *Node) ChildrenByTag(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every descendant with the given tag in
// depth-first document order. The receiver itself is not included.
func (n *Node) Descendants(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	n.Walk(func(d *Node) bool {
		if d != n && d.Tag == tag {
			out = append(out, d)
		}
		return true
	})
	return out
}

// Walk visits the node and all descendants in depth-first document order.
// Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Ancestor returns the nearest ancestor whose tag is in the given set,
// or nil when none matches.
func (n *Node) Ancestor(tags map[string]bool) *Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if tags[p.Tag] {
			return p
		}
	}
	return nil
}

// identifying attributes checked, in order, when building path segments
var pathIDAttrs = [...]string{"IDValue", "InternalCode", "Code"}

// Path returns the node's diagnostic path, e.g.
// /PhysicalProperty/Property[@IDValue='p1']/ChargeOfferClass[@Code='FEES']/ChargeOfferItem[2].
// Elements carrying an identifying attribute are addressed by it; others by
// their 1-based position among same-tag siblings.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var segs []string
	for cur := n; cur != nil; cur = cur.parent {
		segs = append(segs, cur.pathSegment())
	}
	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

func (n *Node) pathSegment() string {
	for _, attr := range pathIDAttrs {
		if v := n.Attr(attr); v != "" {
			return n.Tag + "[@" + attr + "='" + v + "']"
		}
	}
	if n.parent == nil {
		return n.Tag
	}
	pos, total := 0, 0
	for _, sib := range n.parent.Children {
		if sib.Tag == n.Tag {
			total++
			if sib == n {
				pos = total
			}
		}
	}
	if total > 1 {
		return n.Tag + "[" + itoa(pos) + "]"
	}
	return n.Tag
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// DefaultMaxDepth bounds element nesting when no explicit limit is given.
const DefaultMaxDepth = 64

// Parse errors.
var (
	// ErrEmptyDocument is returned when no root element was found.
	ErrEmptyDocument = errors.New("document: no root element")
	// ErrTooDeep is returned when element nesting exceeds the depth bound.
	ErrTooDeep = errors.New("document: nesting depth exceeds limit")
	// ErrForbiddenDirective is returned for DOCTYPE declarations; inline
	// entity definitions and external subsets are never processed.
	ErrForbiddenDirective = errors.New("document: DOCTYPE declarations are not allowed")
)

// Parse builds the element tree from XML bytes with the default depth bound.
func Parse(data []byte) (*Node, error) {
	return ParseReader(bytes.NewReader(data), DefaultMaxDepth)
}

// ParseReader builds the element tree from a reader. maxDepth bounds element
// nesting; values <= 0 fall back to DefaultMaxDepth.
//
// The parser is safe by construction: encoding/xml never resolves external
// entities, and DOCTYPE directives (the only way to define internal ones)
// are rejected outright.
func ParseReader(r io.Reader, maxDepth int) (*Node, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	decoder := xml.NewDecoder(r)

	var stack []*Node
	var root *Node
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("document: unexpected element <%s> after document end", t.Name.Local)
			}
			if len(stack) >= maxDepth {
				return nil, ErrTooDeep
			}
			node := &Node{
				Tag:   t.Name.Local,
				Attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
				node.parent = parent
			} else {
				root = node
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, errors.New("document: unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].Text += string(t)

		case xml.Directive:
			if isDoctype(t) {
				return nil, ErrForbiddenDirective
			}
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	if !rootClosed {
		return nil, fmt.Errorf("document: %w", io.ErrUnexpectedEOF)
	}

	return root, nil
}

func convertAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		// Drop namespace declarations; the fee schema is namespace-free
		// and rule paths address elements by local name.
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		out = append(out, Attr{Name: a.Name.Local, Value: a.Value})
	}
	return out
}

func isDoctype(d xml.Directive) bool {
	s := strings.TrimSpace(string(d))
	return len(s) >= 7 && strings.EqualFold(s[:7], "DOCTYPE")
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

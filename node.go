package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
	KindRaw                 // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Element is a mutable tree node. The zero value is not useful; use
// NewElement, NewText, or the constructors in package el.
type Element struct {
	kind     Kind
	tag      string
	nid      string
	text     string // KindText and KindRaw content
	attrs    map[string]string
	styles   map[string]string
	props    map[string]any
	parent   *Element
	children []*Element
	doc      *Document

	// shownDisplay remembers the display style Hide replaced, so Show can
	// restore it.
	shownDisplay string
	hidden       bool
}

// NewElement creates a detached element node with the given tag.
func NewElement(tag string) *Element {
	return &Element{
		kind: KindElement,
		tag:  strings.ToLower(tag),
	}
}

// NewText creates a detached text node.
func NewText(text string) *Element {
	return &Element{kind: KindText, text: text}
}

// NewRaw creates a detached raw HTML node. The content is emitted verbatim
// by the renderer; never build it from untrusted input.
func NewRaw(html string) *Element {
	return &Element{kind: KindRaw, text: html}
}

// Kind returns the node kind. Nil-safe; nil reports KindElement's zero.
func (e *Element) Kind() Kind {
	if e == nil {
		return KindElement
	}
	return e.kind
}

// Tag returns the element tag name, lowercased. Empty for non-element nodes.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.tag
}

// NID returns the node identity assigned by the owning Document, or "" for
// nodes that were never adopted.
func (e *Element) NID() string {
	if e == nil {
		return ""
	}
	return e.nid
}

// Parent returns the parent node, or nil for detached and root nodes.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// Children returns the child slice. Callers must not mutate it; use the
// child operations instead.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	return e.children
}

// Len returns the number of children.
func (e *Element) Len() int {
	if e == nil {
		return 0
	}
	return len(e.children)
}

// ChildAt returns the child at index i, or nil when out of range.
func (e *Element) ChildAt(i int) *Element {
	if e == nil || i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Index returns the position of child among e's children, or -1.
func (e *Element) Index(child *Element) int {
	if e == nil || child == nil {
		return -1
	}
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Document returns the owning document, or nil for detached trees.
func (e *Element) Document() *Document {
	if e == nil {
		return nil
	}
	return e.doc
}

// IsText reports whether the node is a text node.
func (e *Element) IsText() bool {
	return e != nil && e.kind == KindText
}

// Text returns the node's own text for text and raw nodes. For element
// nodes use TextContent.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// TextContent returns the concatenated text of the node and its descendants,
// in document order. Raw nodes contribute nothing.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	if e.kind == KindText {
		return e.text
	}
	if e.kind == KindRaw {
		return ""
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

package el

import "github.com/doeixd/dom"

// Element aliases the dom node type so DSL-only callers need one import.
type Element = dom.Element

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Props is the element-modification payload accepted by Apply.
type Props map[string]any

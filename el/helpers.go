package el

import (
	"fmt"

	"github.com/doeixd/dom"
)

// Text creates a text node.
func Text(content string) *dom.Element {
	return dom.NewText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *dom.Element {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *dom.Element {
	return dom.NewRaw(html)
}

// Fragment groups children into a slice that the constructors splice in
// place, without a wrapper element.
func Fragment(children ...any) []*dom.Element {
	var out []*dom.Element
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *dom.Element:
			if v != nil {
				out = append(out, v)
			}
		case []*dom.Element:
			for _, c := range v {
				if c != nil {
					out = append(out, c)
				}
			}
		case string:
			out = append(out, Text(v))
		}
	}
	return out
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *dom.Element) *dom.Element {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *dom.Element) *dom.Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *dom.Element) *dom.Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, node *dom.Element) *dom.Element {
	if !condition {
		return node
	}
	return nil
}

// Range maps a slice to elements.
func Range[T any](items []T, fn func(item T, index int) *dom.Element) []*dom.Element {
	result := make([]*dom.Element, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n elements using the given function.
func Repeat(n int, fn func(i int) *dom.Element) []*dom.Element {
	if n <= 0 {
		return nil
	}
	result := make([]*dom.Element, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *dom.Element) *dom.Element {
	if first != nil {
		return first
	}
	return second
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *dom.Element {
	return nil
}

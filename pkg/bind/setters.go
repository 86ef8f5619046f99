package bind

import (
	"reflect"

	"github.com/doeixd/dom"
)

// The setter vocabulary. Each constructor takes (or returns a Factory
// taking) the target element and yields a dirty-checked Setter: writing a
// value equal to the last-applied one is skipped. Equality is strict for
// comparable values and reflect.DeepEqual for everything else.

// Text sets text content. This is the default setter for schema-less refs.
func Text(e *dom.Element) Setter {
	var last any
	var has bool
	return func(value any) {
		if has && valuesEqual(last, value) {
			return
		}
		last, has = value, true
		e.SetText(dom.PropString(value))
	}
}

// HTML sets raw inner markup.
func HTML(e *dom.Element) Setter {
	var last any
	var has bool
	return func(value any) {
		if has && valuesEqual(last, value) {
			return
		}
		last, has = value, true
		e.SetHTML(dom.PropString(value))
	}
}

// Attribute sets the named attribute. nil and false remove it, true sets
// the bare boolean attribute.
func Attribute(name string) Factory {
	return func(e *dom.Element) Setter {
		var last any
		var has bool
		return func(value any) {
			if has && valuesEqual(last, value) {
				return
			}
			last, has = value, true
			switch v := value.(type) {
			case nil:
				e.RemoveAttr(name)
			case bool:
				if v {
					e.SetAttr(name, "")
				} else {
					e.RemoveAttr(name)
				}
			default:
				e.SetAttr(name, dom.PropString(value))
			}
		}
	}
}

// Prop sets an arbitrary element property (disabled, checked, readOnly...).
func Prop(name string) Factory {
	return func(e *dom.Element) Setter {
		return func(value any) {
			e.SetProp(name, value)
		}
	}
}

// ClassToggle toggles a single class by boolean value.
func ClassToggle(name string) Factory {
	return func(e *dom.Element) Setter {
		return func(value any) {
			on, _ := value.(bool)
			e.ToggleClass(name, on)
		}
	}
}

// Classes toggles multiple classes from a name→bool mapping.
func Classes(e *dom.Element) Setter {
	return func(value any) {
		m, ok := value.(map[string]bool)
		if !ok {
			return
		}
		for name, on := range m {
			e.ToggleClass(name, on)
		}
	}
}

// StyleProp sets a single inline style property.
func StyleProp(name string) Factory {
	return func(e *dom.Element) Setter {
		return func(value any) {
			e.SetStyle(name, dom.PropString(value))
		}
	}
}

// Visible toggles display between none and the element's original display
// value. The original value is captured once, when the setter is built at
// binder construction, not per call.
func Visible(e *dom.Element) Setter {
	orig := e.Style("display")
	return func(value any) {
		on, _ := value.(bool)
		if on {
			e.SetStyle("display", orig)
		} else {
			e.SetStyle("display", "none")
		}
	}
}

// Value sets the form-control value; numerics are coerced to string.
func Value(e *dom.Element) Setter {
	return func(value any) {
		e.SetValue(value)
	}
}

// valuesEqual is the binder's dirty-check comparison: fast paths for the
// comparable kinds seen in practice, DeepEqual for object-valued refs.
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

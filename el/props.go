package el

import "github.com/doeixd/dom"

// Apply is the element-modification primitive: it applies each recognized
// key of props to target. Unrecognized keys are ignored, and a nil target
// or nil props is a no-op.
//
// Recognized keys:
//
//	text     string|number    set text content
//	html     string           set raw inner markup
//	value    string|number    set form-control value
//	disabled bool             set the disabled property
//	id       string           set the id attribute
//	class    string|[]string|map[string]bool  add classes / toggle by flag
//	style    map[string]string                set inline style properties
//	dataset  map[string]string                set data-* attributes
//	attr     map[string]any                   set attributes (nil/false removes)
func Apply(target *dom.Element, props Props) {
	if target == nil || props == nil {
		return
	}

	for key, val := range props {
		switch key {
		case "text":
			target.SetText(dom.PropString(val))

		case "html":
			if s, ok := val.(string); ok {
				target.SetHTML(s)
			}

		case "value":
			target.SetValue(val)

		case "disabled":
			if b, ok := val.(bool); ok {
				target.SetProp("disabled", b)
			}

		case "id":
			if s, ok := val.(string); ok {
				target.SetAttr("id", s)
			}

		case "class":
			applyClass(target, val)

		case "style":
			if styles, ok := val.(map[string]string); ok {
				for name, v := range styles {
					target.SetStyle(name, v)
				}
			}

		case "dataset":
			if data, ok := val.(map[string]string); ok {
				for name, v := range data {
					target.SetAttr("data-"+name, v)
				}
			}

		case "attr":
			if attrs, ok := val.(map[string]any); ok {
				for name, v := range attrs {
					applyAttrValue(target, name, v)
				}
			}
		}
	}
}

func applyClass(target *dom.Element, val any) {
	switch v := val.(type) {
	case string:
		target.AddClass(v)
	case []string:
		target.AddClass(v...)
	case map[string]bool:
		for name, on := range v {
			target.ToggleClass(name, on)
		}
	}
}

// applyAttrValue sets one attribute; nil and false remove it, true sets the
// bare boolean attribute.
func applyAttrValue(target *dom.Element, name string, val any) {
	switch v := val.(type) {
	case nil:
		target.RemoveAttr(name)
	case bool:
		if v {
			target.SetAttr(name, "")
		} else {
			target.RemoveAttr(name)
		}
	case string:
		target.SetAttr(name, v)
	default:
		target.SetAttr(name, dom.PropString(v))
	}
}

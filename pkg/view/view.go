// Package view turns template functions into reusable view factories.
//
// A Factory wraps a function that builds an element subtree. Every New call
// produces an independent subtree plus its extracted ref mapping, bundled
// into a View handle with update, per-ref bind, and teardown operations.
package view

import (
	"github.com/doeixd/dom"
	"github.com/doeixd/dom/el"
)

// Template builds a fresh subtree. It is called once per Factory.New; a
// panic inside it propagates to the caller.
type Template func() *dom.Element

// Options tune a freshly built view's root element.
type Options struct {
	// ClassName classes are all added to the root.
	ClassName []string

	// ID sets the root's id attribute when non-empty.
	ID string

	// Props is applied to the root via el.Apply.
	Props el.Props
}

// Factory instantiates views from one template.
type Factory struct {
	tmpl Template
}

// NewFactory wraps a template function. A nil template yields a factory
// whose views carry a nil element and empty refs, keeping composition
// null-safe.
func NewFactory(tmpl Template) *Factory {
	return &Factory{tmpl: tmpl}
}

// New builds a fresh subtree, extracts its refs, and applies opts (which
// may be nil). Instances share no mutable state.
func (f *Factory) New(opts *Options) *View {
	var root *dom.Element
	if f != nil && f.tmpl != nil {
		root = f.tmpl()
	}

	v := &View{
		Element: root,
		Refs:    dom.Refs(root),
	}

	if opts != nil {
		if len(opts.ClassName) > 0 {
			root.AddClass(opts.ClassName...)
		}
		if opts.ID != "" {
			root.SetAttr("id", opts.ID)
		}
		if opts.Props != nil {
			el.Apply(root, opts.Props)
		}
	}

	return v
}

// View is the handle returned by a factory: the root element, its named
// slots, and the operations over them. The caller owns Element once the
// handle is returned.
type View struct {
	Element *dom.Element
	Refs    map[string]*dom.Element
}

// Update re-applies element-modification props to the root.
func (v *View) Update(props el.Props) {
	if v == nil {
		return
	}
	el.Apply(v.Element, props)
}

// UpdateRefs applies a partial value map to named slots. Strings and
// numbers set text content (numbers stringified); an el.Props value is
// applied as element-modification props. Nil values and unknown names are
// skipped.
func (v *View) UpdateRefs(partial map[string]any) {
	if v == nil {
		return
	}
	for name, value := range partial {
		target, ok := v.Refs[name]
		if !ok || value == nil {
			continue
		}
		switch val := value.(type) {
		case string:
			target.SetText(val)
		case int, int64, float64:
			target.SetText(dom.PropString(val))
		case el.Props:
			el.Apply(target, val)
		case map[string]any:
			el.Apply(target, el.Props(val))
		}
	}
}

// Bind returns a setter for one named slot, equivalent to calling
// UpdateRefs with that single key. Handy as a direct callback.
func (v *View) Bind(name string) func(value any) {
	return func(value any) {
		v.UpdateRefs(map[string]any{name: value})
	}
}

// Destroy detaches the root from its parent if attached. Calling it again
// is a no-op.
func (v *View) Destroy() {
	if v == nil {
		return
	}
	v.Element.Remove()
}

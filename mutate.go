package dom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Child operations. All of them tolerate nil receivers and nil children and
// keep the mutation log of the owning document (if any) consistent with the
// tree.

// AppendChild adds child as the last child of e. A child that already has a
// parent is moved, not duplicated.
func (e *Element) AppendChild(child *Element) {
	if e == nil {
		return
	}
	e.InsertAt(len(e.children), child)
}

// PrependChild adds child as the first child of e.
func (e *Element) PrependChild(child *Element) {
	e.InsertAt(0, child)
}

// InsertBefore inserts child immediately before ref. A nil or foreign ref
// appends instead.
func (e *Element) InsertBefore(child, ref *Element) {
	if e == nil {
		return
	}
	idx := e.Index(ref)
	if idx < 0 {
		idx = len(e.children)
	}
	e.InsertAt(idx, child)
}

// InsertAt inserts child at index i, clamping i into range. Inserting a
// node that is already a child of e repositions it in place, preserving its
// identity.
func (e *Element) InsertAt(i int, child *Element) {
	if e == nil || child == nil || child == e {
		return
	}
	if i < 0 {
		i = 0
	}

	if child.parent == e {
		cur := e.Index(child)
		e.children = append(e.children[:cur], e.children[cur+1:]...)
		if i > cur {
			i--
		}
		if i > len(e.children) {
			i = len(e.children)
		}
		e.children = append(e.children, nil)
		copy(e.children[i+1:], e.children[i:])
		e.children[i] = child
		if cur != i {
			e.notify(Mutation{Op: MutMoveNode, NID: child.nid, ParentNID: e.nid, Index: i})
		}
		return
	}

	child.Remove()
	if i > len(e.children) {
		i = len(e.children)
	}
	child.parent = e
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = child
	if e.doc != nil {
		e.doc.adopt(child)
	}
	e.notify(Mutation{Op: MutInsertNode, NID: child.nid, ParentNID: e.nid, Index: i, Node: child})
}

// RemoveChild detaches child from e. A node that is not a child of e is
// left alone.
func (e *Element) RemoveChild(child *Element) {
	if e == nil || child == nil || child.parent != e {
		return
	}
	idx := e.Index(child)
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.parent = nil
	e.notify(Mutation{Op: MutRemoveNode, NID: child.nid, ParentNID: e.nid})
}

// Remove detaches e from its parent. Detached nodes keep their document
// association so that re-inserting them preserves identity.
func (e *Element) Remove() {
	if e == nil || e.parent == nil {
		return
	}
	e.parent.RemoveChild(e)
}

// ReplaceChildren removes all current children and appends the given nodes
// in order. Nil entries are skipped.
func (e *Element) ReplaceChildren(children ...*Element) {
	if e == nil {
		return
	}
	for len(e.children) > 0 {
		e.RemoveChild(e.children[len(e.children)-1])
	}
	for _, c := range children {
		if c != nil {
			e.AppendChild(c)
		}
	}
}

// SetText replaces e's children with a single text node. Setting the text
// a node already holds is a no-op, so repeated writes do not churn the
// mutation log.
func (e *Element) SetText(text string) {
	if e == nil || e.kind != KindElement {
		if e != nil && (e.kind == KindText || e.kind == KindRaw) {
			if e.text != text {
				e.text = text
				e.notify(Mutation{Op: MutSetText, NID: e.nid, Value: text})
			}
		}
		return
	}
	if len(e.children) == 1 && e.children[0].kind == KindText {
		t := e.children[0]
		if t.text == text {
			return
		}
		t.text = text
		e.notify(Mutation{Op: MutSetText, NID: e.nid, Value: text})
		return
	}
	for _, c := range e.children {
		c.parent = nil
	}
	t := NewText(text)
	t.parent = e
	e.children = append(e.children[:0], t)
	if e.doc != nil {
		e.doc.adopt(t)
	}
	e.notify(Mutation{Op: MutSetText, NID: e.nid, Value: text})
}

// SetHTML replaces e's children with a single raw node holding the given
// markup. The content is not parsed or escaped.
func (e *Element) SetHTML(html string) {
	if e == nil || e.kind != KindElement {
		return
	}
	for _, c := range e.children {
		c.parent = nil
	}
	r := NewRaw(html)
	r.parent = e
	e.children = append(e.children[:0], r)
	if e.doc != nil {
		e.doc.adopt(r)
	}
	e.notify(Mutation{Op: MutSetHTML, NID: e.nid, Value: html})
}

// Attribute operations.

// SetAttr sets an attribute. Setting the current value again is a no-op.
func (e *Element) SetAttr(key, value string) {
	if e == nil || e.kind != KindElement || key == "" {
		return
	}
	if cur, ok := e.attrs[key]; ok && cur == value {
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[key] = value
	e.notify(Mutation{Op: MutSetAttr, NID: e.nid, Key: key, Value: value})
}

// RemoveAttr removes an attribute. Removing an absent attribute is a no-op.
func (e *Element) RemoveAttr(key string) {
	if e == nil || e.attrs == nil {
		return
	}
	if _, ok := e.attrs[key]; !ok {
		return
	}
	delete(e.attrs, key)
	e.notify(Mutation{Op: MutRemoveAttr, NID: e.nid, Key: key})
}

// Attr returns the attribute value, or "" when absent.
func (e *Element) Attr(key string) string {
	if e == nil {
		return ""
	}
	return e.attrs[key]
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	if e == nil {
		return false
	}
	_, ok := e.attrs[key]
	return ok
}

// Attrs returns a copy of the attribute map.
func (e *Element) Attrs() map[string]string {
	if e == nil || len(e.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Class operations, layered over the class attribute.

// AddClass adds the given class names, skipping ones already present.
func (e *Element) AddClass(names ...string) {
	if e == nil {
		return
	}
	classes := splitClasses(e.Attr("class"))
	changed := false
	for _, n := range names {
		if n == "" || containsClass(classes, n) {
			continue
		}
		classes = append(classes, n)
		changed = true
	}
	if changed {
		e.SetAttr("class", strings.Join(classes, " "))
	}
}

// RemoveClass removes the given class names.
func (e *Element) RemoveClass(names ...string) {
	if e == nil {
		return
	}
	classes := splitClasses(e.Attr("class"))
	kept := classes[:0]
	for _, c := range classes {
		drop := false
		for _, n := range names {
			if c == n {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(classes) {
		e.SetAttr("class", strings.Join(kept, " "))
	}
}

// ToggleClass adds or removes a single class by flag.
func (e *Element) ToggleClass(name string, on bool) {
	if on {
		e.AddClass(name)
	} else {
		e.RemoveClass(name)
	}
}

// HasClass reports whether the class is present.
func (e *Element) HasClass(name string) bool {
	if e == nil {
		return false
	}
	return containsClass(splitClasses(e.Attr("class")), name)
}

func splitClasses(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

func containsClass(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

// Inline style operations. Styles are kept as a map and serialized into the
// style attribute by the renderer.

// SetStyle sets one inline style property. An empty value removes it.
func (e *Element) SetStyle(name, value string) {
	if e == nil || e.kind != KindElement || name == "" {
		return
	}
	if value == "" {
		if _, ok := e.styles[name]; !ok {
			return
		}
		delete(e.styles, name)
		e.notify(Mutation{Op: MutSetStyle, NID: e.nid, Key: name, Value: ""})
		return
	}
	if cur, ok := e.styles[name]; ok && cur == value {
		return
	}
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[name] = value
	e.notify(Mutation{Op: MutSetStyle, NID: e.nid, Key: name, Value: value})
}

// Style returns one inline style property, or "".
func (e *Element) Style(name string) string {
	if e == nil {
		return ""
	}
	return e.styles[name]
}

// StyleString serializes the inline styles in sorted-key order.
func (e *Element) StyleString() string {
	if e == nil || len(e.styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.styles))
	for k := range e.styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.styles[k])
	}
	return b.String()
}

// Hide sets display:none, remembering the current display value.
func (e *Element) Hide() {
	if e == nil || e.kind != KindElement || e.hidden {
		return
	}
	e.shownDisplay = e.styles["display"]
	e.hidden = true
	e.SetStyle("display", "none")
}

// Show restores the display value Hide replaced. Calling Show on an
// element that was never hidden clears any display:none it carries.
func (e *Element) Show() {
	if e == nil || e.kind != KindElement {
		return
	}
	restored := e.shownDisplay
	e.hidden = false
	e.shownDisplay = ""
	if restored == "" && e.styles["display"] != "none" {
		return
	}
	e.SetStyle("display", restored)
}

// Hidden reports whether Hide is in effect.
func (e *Element) Hidden() bool {
	return e != nil && e.hidden
}

// Property operations: the analog of DOM element properties (disabled,
// checked, value...) as opposed to attributes.

// SetProp sets an element property. Equal comparable values short-circuit.
func (e *Element) SetProp(name string, value any) {
	if e == nil || e.kind != KindElement || name == "" {
		return
	}
	if cur, ok := e.props[name]; ok && propsEqual(cur, value) {
		return
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
	e.notify(Mutation{Op: MutSetProp, NID: e.nid, Key: name, Value: PropString(value)})
}

// Prop returns an element property, or nil.
func (e *Element) Prop(name string) any {
	if e == nil {
		return nil
	}
	return e.props[name]
}

// SetValue sets the form-control value property. Non-string values are
// stringified the way the value setter in package bind expects.
func (e *Element) SetValue(value any) {
	if e == nil {
		return
	}
	s := PropString(value)
	if cur, ok := e.props["value"].(string); ok && cur == s {
		return
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props["value"] = s
	e.notify(Mutation{Op: MutSetValue, NID: e.nid, Value: s})
}

// Value returns the form-control value property as a string.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	s, _ := e.props["value"].(string)
	return s
}

// propsEqual compares two property values, fast-pathing the common
// comparable types.
func propsEqual(a, b any) bool {
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
	return false
}

// PropString converts a property value to its string form for the mutation
// log and the renderer.
func PropString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

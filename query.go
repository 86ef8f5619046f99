package dom

// Query returns the first descendant of e (in document order, excluding e
// itself) for which pred returns true, or nil.
func (e *Element) Query(pred func(*Element) bool) *Element {
	if e == nil || pred == nil {
		return nil
	}
	for _, c := range e.children {
		if pred(c) {
			return c
		}
		if found := c.Query(pred); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant of e (document order, excluding e) for
// which pred returns true.
func (e *Element) QueryAll(pred func(*Element) bool) []*Element {
	if e == nil || pred == nil {
		return nil
	}
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			if pred(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// QueryByAttr returns the first descendant carrying the attribute with the
// given value.
func (e *Element) QueryByAttr(key, value string) *Element {
	return e.Query(func(n *Element) bool { return n.HasAttr(key) && n.Attr(key) == value })
}

// QueryByTag returns every descendant with the given tag name.
func (e *Element) QueryByTag(tag string) []*Element {
	return e.QueryAll(func(n *Element) bool { return n.kind == KindElement && n.tag == tag })
}

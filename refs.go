package dom

// RefAttr is the identity marker attribute recognized by the reference
// extractor. Builders set it via el.Ref(name).
const RefAttr = "data-ref"

// Refs scans root's descendants for the identity marker and returns a
// mapping from marker value to element. When several descendants share a
// name, the last one in document order wins. Root itself is never included.
// A nil root yields an empty, non-nil map.
func Refs(root *Element) map[string]*Element {
	refs := make(map[string]*Element)
	if root == nil {
		return refs
	}
	for _, e := range root.QueryAll(hasRefMarker) {
		refs[e.Attr(RefAttr)] = e
	}
	return refs
}

// GroupRefs is the grouped variant of Refs: marker value to all elements
// carrying it, in document order. Repeated names are the point here (list
// items sharing a ref name).
func GroupRefs(root *Element) map[string][]*Element {
	groups := make(map[string][]*Element)
	if root == nil {
		return groups
	}
	for _, e := range root.QueryAll(hasRefMarker) {
		name := e.Attr(RefAttr)
		groups[name] = append(groups[name], e)
	}
	return groups
}

func hasRefMarker(e *Element) bool {
	return e.Kind() == KindElement && e.Attr(RefAttr) != ""
}

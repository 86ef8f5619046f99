package dom

import "testing"

func refTree() *Element {
	root := NewElement("div")
	title := NewElement("h1")
	title.SetAttr(RefAttr, "title")
	body := NewElement("p")
	body.SetAttr(RefAttr, "body")
	wrap := NewElement("section")
	wrap.AppendChild(body)
	root.AppendChild(title)
	root.AppendChild(wrap)
	return root
}

func TestRefsCollectsDescendants(t *testing.T) {
	root := refTree()
	refs := Refs(root)

	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	if refs["title"].Tag() != "h1" {
		t.Errorf("title ref = %q, want h1", refs["title"].Tag())
	}
	if refs["body"].Tag() != "p" {
		t.Errorf("body ref = %q, want p", refs["body"].Tag())
	}
}

func TestRefsExcludesRoot(t *testing.T) {
	root := NewElement("div")
	root.SetAttr(RefAttr, "self")

	refs := Refs(root)
	if _, ok := refs["self"]; ok {
		t.Errorf("root's own marker must not be extracted")
	}
}

func TestRefsLastMatchWins(t *testing.T) {
	root := NewElement("div")
	first := NewElement("span")
	first.SetAttr(RefAttr, "dup")
	second := NewElement("em")
	second.SetAttr(RefAttr, "dup")
	root.AppendChild(first)
	root.AppendChild(second)

	refs := Refs(root)
	if refs["dup"] != second {
		t.Errorf("duplicate name should resolve to the last element in document order")
	}
}

func TestRefsNilRoot(t *testing.T) {
	refs := Refs(nil)
	if refs == nil || len(refs) != 0 {
		t.Errorf("nil root should yield an empty non-nil map, got %v", refs)
	}
	groups := GroupRefs(nil)
	if groups == nil || len(groups) != 0 {
		t.Errorf("nil root should yield an empty non-nil group map, got %v", groups)
	}
}

func TestGroupRefsPreservesDocumentOrder(t *testing.T) {
	root := NewElement("ul")
	var items []*Element
	for i := 0; i < 3; i++ {
		li := NewElement("li")
		li.SetAttr(RefAttr, "item")
		root.AppendChild(li)
		items = append(items, li)
	}

	groups := GroupRefs(root)
	got := groups["item"]
	if len(got) != 3 {
		t.Fatalf("len(groups[item]) = %d, want 3", len(got))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("groups[item][%d] out of document order", i)
		}
	}
}

func TestRefsSkipsEmptyMarker(t *testing.T) {
	root := NewElement("div")
	blank := NewElement("span")
	blank.SetAttr("data-other", "x")
	root.AppendChild(blank)

	if refs := Refs(root); len(refs) != 0 {
		t.Errorf("unmarked elements should be skipped, got %v", refs)
	}
}

package view

import (
	"testing"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/el"
)

func cardTemplate() *dom.Element {
	return el.Div(el.Class("card"),
		el.H2(el.Ref("title")),
		el.P(el.Ref("body")),
	)
}

func TestFactoryBuildsIndependentInstances(t *testing.T) {
	f := NewFactory(cardTemplate)

	a := f.New(nil)
	b := f.New(nil)

	if a.Element == b.Element {
		t.Fatalf("instances must not share subtrees")
	}
	a.UpdateRefs(map[string]any{"title": "A"})
	if b.Refs["title"].TextContent() != "" {
		t.Errorf("updating one instance leaked into another")
	}
}

func TestFactoryExtractsRefs(t *testing.T) {
	v := NewFactory(cardTemplate).New(nil)
	if len(v.Refs) != 2 {
		t.Fatalf("len(Refs) = %d, want 2", len(v.Refs))
	}
	if v.Refs["title"].Tag() != "h2" || v.Refs["body"].Tag() != "p" {
		t.Errorf("refs mapped to wrong elements")
	}
}

func TestOptionsApplied(t *testing.T) {
	v := NewFactory(cardTemplate).New(&Options{
		ClassName: []string{"wide", "dark"},
		ID:        "card-1",
		Props:     el.Props{"attr": map[string]any{"role": "article"}},
	})

	if !v.Element.HasClass("card") || !v.Element.HasClass("wide") || !v.Element.HasClass("dark") {
		t.Errorf("classes not all added: %q", v.Element.Attr("class"))
	}
	if v.Element.Attr("id") != "card-1" {
		t.Errorf("id not applied")
	}
	if v.Element.Attr("role") != "article" {
		t.Errorf("props not applied")
	}
}

func TestUpdateRefsValueKinds(t *testing.T) {
	v := NewFactory(cardTemplate).New(nil)

	v.UpdateRefs(map[string]any{
		"title": "Hello",
		"body":  42,
	})
	if v.Refs["title"].TextContent() != "Hello" {
		t.Errorf("string value should set text")
	}
	if v.Refs["body"].TextContent() != "42" {
		t.Errorf("number value should be stringified, got %q", v.Refs["body"].TextContent())
	}

	v.UpdateRefs(map[string]any{
		"title": el.Props{"class": "hot"},
	})
	if !v.Refs["title"].HasClass("hot") {
		t.Errorf("props value should be applied as element modification")
	}
}

func TestUpdateRefsSkipsNilAndUnknown(t *testing.T) {
	v := NewFactory(cardTemplate).New(nil)
	v.Refs["title"].SetText("keep")

	v.UpdateRefs(map[string]any{
		"title": nil,
		"ghost": "ignored",
	})

	if v.Refs["title"].TextContent() != "keep" {
		t.Errorf("nil value should be skipped, text is now %q", v.Refs["title"].TextContent())
	}
}

func TestBindReturnsUsableSetter(t *testing.T) {
	v := NewFactory(cardTemplate).New(nil)
	setTitle := v.Bind("title")
	setTitle("bound")
	if v.Refs["title"].TextContent() != "bound" {
		t.Errorf("Bind setter did not apply")
	}
}

func TestDestroyIdempotent(t *testing.T) {
	parent := el.Div()
	v := NewFactory(cardTemplate).New(nil)
	parent.AppendChild(v.Element)

	v.Destroy()
	v.Destroy() // second call is a no-op

	if parent.Len() != 0 {
		t.Errorf("Destroy did not detach the root")
	}
	if v.Element.Parent() != nil {
		t.Errorf("root still has a parent after Destroy")
	}
}

func TestNilTemplateFactory(t *testing.T) {
	v := NewFactory(nil).New(&Options{ID: "x"})
	if v.Element != nil {
		t.Errorf("nil template should yield nil element")
	}
	if len(v.Refs) != 0 {
		t.Errorf("nil template should yield empty refs")
	}
	// Operations on the empty handle are no-ops, not panics.
	v.Update(el.Props{"text": "x"})
	v.UpdateRefs(map[string]any{"a": "b"})
	v.Destroy()
}

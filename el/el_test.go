package el

import (
	"testing"

	"github.com/doeixd/dom"
)

func TestBuildBasic(t *testing.T) {
	e := Div(Class("card"), ID("main"),
		H1("Title"),
		P(Ref("body"), "Hello"),
	)

	if e.Tag() != "div" {
		t.Fatalf("Tag() = %q, want div", e.Tag())
	}
	if e.Attr("class") != "card" || e.Attr("id") != "main" {
		t.Errorf("attrs = %v", e.Attrs())
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
	if e.ChildAt(0).Tag() != "h1" || e.ChildAt(0).TextContent() != "Title" {
		t.Errorf("first child wrong: %q %q", e.ChildAt(0).Tag(), e.ChildAt(0).TextContent())
	}
	if e.ChildAt(1).Attr(dom.RefAttr) != "body" {
		t.Errorf("Ref attr not set")
	}
}

func TestBuildSkipsNil(t *testing.T) {
	e := Div(nil, If(false, Span()), "text")
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (nils skipped)", e.Len())
	}
}

func TestBuildAttrSlice(t *testing.T) {
	attrs := []Attr{Type("text"), Placeholder("name"), Disabled()}
	e := Input(attrs)
	if e.Attr("type") != "text" || e.Attr("placeholder") != "name" {
		t.Errorf("attr slice not applied: %v", e.Attrs())
	}
	if !e.HasAttr("disabled") {
		t.Errorf("boolean attribute not set")
	}
}

func TestBooleanAttrFalseOmitted(t *testing.T) {
	e := Input(Attr{Key: "disabled", Value: false})
	if e.HasAttr("disabled") {
		t.Errorf("false boolean attribute should be omitted")
	}
}

func TestFragmentSplices(t *testing.T) {
	e := Ul(Fragment(
		Li("a"),
		Fragment(Li("b"), Li("c")),
	))
	if e.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", e.Len())
	}
	if e.ChildAt(2).TextContent() != "c" {
		t.Errorf("fragment order lost")
	}
}

func TestRangeAndRepeat(t *testing.T) {
	items := []string{"a", "b", "c"}
	ul := Ul(Range(items, func(s string, i int) *dom.Element {
		return Li(s)
	}))
	if ul.Len() != 3 || ul.ChildAt(1).TextContent() != "b" {
		t.Errorf("Range produced wrong children")
	}

	if got := Repeat(0, func(int) *dom.Element { return Div() }); got != nil {
		t.Errorf("Repeat(0) = %v, want nil", got)
	}
}

func TestApplyRecognizedKeys(t *testing.T) {
	e := Input()
	Apply(e, Props{
		"text":     "hi",
		"value":    7,
		"disabled": true,
		"id":       "f1",
		"class":    []string{"a", "b"},
		"style":    map[string]string{"color": "red"},
		"dataset":  map[string]string{"kind": "x"},
		"attr":     map[string]any{"title": "tip"},
		"bogus":    "ignored",
	})

	if e.TextContent() != "hi" {
		t.Errorf("text = %q", e.TextContent())
	}
	if e.Value() != "7" {
		t.Errorf("value = %q, want 7", e.Value())
	}
	if e.Prop("disabled") != true {
		t.Errorf("disabled prop not set")
	}
	if e.Attr("id") != "f1" || !e.HasClass("b") {
		t.Errorf("id/class not applied")
	}
	if e.Style("color") != "red" {
		t.Errorf("style not applied")
	}
	if e.Attr("data-kind") != "x" || e.Attr("title") != "tip" {
		t.Errorf("dataset/attr not applied")
	}
}

func TestApplyAttrRemoval(t *testing.T) {
	e := Div(Attr{Key: "title", Value: "tip"})
	Apply(e, Props{"attr": map[string]any{"title": nil}})
	if e.HasAttr("title") {
		t.Errorf("nil attr value should remove the attribute")
	}
	Apply(e, Props{"attr": map[string]any{"hidden": true}})
	if !e.HasAttr("hidden") {
		t.Errorf("true attr value should set the bare attribute")
	}
	Apply(e, Props{"attr": map[string]any{"hidden": false}})
	if e.HasAttr("hidden") {
		t.Errorf("false attr value should remove the attribute")
	}
}

func TestApplyNilTarget(t *testing.T) {
	Apply(nil, Props{"text": "x"}) // must not panic
	Apply(Div(), nil)
}

func TestClassToggleMap(t *testing.T) {
	e := Div(Class("a", "b"))
	Apply(e, Props{"class": map[string]bool{"a": false, "c": true}})
	if e.HasClass("a") || !e.HasClass("b") || !e.HasClass("c") {
		t.Errorf("class toggle map wrong: %q", e.Attr("class"))
	}
}

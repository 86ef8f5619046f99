package render

import (
	"strings"
	"testing"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/el"
)

func TestRenderBasicTree(t *testing.T) {
	e := el.Div(el.Class("card"),
		el.H1("Title"),
		el.P("Body"),
	)

	got := String(e)
	want := `<div class="card"><h1>Title</h1><p>Body</p></div>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderSortsAttributes(t *testing.T) {
	e := el.Div(el.ID("x"), el.Class("c"), el.Data("k", "v"))
	got := String(e)
	want := `<div class="c" data-k="v" id="x"></div>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderEscapesText(t *testing.T) {
	e := el.Span("<b>&\"'")
	got := String(e)
	want := "<span>&lt;b&gt;&amp;&quot;&#39;</span>"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderEscapesAttrs(t *testing.T) {
	e := el.Div(el.TitleAttr("a\"b\nc"))
	got := String(e)
	if !strings.Contains(got, `title="a&quot;b&#10;c"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
}

func TestRenderRawVerbatim(t *testing.T) {
	e := el.Div(el.Raw("<b>bold</b>"))
	got := String(e)
	if got != "<div><b>bold</b></div>" {
		t.Errorf("raw content altered: %q", got)
	}
}

func TestRenderVoidElements(t *testing.T) {
	e := el.Div(el.Br(), el.Img(el.Src("/x.png")))
	got := String(e)
	if strings.Contains(got, "</br>") || strings.Contains(got, "</img>") {
		t.Errorf("void elements must not be closed: %q", got)
	}
	if !strings.Contains(got, `<img src="/x.png">`) {
		t.Errorf("img attrs lost: %q", got)
	}
}

func TestRenderInlineStyles(t *testing.T) {
	e := el.Div()
	e.SetStyle("display", "none")
	e.SetStyle("color", "red")
	got := String(e)
	if !strings.Contains(got, `style="color: red; display: none"`) {
		t.Errorf("styles not serialized: %q", got)
	}
}

func TestRenderProps(t *testing.T) {
	e := el.Input()
	e.SetValue("hi")
	e.SetProp("disabled", true)
	got := String(e)
	if !strings.Contains(got, `value="hi"`) || !strings.Contains(got, "disabled") {
		t.Errorf("props not rendered: %q", got)
	}
}

func TestRenderIncludeNIDs(t *testing.T) {
	root := el.Div(el.Span("x"))
	dom.NewDocument(root)

	got := New(Config{IncludeNIDs: true}).String(root)
	if !strings.Contains(got, `data-nid="`+root.NID()+`"`) {
		t.Errorf("root NID missing: %q", got)
	}
}

func TestRenderPretty(t *testing.T) {
	e := el.Div(el.P("x"))
	got := New(Config{Pretty: true}).String(e)
	if !strings.Contains(got, "\n  <p>") {
		t.Errorf("pretty output not indented: %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	if got := String(nil); got != "" {
		t.Errorf("nil renders %q, want empty", got)
	}
}

func TestBooleanAttribute(t *testing.T) {
	e := el.Input(el.Disabled())
	got := String(e)
	if !strings.Contains(got, "<input disabled>") {
		t.Errorf("bare boolean attribute wrong: %q", got)
	}
}

package el

import "github.com/doeixd/dom"

// build creates a new element with the given tag and applies the argument
// list. Arguments can be: nil, Attr, []Attr, *dom.Element, []*dom.Element,
// or string (text-node shorthand). Unknown argument types are ignored.
func build(tag string, args []any) *dom.Element {
	e := dom.NewElement(tag)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			applyAttr(e, v)

		case []Attr:
			for _, a := range v {
				applyAttr(e, a)
			}

		case *dom.Element:
			if v != nil {
				e.AppendChild(v)
			}

		case []*dom.Element:
			for _, child := range v {
				if child != nil {
					e.AppendChild(child)
				}
			}

		case string:
			// Shorthand for a text child
			e.AppendChild(dom.NewText(v))
		}
	}

	return e
}

// applyAttr materializes one Attr on an element. Boolean values follow the
// boolean-attribute convention: true sets the attribute, false omits it.
func applyAttr(e *dom.Element, a Attr) {
	if a.Key == "" {
		return
	}
	switch v := a.Value.(type) {
	case nil:
		return
	case bool:
		if v {
			e.SetAttr(a.Key, "")
		}
	case string:
		e.SetAttr(a.Key, v)
	default:
		e.SetAttr(a.Key, dom.PropString(v))
	}
}

// Document structure elements

func Html(args ...any) *dom.Element  { return build("html", args) }
func Head(args ...any) *dom.Element  { return build("head", args) }
func Body(args ...any) *dom.Element  { return build("body", args) }
func Title(args ...any) *dom.Element { return build("title", args) }
func Meta(args ...any) *dom.Element  { return build("meta", args) }
func Link(args ...any) *dom.Element  { return build("link", args) }

// Content sectioning elements

func Header(args ...any) *dom.Element  { return build("header", args) }
func Footer(args ...any) *dom.Element  { return build("footer", args) }
func Main(args ...any) *dom.Element    { return build("main", args) }
func Nav(args ...any) *dom.Element     { return build("nav", args) }
func Section(args ...any) *dom.Element { return build("section", args) }
func Article(args ...any) *dom.Element { return build("article", args) }
func Aside(args ...any) *dom.Element   { return build("aside", args) }
func H1(args ...any) *dom.Element      { return build("h1", args) }
func H2(args ...any) *dom.Element      { return build("h2", args) }
func H3(args ...any) *dom.Element      { return build("h3", args) }
func H4(args ...any) *dom.Element      { return build("h4", args) }
func H5(args ...any) *dom.Element      { return build("h5", args) }
func H6(args ...any) *dom.Element      { return build("h6", args) }

// Text content elements

func Div(args ...any) *dom.Element        { return build("div", args) }
func P(args ...any) *dom.Element          { return build("p", args) }
func Span(args ...any) *dom.Element       { return build("span", args) }
func Pre(args ...any) *dom.Element        { return build("pre", args) }
func Blockquote(args ...any) *dom.Element { return build("blockquote", args) }
func Ul(args ...any) *dom.Element         { return build("ul", args) }
func Ol(args ...any) *dom.Element         { return build("ol", args) }
func Li(args ...any) *dom.Element         { return build("li", args) }
func Dl(args ...any) *dom.Element         { return build("dl", args) }
func Dt(args ...any) *dom.Element         { return build("dt", args) }
func Dd(args ...any) *dom.Element         { return build("dd", args) }
func Hr(args ...any) *dom.Element         { return build("hr", args) }
func Figure(args ...any) *dom.Element     { return build("figure", args) }
func Figcaption(args ...any) *dom.Element { return build("figcaption", args) }

// Inline text semantics

func A(args ...any) *dom.Element      { return build("a", args) }
func Strong(args ...any) *dom.Element { return build("strong", args) }
func Em(args ...any) *dom.Element     { return build("em", args) }
func B(args ...any) *dom.Element      { return build("b", args) }
func I(args ...any) *dom.Element      { return build("i", args) }
func U(args ...any) *dom.Element      { return build("u", args) }
func S(args ...any) *dom.Element      { return build("s", args) }
func Small(args ...any) *dom.Element  { return build("small", args) }
func Mark(args ...any) *dom.Element   { return build("mark", args) }
func Sub(args ...any) *dom.Element    { return build("sub", args) }
func Sup(args ...any) *dom.Element    { return build("sup", args) }
func Code(args ...any) *dom.Element   { return build("code", args) }
func Kbd(args ...any) *dom.Element    { return build("kbd", args) }
func Abbr(args ...any) *dom.Element   { return build("abbr", args) }
func Time_(args ...any) *dom.Element  { return build("time", args) }
func Cite(args ...any) *dom.Element   { return build("cite", args) }
func Q(args ...any) *dom.Element      { return build("q", args) }
func Br(args ...any) *dom.Element     { return build("br", args) }
func Wbr(args ...any) *dom.Element    { return build("wbr", args) }

// Form elements

func Form(args ...any) *dom.Element     { return build("form", args) }
func Input(args ...any) *dom.Element    { return build("input", args) }
func Textarea(args ...any) *dom.Element { return build("textarea", args) }
func Select(args ...any) *dom.Element   { return build("select", args) }
func Option(args ...any) *dom.Element   { return build("option", args) }
func Optgroup(args ...any) *dom.Element { return build("optgroup", args) }
func Button(args ...any) *dom.Element   { return build("button", args) }
func Label(args ...any) *dom.Element    { return build("label", args) }
func Fieldset(args ...any) *dom.Element { return build("fieldset", args) }
func Legend(args ...any) *dom.Element   { return build("legend", args) }
func Datalist(args ...any) *dom.Element { return build("datalist", args) }
func Output(args ...any) *dom.Element   { return build("output", args) }
func Progress(args ...any) *dom.Element { return build("progress", args) }
func Meter(args ...any) *dom.Element    { return build("meter", args) }

// Table elements

func Table(args ...any) *dom.Element    { return build("table", args) }
func Thead(args ...any) *dom.Element    { return build("thead", args) }
func Tbody(args ...any) *dom.Element    { return build("tbody", args) }
func Tfoot(args ...any) *dom.Element    { return build("tfoot", args) }
func Tr(args ...any) *dom.Element       { return build("tr", args) }
func Th(args ...any) *dom.Element       { return build("th", args) }
func Td(args ...any) *dom.Element       { return build("td", args) }
func Caption(args ...any) *dom.Element  { return build("caption", args) }
func Colgroup(args ...any) *dom.Element { return build("colgroup", args) }
func Col(args ...any) *dom.Element      { return build("col", args) }

// Media elements

func Img(args ...any) *dom.Element    { return build("img", args) }
func Source(args ...any) *dom.Element { return build("source", args) }
func Video(args ...any) *dom.Element  { return build("video", args) }
func Audio(args ...any) *dom.Element  { return build("audio", args) }
func Iframe(args ...any) *dom.Element { return build("iframe", args) }
func Canvas(args ...any) *dom.Element { return build("canvas", args) }
func Svg(args ...any) *dom.Element    { return build("svg", args) }

// Interactive elements

func Details(args ...any) *dom.Element { return build("details", args) }
func Summary(args ...any) *dom.Element { return build("summary", args) }
func Dialog(args ...any) *dom.Element  { return build("dialog", args) }
func Menu(args ...any) *dom.Element    { return build("menu", args) }

// Scripting elements

func Script(args ...any) *dom.Element   { return build("script", args) }
func Noscript(args ...any) *dom.Element { return build("noscript", args) }
func Template(args ...any) *dom.Element { return build("template", args) }
func Style(args ...any) *dom.Element    { return build("style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *dom.Element {
	return build(tag, args)
}

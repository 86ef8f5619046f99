// Package render serializes dom element trees to HTML.
//
// Output is deterministic: attributes are emitted in sorted order and
// inline styles through the tree's own serialization. Text is escaped;
// raw nodes are written verbatim.
package render

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/doeixd/dom"
)

// Config configures the renderer.
type Config struct {
	// Pretty enables indented output. Development only; it inflates the
	// payload and perturbs whitespace-sensitive elements.
	Pretty bool

	// Indent is the string per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string

	// IncludeNIDs emits each adopted node's identity as a data-nid
	// attribute so a client can target mutation patches.
	IncludeNIDs bool
}

// Renderer writes element trees as HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// String renders a tree to a complete HTML string.
func (r *Renderer) String(e *dom.Element) string {
	var buf bytes.Buffer
	r.Write(&buf, e) // bytes.Buffer writes cannot fail
	return buf.String()
}

// Write streams a tree to w. A nil element writes nothing.
func (r *Renderer) Write(w io.Writer, e *dom.Element) error {
	return r.writeNode(w, e, 0)
}

func (r *Renderer) writeNode(w io.Writer, e *dom.Element, depth int) error {
	if e == nil {
		return nil
	}

	switch e.Kind() {
	case dom.KindText:
		return r.writeIndented(w, escapeHTML(e.Text()), depth)
	case dom.KindRaw:
		return r.writeIndented(w, e.Text(), depth)
	}

	var open strings.Builder
	open.WriteByte('<')
	open.WriteString(e.Tag())
	r.writeAttrs(&open, e)

	if dom.IsVoidElement(e.Tag()) {
		open.WriteString(">")
		return r.writeIndented(w, open.String(), depth)
	}

	children := e.Children()
	if len(children) == 0 {
		open.WriteString("></")
		open.WriteString(e.Tag())
		open.WriteByte('>')
		return r.writeIndented(w, open.String(), depth)
	}

	open.WriteByte('>')
	if err := r.writeIndented(w, open.String(), depth); err != nil {
		return err
	}
	for _, c := range children {
		if err := r.writeNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return r.writeIndented(w, "</"+e.Tag()+">", depth)
}

// writeAttrs emits attributes in sorted order, folding in inline styles,
// the node identity, and the renderable element properties.
func (r *Renderer) writeAttrs(b *strings.Builder, e *dom.Element) {
	attrs := e.Attrs()
	if attrs == nil {
		attrs = make(map[string]string)
	}
	if style := e.StyleString(); style != "" {
		attrs["style"] = style
	}
	if r.config.IncludeNIDs && e.NID() != "" {
		attrs["data-nid"] = e.NID()
	}
	if v := e.Value(); v != "" {
		attrs["value"] = v
	}
	for _, prop := range []string{"disabled", "checked", "selected", "readonly"} {
		if on, ok := e.Prop(prop).(bool); ok && on {
			attrs[prop] = ""
		}
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		if v := attrs[k]; v != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(v))
			b.WriteByte('"')
		}
	}
}

func (r *Renderer) writeIndented(w io.Writer, s string, depth int) error {
	if !r.config.Pretty {
		_, err := io.WriteString(w, s)
		return err
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString(r.config.Indent)
	}
	b.WriteString(s)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders e with the default configuration.
func String(e *dom.Element) string {
	return New(Config{}).String(e)
}

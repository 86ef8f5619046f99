// Package el is the hyperscript DSL for building dom element trees.
//
// Constructors mirror the HTML tag set and accept a loose argument list:
// attributes, children, strings (text shorthand), and nil (skipped), so
// templates read as nested markup:
//
//	card := el.Div(el.Class("card"),
//	    el.H2(el.Ref("title"), "Hello"),
//	    el.P(el.Ref("body")),
//	)
//
// el.Ref marks an element as a named slot for dom.Refs, and el.Apply is the
// element-modification primitive used by view options and binder schemas.
package el

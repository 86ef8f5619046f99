// Package dom implements a mutable, null-safe element tree: the in-process
// stand-in for a browser DOM that the rest of the module renders, binds, and
// reconciles against.
//
// Elements are created directly or through the hyperscript constructors in
// package el. Every mutator tolerates a nil receiver and nil arguments by
// degrading to a no-op, and every accessor on nil returns a zero value; this
// null-safety is a contract, not an accident, and the higher layers (bind,
// view, list) rely on it to compose without guard clauses.
//
// A Document wraps a root element, hands out node identities, and records
// mutations for observers such as the live server in pkg/live.
package dom

// Package bind wires named elements to reactive setters.
//
// A Binder is built from a ref mapping (see dom.Refs) and an optional
// schema of per-name setter factories. Updating the binder with a partial
// value map applies each present key through its setter; unknown keys are
// ignored so speculative view-model shapes stay cheap. Writes are
// dirty-checked, and Batch defers them with last-write-wins per key until
// the outermost batch returns.
package bind

import "github.com/doeixd/dom"

// Setter applies one value to a bound element.
type Setter func(value any)

// Factory builds a Setter for a concrete element. Schema values and the
// setter vocabulary in setters.go have this shape.
type Factory func(*dom.Element) Setter

// Schema maps ref names to setter factories. Names without an entry fall
// back to the text-content setter.
type Schema map[string]Factory

// Binder is the bound updater for one ref mapping. It is single-threaded,
// like the trees it writes to.
type Binder struct {
	refs    map[string]*dom.Element
	setters map[string]Setter

	depth   int
	pending map[string]any
	order   []string
}

// New creates a Binder for the given refs. schema may be nil; every ref
// name not covered by it gets a dirty-checked text-content setter.
func New(refs map[string]*dom.Element, schema Schema) *Binder {
	b := &Binder{
		refs:    refs,
		setters: make(map[string]Setter, len(refs)),
	}
	for name, e := range refs {
		if factory, ok := schema[name]; ok && factory != nil {
			b.setters[name] = factory(e)
		} else {
			b.setters[name] = Text(e)
		}
	}
	return b
}

// Update applies a partial value map. Keys without a known setter are
// silently ignored. A nil value is meaningful and is passed through to the
// setter (clearing semantics belong to the individual setter).
func (b *Binder) Update(partial map[string]any) {
	if b == nil {
		return
	}
	for name, value := range partial {
		b.apply(name, value)
	}
}

// Set returns the direct setter for one ref name, suitable for use as a
// standalone callback. Unknown names yield a no-op setter.
func (b *Binder) Set(name string) Setter {
	if b == nil {
		return func(any) {}
	}
	return func(value any) { b.apply(name, value) }
}

// Setters returns direct setters for every known ref name.
func (b *Binder) Setters() map[string]Setter {
	if b == nil {
		return nil
	}
	out := make(map[string]Setter, len(b.setters))
	for name := range b.setters {
		out[name] = b.Set(name)
	}
	return out
}

// Batch invokes fn, deferring all binder writes made inside it until the
// outermost batch returns. Batches nest; within one, repeated writes to the
// same key keep only the last value. This is a synchronous reentrancy
// guard, not a scheduler.
func (b *Binder) Batch(fn func()) {
	if b == nil || fn == nil {
		return
	}
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 {
			b.flush()
		}
	}()
	fn()
}

// Refs returns the mapping the binder was constructed with, by identity.
func (b *Binder) Refs() map[string]*dom.Element {
	if b == nil {
		return nil
	}
	return b.refs
}

func (b *Binder) apply(name string, value any) {
	setter, ok := b.setters[name]
	if !ok {
		return
	}
	if b.depth > 0 {
		if b.pending == nil {
			b.pending = make(map[string]any)
		}
		if _, seen := b.pending[name]; !seen {
			b.order = append(b.order, name)
		}
		b.pending[name] = value
		return
	}
	setter(value)
}

// flush applies pending batch writes in first-write order.
func (b *Binder) flush() {
	if len(b.pending) == 0 {
		return
	}
	pending, order := b.pending, b.order
	b.pending, b.order = nil, nil
	for _, name := range order {
		b.setters[name](pending[name])
	}
}

// Package list projects an ordered data slice onto a container's children.
//
// A List owns its container's child elements. In the default mode every Set
// replaces all children with freshly rendered ones; with a Key function the
// reconciler instead matches old and new items by identity, patching,
// repositioning, and removing mounted elements so that unchanged items keep
// their element instances (and whatever transient state lives inside them)
// across reorders.
//
// All positional conveniences (Append, Prepend, Insert, Remove, Update) are
// splice wrappers over the same Set path, so the ordering and identity
// guarantees hold after every operation: the container's child order always
// equals the item order.
package list

import "github.com/doeixd/dom"

// RenderFunc produces the element for one data item.
type RenderFunc[T any] func(item T, index int) *dom.Element

// ReconcileFunc fully replaces the built-in reconciliation strategies. It
// must leave container's children consistent with the new items by the time
// it returns.
type ReconcileFunc[T any] func(old, new []T, container *dom.Element, render RenderFunc[T])

// Options configure a List.
type Options[T any] struct {
	// Render is mandatory; a List without it renders nothing.
	Render RenderFunc[T]

	// Key activates keyed mode. It must return a stable identity, unique
	// within one item sequence. When two items in the same sequence share
	// a key, the last one wins and earlier duplicates are dropped; that is
	// a caller contract violation, tolerated rather than fatal.
	Key func(item T) string

	// Update patches an already-mounted element in place when its key
	// survives a Set. When absent, surviving elements are only
	// repositioned.
	Update func(element *dom.Element, item T)

	// OnAdd fires exactly once when an element is newly mounted.
	OnAdd func(element *dom.Element)

	// OnRemove fires exactly once when an element is permanently
	// unmounted because its key disappeared.
	OnRemove func(element *dom.Element)

	// Reconcile overrides both built-in modes entirely.
	Reconcile ReconcileFunc[T]
}

// List reconciles a container's children against item sequences.
type List[T any] struct {
	container *dom.Element
	opts      Options[T]
	items     []T
	byKey     map[string]*dom.Element
}

// New creates a List over container. A nil container yields a handle whose
// mutators are no-ops and whose accessors return empty collections, so a
// List composes unconditionally even before a mount point exists.
func New[T any](container *dom.Element, opts Options[T]) *List[T] {
	return &List[T]{
		container: container,
		opts:      opts,
		byKey:     make(map[string]*dom.Element),
	}
}

// Set replaces the projected sequence. This is the one reconciliation path;
// every other mutator funnels into it.
func (l *List[T]) Set(items []T) {
	if l == nil || l.container == nil {
		return
	}

	if l.opts.Reconcile != nil {
		l.opts.Reconcile(l.items, items, l.container, l.opts.Render)
		l.items = append([]T(nil), items...)
		return
	}

	if l.opts.Key != nil {
		l.setKeyed(items)
	} else {
		l.setPlain(items)
	}
	l.items = append([]T(nil), items...)
}

// setPlain is the default mode: blow away and rebuild.
func (l *List[T]) setPlain(items []T) {
	old := append([]*dom.Element(nil), l.container.Children()...)
	for _, e := range old {
		e.Remove()
		if l.opts.OnRemove != nil {
			l.opts.OnRemove(e)
		}
	}
	if l.opts.Render == nil {
		return
	}
	for i, item := range items {
		e := l.opts.Render(item, i)
		if e == nil {
			continue
		}
		l.container.AppendChild(e)
		if l.opts.OnAdd != nil {
			l.opts.OnAdd(e)
		}
	}
}

// setKeyed is the keyed diff: match by identity, patch survivors, mount
// newcomers, drop the disappeared, then reposition to the new order.
func (l *List[T]) setKeyed(items []T) {
	// Last occurrence wins for duplicate keys.
	lastIdx := make(map[string]int, len(items))
	for i, item := range items {
		lastIdx[l.opts.Key(item)] = i
	}

	type mount struct {
		el    *dom.Element
		added bool
	}
	desired := make([]mount, 0, len(items))
	newKeys := make(map[string]bool, len(items))

	for i, item := range items {
		key := l.opts.Key(item)
		if lastIdx[key] != i {
			continue
		}
		newKeys[key] = true

		if e, ok := l.byKey[key]; ok {
			if l.opts.Update != nil {
				l.opts.Update(e, item)
			}
			desired = append(desired, mount{el: e})
			continue
		}
		if l.opts.Render == nil {
			continue
		}
		e := l.opts.Render(item, i)
		if e == nil {
			continue
		}
		l.byKey[key] = e
		desired = append(desired, mount{el: e, added: true})
	}

	// Keys gone from the new sequence: detach, forget, notify once.
	for key, e := range l.byKey {
		if newKeys[key] {
			continue
		}
		delete(l.byKey, key)
		e.Remove()
		if l.opts.OnRemove != nil {
			l.opts.OnRemove(e)
		}
	}

	// Sequential insertion: after this loop the child order equals the new
	// key order. An element already in place is left untouched, so an
	// identical re-set moves nothing.
	for i, m := range desired {
		if l.container.ChildAt(i) != m.el {
			l.container.InsertAt(i, m.el)
		}
		if m.added && l.opts.OnAdd != nil {
			l.opts.OnAdd(m.el)
		}
	}
}

// Append adds items to the end of the sequence.
func (l *List[T]) Append(items ...T) {
	if l == nil || l.container == nil || len(items) == 0 {
		return
	}
	next := append(append([]T(nil), l.items...), items...)
	l.Set(next)
}

// Prepend adds items to the front of the sequence.
func (l *List[T]) Prepend(items ...T) {
	if l == nil || l.container == nil || len(items) == 0 {
		return
	}
	next := append(append([]T(nil), items...), l.items...)
	l.Set(next)
}

// Insert splices items in at index, clamped into range.
func (l *List[T]) Insert(index int, items ...T) {
	if l == nil || l.container == nil || len(items) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(l.items) {
		index = len(l.items)
	}
	next := make([]T, 0, len(l.items)+len(items))
	next = append(next, l.items[:index]...)
	next = append(next, items...)
	next = append(next, l.items[index:]...)
	l.Set(next)
}

// Remove drops every item matching the predicate.
func (l *List[T]) Remove(pred func(item T) bool) {
	if l == nil || l.container == nil || pred == nil {
		return
	}
	next := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if !pred(item) {
			next = append(next, item)
		}
	}
	l.Set(next)
}

// Update maps every item matching the predicate through fn.
func (l *List[T]) Update(pred func(item T) bool, fn func(item T) T) {
	if l == nil || l.container == nil || pred == nil || fn == nil {
		return
	}
	next := make([]T, len(l.items))
	for i, item := range l.items {
		if pred(item) {
			next[i] = fn(item)
		} else {
			next[i] = item
		}
	}
	l.Set(next)
}

// Clear empties the sequence, firing OnRemove for every mounted element.
func (l *List[T]) Clear() {
	if l == nil || l.container == nil {
		return
	}
	l.Set(nil)
}

// Items returns the last-set sequence in order.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.items...)
}

// Elements returns the container's live children in DOM order.
func (l *List[T]) Elements() []*dom.Element {
	if l == nil || l.container == nil {
		return nil
	}
	return append([]*dom.Element(nil), l.container.Children()...)
}

// Destroy clears the container and all internal tracking. Further calls on
// the handle are no-ops.
func (l *List[T]) Destroy() {
	if l == nil || l.container == nil {
		return
	}
	l.Clear()
	l.container = nil
	l.byKey = make(map[string]*dom.Element)
	l.items = nil
}

// Package store is an explicit reactive key/value store: reads and writes
// go through Get/Set/Delete, and writes publish change events to
// subscribers synchronously, in call order.
//
// The element-backed variant persists entries through an element's data-*
// attributes, so state survives serialization with the tree and round-trips
// via package value's tagged parsing.
package store

import (
	"strings"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/pkg/value"
)

// Event describes one store change.
type Event struct {
	Key     string
	Value   any
	Old     any
	Deleted bool
}

// Handler receives change events.
type Handler func(Event)

// Store is a reactive mapping. The zero value is not useful; use New or
// NewElementStore.
type Store struct {
	backing backing
	subs    map[string][]Handler
	all     []Handler
}

// backing abstracts where entries actually live.
type backing interface {
	get(key string) (any, bool)
	set(key string, v any)
	delete(key string)
	keys() []string
}

// New creates a map-backed store.
func New() *Store {
	return &Store{
		backing: &mapBacking{m: make(map[string]any)},
		subs:    make(map[string][]Handler),
	}
}

// NewElementStore creates a store persisted through an element's data-*
// attributes. A nil element falls back to a plain map backing, keeping the
// store usable either way.
func NewElementStore(e *dom.Element) *Store {
	if e == nil {
		return New()
	}
	return &Store{
		backing: &attrBacking{e: e},
		subs:    make(map[string][]Handler),
	}
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.backing.get(key)
}

// Set stores a value and notifies subscribers of the key, then the
// catch-all subscribers.
func (s *Store) Set(key string, v any) {
	if s == nil || key == "" {
		return
	}
	old, _ := s.backing.get(key)
	s.backing.set(key, v)
	s.publish(Event{Key: key, Value: v, Old: old})
}

// Delete removes a key and notifies subscribers.
func (s *Store) Delete(key string) {
	if s == nil {
		return
	}
	old, ok := s.backing.get(key)
	if !ok {
		return
	}
	s.backing.delete(key)
	s.publish(Event{Key: key, Old: old, Deleted: true})
}

// Keys returns the stored keys, order unspecified.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	return s.backing.keys()
}

// Subscribe registers a handler for changes to one key. Handlers run
// synchronously inside Set/Delete.
func (s *Store) Subscribe(key string, h Handler) {
	if s == nil || h == nil {
		return
	}
	s.subs[key] = append(s.subs[key], h)
}

// SubscribeAll registers a handler for every change.
func (s *Store) SubscribeAll(h Handler) {
	if s == nil || h == nil {
		return
	}
	s.all = append(s.all, h)
}

func (s *Store) publish(ev Event) {
	for _, h := range s.subs[ev.Key] {
		h(ev)
	}
	for _, h := range s.all {
		h(ev)
	}
}

// mapBacking is the plain in-memory backing.
type mapBacking struct {
	m map[string]any
}

func (b *mapBacking) get(key string) (any, bool) {
	v, ok := b.m[key]
	return v, ok
}

func (b *mapBacking) set(key string, v any) { b.m[key] = v }
func (b *mapBacking) delete(key string)     { delete(b.m, key) }

func (b *mapBacking) keys() []string {
	out := make([]string, 0, len(b.m))
	for k := range b.m {
		out = append(out, k)
	}
	return out
}

// attrBacking persists entries as data-* attributes on one element, using
// package value for the string round-trip.
type attrBacking struct {
	e *dom.Element
}

const attrPrefix = "data-"

func (b *attrBacking) get(key string) (any, bool) {
	if !b.e.HasAttr(attrPrefix + key) {
		return nil, false
	}
	return value.Parse(b.e.Attr(attrPrefix + key)).Interface(), true
}

func (b *attrBacking) set(key string, v any) {
	b.e.SetAttr(attrPrefix+key, value.Format(v))
}

func (b *attrBacking) delete(key string) {
	b.e.RemoveAttr(attrPrefix + key)
}

func (b *attrBacking) keys() []string {
	var out []string
	for k := range b.e.Attrs() {
		if strings.HasPrefix(k, attrPrefix) && k != dom.RefAttr {
			out = append(out, strings.TrimPrefix(k, attrPrefix))
		}
	}
	return out
}

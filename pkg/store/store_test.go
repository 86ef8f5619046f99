package store

import (
	"testing"

	"github.com/doeixd/dom"
)

func TestSetGetDelete(t *testing.T) {
	s := New()
	s.Set("a", 1)

	if v, ok := s.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Errorf("key survived Delete")
	}
}

func TestSubscribeReceivesChanges(t *testing.T) {
	s := New()
	var got []Event
	s.Subscribe("a", func(ev Event) { got = append(got, ev) })

	s.Set("a", 1)
	s.Set("a", 2)
	s.Set("b", 3) // different key, not delivered
	s.Delete("a")

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[1].Value != 2 || got[1].Old != 1 {
		t.Errorf("event[1] = %+v", got[1])
	}
	if !got[2].Deleted {
		t.Errorf("delete event not flagged")
	}
}

func TestSubscribeAll(t *testing.T) {
	s := New()
	count := 0
	s.SubscribeAll(func(Event) { count++ })

	s.Set("a", 1)
	s.Set("b", 2)

	if count != 2 {
		t.Errorf("catch-all got %d events, want 2", count)
	}
}

func TestDeleteAbsentKeyIsSilent(t *testing.T) {
	s := New()
	fired := false
	s.SubscribeAll(func(Event) { fired = true })
	s.Delete("missing")
	if fired {
		t.Errorf("deleting an absent key must not publish")
	}
}

func TestElementStoreRoundTrip(t *testing.T) {
	e := dom.NewElement("div")
	s := NewElementStore(e)

	s.Set("count", 42)
	s.Set("label", "hi")
	s.Set("on", true)

	if e.Attr("data-count") != "42" {
		t.Errorf("attribute not written: %q", e.Attr("data-count"))
	}
	if v, _ := s.Get("count"); v != float64(42) {
		t.Errorf("Get(count) = %v, want 42 (parsed number)", v)
	}
	if v, _ := s.Get("on"); v != true {
		t.Errorf("Get(on) = %v, want true", v)
	}
	if v, _ := s.Get("label"); v != "hi" {
		t.Errorf("Get(label) = %v", v)
	}
}

func TestElementStoreNilElement(t *testing.T) {
	s := NewElementStore(nil)
	s.Set("a", 1)
	if v, ok := s.Get("a"); !ok || v != 1 {
		t.Errorf("nil-element store must fall back to map backing")
	}
}

func TestNilStoreSafe(t *testing.T) {
	var s *Store
	s.Set("a", 1)
	s.Delete("a")
	s.Subscribe("a", func(Event) {})
	if _, ok := s.Get("a"); ok {
		t.Errorf("nil store Get should miss")
	}
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/el"
	"github.com/doeixd/dom/pkg/bind"
	"github.com/doeixd/dom/pkg/list"
	"github.com/doeixd/dom/pkg/live"
)

// counterPage is a minimal live page: two buttons patch a bound text node.
func counterPage(s *live.Session) *dom.Element {
	count := 0

	root := el.Div(
		el.Class("counter"),
		el.H1(el.Text("Counter")),
		el.P(el.Ref("count"), el.Text("0")),
		el.Button(el.Ref("dec"), el.Text("-")),
		el.Button(el.Ref("inc"), el.Text("+")),
	)

	b := bind.New(dom.Refs(root), bind.Schema{"count": bind.Text})

	update := func() {
		b.Update(map[string]any{"count": count})
	}
	s.OnEvent(b.Refs()["inc"], "click", func(live.Event) { count++; update() })
	s.OnEvent(b.Refs()["dec"], "click", func(live.Event) { count--; update() })

	return root
}

type todo struct {
	ID   int
	Text string
	Done bool
}

// todosPage exercises the keyed reconciler: items keep their element across
// reorders and toggles, and each re-set emits only the patches that differ.
func todosPage(s *live.Session) *dom.Element {
	var (
		nextID = 1
		todos  []todo
	)

	root := el.Div(
		el.Class("todos"),
		el.H1(el.Text("Todos")),
		el.Form(
			el.Ref("form"),
			el.Input(el.Ref("input"), el.Type("text"), el.Placeholder("What needs doing?")),
			el.Button(el.Type("submit"), el.Text("Add")),
		),
		el.Ul(el.Ref("items")),
	)

	refs := dom.Refs(root)

	var items *list.List[todo]
	refresh := func() { items.Set(todos) }

	items = list.New(refs["items"], list.Options[todo]{
		Key: func(t todo) string { return fmt.Sprintf("t%d", t.ID) },
		Render: func(t todo, _ int) *dom.Element {
			li := el.Li(
				el.Data("id", strconv.Itoa(t.ID)),
				el.Span(el.Ref("label"), el.Text(t.Text)),
				el.Button(el.Ref("toggle"), el.Text("✓")),
				el.Button(el.Ref("remove"), el.Text("✕")),
			)
			li.ToggleClass("done", t.Done)
			return li
		},
		Update: func(e *dom.Element, t todo) {
			if label := dom.Refs(e)["label"]; label != nil {
				label.SetText(t.Text)
			}
			e.ToggleClass("done", t.Done)
		},
		OnAdd: func(e *dom.Element) {
			id, _ := strconv.Atoi(e.Attr("data-id"))
			itemRefs := dom.Refs(e)
			s.OnEvent(itemRefs["toggle"], "click", func(live.Event) {
				toggleTodo(&todos, id)
				refresh()
			})
			s.OnEvent(itemRefs["remove"], "click", func(live.Event) {
				removeTodo(&todos, id)
				refresh()
			})
		},
	})

	s.OnEvent(refs["form"], "submit", func(ev live.Event) {
		text := strings.TrimSpace(ev.Value)
		if text == "" {
			return
		}
		todos = append(todos, todo{ID: nextID, Text: text})
		nextID++
		refs["input"].SetValue("")
		items.Set(todos)
	})

	items.Set(todos)
	return root
}

func toggleTodo(todos *[]todo, id int) {
	for i := range *todos {
		if (*todos)[i].ID == id {
			(*todos)[i].Done = !(*todos)[i].Done
			return
		}
	}
}

func removeTodo(todos *[]todo, id int) {
	for i := range *todos {
		if (*todos)[i].ID == id {
			*todos = append((*todos)[:i], (*todos)[i+1:]...)
			return
		}
	}
}

// staticPages returns the demo pages rendered without a session, for export.
func staticPages() map[string]*dom.Element {
	rows := []todo{
		{ID: 1, Text: "Write the docs", Done: true},
		{ID: 2, Text: "Ship it"},
	}

	ul := el.Ul()
	items := list.New(ul, list.Options[todo]{
		Key: func(t todo) string { return fmt.Sprintf("t%d", t.ID) },
		Render: func(t todo, _ int) *dom.Element {
			li := el.Li(el.Text(t.Text))
			li.ToggleClass("done", t.Done)
			return li
		},
	})
	items.Set(rows)

	return map[string]*dom.Element{
		"index": el.Div(
			el.H1(el.Text("dom")),
			el.P(el.Text("Reactive element trees for Go.")),
			ul,
		),
	}
}

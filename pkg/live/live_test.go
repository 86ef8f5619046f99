package live

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/el"
)

func testServer() *Server {
	return NewServer(&Config{
		Registry: prometheus.NewRegistry(),
	})
}

func TestServePageRendersHTML(t *testing.T) {
	srv := testServer()
	srv.Page("home", func(*Session) *dom.Element {
		return el.Div(el.H1("Welcome"))
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/home")
	if err != nil {
		t.Fatalf("GET /home: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "<h1") || !strings.Contains(string(body), "Welcome") {
		t.Errorf("page body missing rendered tree: %s", body)
	}
	if !strings.Contains(string(body), "data-nid=") {
		t.Errorf("page body missing node identities")
	}
	if !strings.Contains(string(body), "/client.js") {
		t.Errorf("page body missing client script")
	}
}

func TestUnknownPage404(t *testing.T) {
	srv := testServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := testServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}

func TestSessionEventDispatch(t *testing.T) {
	srv := testServer()
	sess := newSession(srv, "test", nil)

	var clicked *dom.Element
	sess.mount(func(s *Session) *dom.Element {
		count := el.Span("0")
		btn := el.Button("+1")
		root := el.Div(count, btn)
		clicked = btn
		return root
	})
	sess.OnEvent(clicked, "click", func(Event) {
		sess.Root().ChildAt(0).SetText("1")
	})
	sess.pending = nil

	sess.handleEvent(Event{NID: clicked.NID(), Name: "click"})

	if got := sess.Root().ChildAt(0).TextContent(); got != "1" {
		t.Errorf("handler did not run: count = %q", got)
	}
}

func TestHandlerRegisteredDuringPageBuild(t *testing.T) {
	srv := testServer()
	sess := newSession(srv, "test", nil)

	var btn *dom.Element
	ran := false
	sess.mount(func(s *Session) *dom.Element {
		btn = el.Button("go")
		s.OnEvent(btn, "click", func(Event) { ran = true })
		return el.Div(btn)
	})

	sess.handleEvent(Event{NID: btn.NID(), Name: "click"})

	if !ran {
		t.Errorf("handler registered before mount completed did not fire")
	}
}

func TestSessionBuffersMutationsAsPatches(t *testing.T) {
	srv := testServer()
	sess := newSession(srv, "test", nil)
	sess.mount(func(*Session) *dom.Element {
		return el.Div(el.Span("x"))
	})
	sess.pending = nil

	span := sess.Root().ChildAt(0)
	span.SetText("y")
	span.SetAttr("class", "hot")

	if len(sess.pending) != 2 {
		t.Fatalf("pending = %d patches, want 2", len(sess.pending))
	}
	if sess.pending[0].Op != "SetText" || sess.pending[0].Value != "y" {
		t.Errorf("patch[0] = %+v", sess.pending[0])
	}
	if sess.pending[1].Op != "SetAttr" || sess.pending[1].Key != "class" {
		t.Errorf("patch[1] = %+v", sess.pending[1])
	}
	if sess.pending[0].NID != span.NID() {
		t.Errorf("patch targets wrong node")
	}
}

func TestInsertPatchCarriesRenderedHTML(t *testing.T) {
	srv := testServer()
	sess := newSession(srv, "test", nil)
	sess.mount(func(*Session) *dom.Element { return el.Ul() })
	sess.pending = nil

	sess.Root().AppendChild(el.Li("new"))

	if len(sess.pending) != 1 {
		t.Fatalf("pending = %d patches, want 1", len(sess.pending))
	}
	p := sess.pending[0]
	if p.Op != "InsertNode" {
		t.Fatalf("op = %q", p.Op)
	}
	if !strings.Contains(p.HTML, "<li") || !strings.Contains(p.HTML, "new") {
		t.Errorf("insert patch HTML = %q", p.HTML)
	}
	if !strings.Contains(p.HTML, "data-nid=") {
		t.Errorf("inserted subtree must carry identities: %q", p.HTML)
	}
}

func TestHandlerPanicRecovered(t *testing.T) {
	srv := testServer()
	sess := newSession(srv, "test", nil)

	var btn *dom.Element
	sess.mount(func(*Session) *dom.Element {
		btn = el.Button("boom")
		return el.Div(btn)
	})
	sess.OnEvent(btn, "click", func(Event) {
		panic("handler bug")
	})

	// Must not propagate.
	sess.handleEvent(Event{NID: btn.NID(), Name: "click"})
}

func TestUnhandledEventIsSilent(t *testing.T) {
	srv := testServer()
	sess := newSession(srv, "test", nil)
	sess.mount(func(*Session) *dom.Element { return el.Div() })

	sess.handleEvent(Event{NID: "n999", Name: "click"}) // no handler registered
}

func TestPageRegistrationGuards(t *testing.T) {
	srv := testServer()
	srv.Page("", func(*Session) *dom.Element { return el.Div() })
	srv.Page("x", nil)
	if srv.page("") != nil || srv.page("x") != nil {
		t.Errorf("invalid registrations accepted")
	}
}

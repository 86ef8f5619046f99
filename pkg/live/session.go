package live

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/doeixd/dom"
)

// EventHandler receives one client event.
type EventHandler func(ev Event)

// Session is one connected client: a document, the mutation buffer feeding
// the patch stream, and the event handler registry. Handlers run one at a
// time; the document is only touched from the session's read loop.
type Session struct {
	id     string
	page   string
	doc    *dom.Document
	conn   *websocket.Conn
	server *Server
	logger *slog.Logger

	mu       sync.Mutex
	handlers map[*dom.Element]map[string]EventHandler
	pending  []Patch
	closed   bool
}

func newSessionID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "s-fallback"
	}
	return "s-" + hex.EncodeToString(b[:])
}

func newSession(server *Server, page string, conn *websocket.Conn) *Session {
	s := &Session{
		id:       newSessionID(),
		page:     page,
		conn:     conn,
		server:   server,
		handlers: make(map[*dom.Element]map[string]EventHandler),
	}
	if server != nil {
		s.logger = server.logger.With("session", s.id, "page", page)
	} else {
		s.logger = slog.Default()
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Document returns the session's document.
func (s *Session) Document() *dom.Document { return s.doc }

// Root returns the session's document root.
func (s *Session) Root() *dom.Element { return s.doc.Root() }

// OnEvent registers a handler for one event name on an element. Handlers
// are resolved at dispatch time, so registration works both while the page
// is being built and after mounting.
func (s *Session) OnEvent(e *dom.Element, event string, fn EventHandler) {
	if s == nil || e == nil || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.handlers[e]
	if m == nil {
		m = make(map[string]EventHandler)
		s.handlers[e] = m
	}
	m[event] = fn
}

// mount builds the page tree, wraps it in a document, and wires the
// mutation log into the patch buffer.
func (s *Session) mount(fn PageFunc) {
	root := fn(s)
	s.doc = dom.NewDocument(root)
	s.doc.Observe(func(m dom.Mutation) {
		s.pending = append(s.pending, encodePatch(m))
	})
}

// handleEvent dispatches one client event and flushes the mutations it
// caused as a single patch frame. Handler panics are recovered, logged,
// and counted; the session survives them.
func (s *Session) handleEvent(ev Event) {
	target := s.doc.ByNID(ev.NID)

	s.mu.Lock()
	fn := s.handlers[target][ev.Name]
	s.mu.Unlock()

	status := "ok"
	if fn == nil {
		status = "unhandled"
		if s.server != nil {
			s.server.metrics.eventsTotal.WithLabelValues(s.page, status).Inc()
		}
		return
	}

	_, span := tracer.Start(context.Background(), "live.event",
		trace.WithAttributes(
			attribute.String("dom.page", s.page),
			attribute.String("dom.event", ev.Name),
			attribute.String("dom.nid", ev.NID),
		))

	start := time.Now()
	func() {
		defer func() {
			if r := recover(); r != nil {
				status = "panic"
				s.logger.Error("handler panic", "event", ev.Name, "nid", ev.NID, "panic", r)
				span.SetStatus(codes.Error, "handler panic")
				if s.server != nil {
					s.server.metrics.handlerPanics.Inc()
				}
			}
		}()
		fn(ev)
	}()
	span.End()

	if s.server != nil {
		s.server.metrics.eventsTotal.WithLabelValues(s.page, status).Inc()
		s.server.metrics.eventDuration.WithLabelValues(s.page).Observe(time.Since(start).Seconds())
	}

	s.flushPatches()
}

// flushPatches sends the buffered mutations as one frame.
func (s *Session) flushPatches() {
	patches := s.pending
	s.pending = nil
	if len(patches) == 0 || s.conn == nil {
		return
	}
	if err := s.writeFrame(Frame{Type: "patch", Patches: patches}); err != nil {
		s.logger.Error("patch write failed", "error", err)
		s.Close()
		return
	}
	if s.server != nil {
		s.server.metrics.patchesSent.Add(float64(len(patches)))
	}
}

func (s *Session) writeFrame(f Frame) error {
	if s.server != nil {
		s.conn.SetWriteDeadline(time.Now().Add(s.server.config.WriteTimeout))
	}
	return s.conn.WriteJSON(f)
}

// readLoop consumes frames until the connection drops.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		if s.server != nil {
			s.conn.SetReadDeadline(time.Now().Add(s.server.config.ReadTimeout))
		}
		var f Frame
		if err := s.conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		switch f.Type {
		case "event":
			if f.Event != nil {
				s.handleEvent(*f.Event)
			}
		case "ping":
			// Keepalive only; the read deadline reset above is the point.
		default:
			s.logger.Warn("unknown frame type", "type", f.Type)
		}
	}
}

// Close tears the session down. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if s.conn != nil {
		s.conn.Close()
	}
	if s.server != nil {
		s.server.dropSession(s)
	}
}

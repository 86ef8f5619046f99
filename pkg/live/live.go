package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/doeixd/dom"
	"github.com/doeixd/dom/pkg/render"
)

var tracer = otel.Tracer("github.com/doeixd/dom/pkg/live")

// PageFunc builds the root element for one session and registers event
// handlers on it via Session.OnEvent.
type PageFunc func(s *Session) *dom.Element

// Config configures the live server.
type Config struct {
	// Address is the listen address (default ":3000").
	Address string

	// ReadTimeout bounds waiting for a client frame (default 60s).
	ReadTimeout time.Duration

	// WriteTimeout bounds one outgoing write (default 10s).
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// CheckOrigin validates WebSocket upgrade origins. Default accepts
	// same-host requests only.
	CheckOrigin func(r *http.Request) bool

	// Logger defaults to slog.Default.
	Logger *slog.Logger

	// Registry receives the server's Prometheus instruments.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

func (c *Config) fillDefaults() {
	if c.Address == "" {
		c.Address = ":3000"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
		}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Registry == nil {
		c.Registry = prometheus.DefaultRegisterer
	}
}

// Server serves pages over HTTP and their mutation streams over WebSocket.
type Server struct {
	config   *Config
	logger   *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader
	metrics  *metrics
	renderer *render.Renderer

	httpServer *http.Server

	mu       sync.Mutex
	pages    map[string]PageFunc
	sessions map[*Session]struct{}
}

// NewServer creates a live server. config may be nil.
func NewServer(config *Config) *Server {
	if config == nil {
		config = &Config{}
	}
	config.fillDefaults()

	s := &Server{
		config:   config,
		logger:   config.Logger,
		metrics:  newMetrics(config.Registry),
		renderer: render.New(render.Config{IncludeNIDs: true}),
		pages:    make(map[string]PageFunc),
		sessions: make(map[*Session]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	metricsHandler := promhttp.Handler()
	if g, ok := config.Registry.(prometheus.Gatherer); ok {
		metricsHandler = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	r.Handle("/metrics", metricsHandler)
	r.Get("/client.js", s.handleClientJS)
	r.Get("/live/{page}", s.handleWS)
	r.Get("/{page}", s.handlePage)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		s.servePage(w, req, "index")
	})
	s.router = r

	return s
}

// Page registers a page under its path segment. Registering "index" also
// serves "/".
func (s *Server) Page(name string, fn PageFunc) {
	if name == "" || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[name] = fn
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("live server listening", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	open := make([]*Session, 0, len(s.sessions))
	for sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()
	for _, sess := range open {
		sess.Close()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("live server stopped")
	return nil
}

func (s *Server) page(name string) PageFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages[name]
}

// handlePage serves the initial HTML for a page, including the client
// script that opens the mutation stream.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, chi.URLParam(r, "page"))
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, name string) {
	fn := s.page(name)
	if fn == nil {
		http.NotFound(w, r)
		return
	}

	// A detached preview session: event handlers registered here are
	// discarded; the WebSocket session re-mounts with live ones.
	sess := newSession(s, name, nil)
	sess.mount(fn)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>%s</title></head><body>\n", name)
	if err := s.renderer.Write(w, sess.Root()); err != nil {
		s.logger.Error("render failed", "page", name, "error", err)
		return
	}
	fmt.Fprintf(w, "\n<script>window.__DOM_PAGE=%q;</script><script src=\"/client.js\"></script></body></html>\n", name)
}

// handleWS upgrades the connection and runs a live session for the page.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	fn := s.page(name)
	if fn == nil {
		http.NotFound(w, r)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "page", name, "error", err)
		return
	}

	sess := newSession(s, name, conn)
	sess.mount(fn)
	sess.pending = nil // mount-time mutations are covered by the init frame

	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()
	s.metrics.activeSessions.Inc()
	s.metrics.sessionsTotal.Inc()

	if err := sess.writeFrame(Frame{Type: "init", HTML: s.renderer.String(sess.Root())}); err != nil {
		s.logger.Error("init frame failed", "error", err)
		sess.Close()
		return
	}

	sess.logger.Info("session connected")
	sess.readLoop()
}

func (s *Server) dropSession(sess *Session) {
	s.mu.Lock()
	_, present := s.sessions[sess]
	delete(s.sessions, sess)
	s.mu.Unlock()
	if present {
		s.metrics.activeSessions.Dec()
		sess.logger.Info("session closed")
	}
}

func (s *Server) handleClientJS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprint(w, clientJS)
}

// Package inspect serves a live view of a cell graph over HTTP and
// WebSocket. It splits into two worlds: watch bookkeeping and sampling
// run on the goroutine that owns the cells, while HTTP handlers only
// ever read atomically published snapshots. Flush is the bridge
// between them.
package inspect

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server watches cells and serves their snapshots.
type Server struct {
	log     zerolog.Logger
	title   string
	metrics http.Handler

	hub    *hub
	router chi.Router

	// owner goroutine only
	watches map[string]*watched
	order   []string
	latest  map[string]Snapshot
	seq     uint64

	published atomic.Value // []Snapshot
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithTitle sets the index page title.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

func NewServer(opts ...Option) *Server {
	s := &Server{
		log:     zerolog.Nop(),
		title:   "cell inspector",
		watches: map[string]*watched{},
		latest:  map[string]Snapshot{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newHub(s.log)
	s.published.Store([]Snapshot(nil))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(Tracing("inspect"))
	r.Get("/", s.handleIndex)
	r.Get("/cells.json", s.handleCells)
	r.Get("/ws", s.hub.handle)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	s.router = r
	return s
}

// Handler returns the server's router for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Clients reports the number of connected websocket clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

// Close disconnects all websocket clients.
func (s *Server) Close() {
	s.hub.closeAll()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	WriteIndexPage(w, s.title)
}

func (s *Server) handleCells(w http.ResponseWriter, r *http.Request) {
	snaps, _ := s.published.Load().([]Snapshot)
	if snaps == nil {
		snaps = []Snapshot{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snaps); err != nil {
		s.log.Debug().Err(err).Msg("snapshot encode failed")
	}
}

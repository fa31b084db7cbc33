// Package http exposes the charting pipeline as a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cdfmlr/goflowchart"
	"github.com/cdfmlr/goflowchart/internal/adapters/redis"
	"github.com/cdfmlr/goflowchart/internal/logging"
	"github.com/cdfmlr/goflowchart/internal/presentation/html"
)

// RenderRequest is the POST /render body.
type RenderRequest struct {
	Code       string `json:"code"`
	Field      string `json:"field,omitempty"`
	Inner      *bool  `json:"inner,omitempty"`
	Simplify   *bool  `json:"simplify,omitempty"`
	CondsAlign bool   `json:"conds_align,omitempty"`

	// Format selects the response body: "dsl" (default, JSON) or "html"
	// (a standalone page rendering the diagram).
	Format string `json:"format,omitempty"`
}

// RenderResponse is the POST /render JSON reply.
type RenderResponse struct {
	DSL    string `json:"dsl"`
	Cached bool   `json:"cached"`
}

// Server handles the HTTP API backed by the library pipeline.
type Server struct {
	logger *slog.Logger
	cache  *redis.Cache
	reg    *prometheus.Registry
	m      *metrics
}

// ServerOption configures the handler.
type ServerOption func(*Server)

// WithCache enables the Redis render cache.
func WithCache(cache *redis.Cache) ServerOption {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the API router: POST /render, GET /healthz, GET /info
// and GET /metrics. Each handler owns its metrics registry, so independent
// handlers never collide on collector registration.
func NewHandler(opts ...ServerOption) http.Handler {
	s := &Server{
		logger: logging.NewNop(),
		reg:    prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.m = newMetrics(s.reg)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/render", s.Render)
	r.Get("/healthz", s.Health)
	r.Get("/info", s.Info)
	r.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	return r
}

type metrics struct {
	renders   *prometheus.CounterVec
	cacheHits prometheus.Counter
	duration  prometheus.Histogram
}

func newMetrics(reg *prometheus.Registry) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goflowchart",
			Subsystem: "http",
			Name:      "renders_total",
			Help:      "Render requests by outcome.",
		}, []string{"outcome"}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "goflowchart",
			Subsystem: "http",
			Name:      "cache_hits_total",
			Help:      "Render requests served from the cache.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "goflowchart",
			Subsystem: "http",
			Name:      "render_duration_seconds",
			Help:      "Render request handling time.",
		}),
	}
}

// Render handles the POST /render request.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(s.m.duration)
	defer timer.ObserveDuration()

	var body RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.m.renders.WithLabelValues("bad_request").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Code == "" {
		s.m.renders.WithLabelValues("bad_request").Inc()
		http.Error(w, "Field 'code' is required", http.StatusBadRequest)
		return
	}

	inner := body.Inner == nil || *body.Inner
	simplify := body.Simplify == nil || *body.Simplify

	key := redis.Key(body.Code,
		body.Field,
		strconv.FormatBool(inner),
		strconv.FormatBool(simplify),
		strconv.FormatBool(body.CondsAlign),
	)

	dsl, cached := s.lookup(r, key)
	if !cached {
		var err error
		dsl, err = goflowchart.FromCode(body.Code,
			goflowchart.WithField(body.Field),
			goflowchart.WithInner(inner),
			goflowchart.WithSimplify(simplify),
			goflowchart.WithCondsAlign(body.CondsAlign),
			goflowchart.WithLogger(s.logger),
		)
		if err != nil {
			s.m.renders.WithLabelValues("unprocessable").Inc()
			http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusUnprocessableEntity)
			return
		}
		s.store(r, key, dsl)
	}
	s.m.renders.WithLabelValues("ok").Inc()

	if body.Format == "html" {
		page, err := html.Page("flowchart", dsl)
		if err != nil {
			http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write(page)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RenderResponse{DSL: dsl, Cached: cached}); err != nil {
		s.logger.Error("render encode failed", "error", err)
	}
}

func (s *Server) lookup(r *http.Request, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	dsl, err := s.cache.Get(r.Context(), key)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("cache lookup failed", "error", err)
		}
		return "", false
	}
	s.m.cacheHits.Inc()
	return dsl, true
}

func (s *Server) store(r *http.Request, key, dsl string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(r.Context(), key, dsl); err != nil {
		s.logger.Warn("cache store failed", "error", err)
	}
}

// Health handles the GET /healthz request.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Info handles the GET /info request.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"app":     "goflowchart-http",
		"version": goflowchart.Version,
	})
}

// Package http exposes the automaton registry and classifier as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/pkg/compiler"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/schema"
)

// MaxDescriptionBytes bounds PUT bodies.
const MaxDescriptionBytes = 1 << 20

// MaxRequestBytes bounds JSON request bodies.
const MaxRequestBytes = 1 << 20

// Engine defines the interface for the registry and classifier core.
// *dfa.Engine satisfies it.
type Engine interface {
	Register(ctx context.Context, name, description string) (*domain.Automaton, error)
	Lookup(ctx context.Context, name string) (*domain.Automaton, error)
	Remove(ctx context.Context, name string) error
	Names(ctx context.Context) ([]string, error)
	ClassifyAll(ctx context.Context, a *domain.Automaton, inputs []string) ([]domain.Result, error)
	Trace(ctx context.Context, a *domain.Automaton, input string) domain.Run
}

// Server holds the HTTP handlers.
type Server struct {
	Engine  Engine
	Logger  *slog.Logger
	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// ClassifyRequest is the body of POST /automata/{name}/classify.
type ClassifyRequest struct {
	Inputs []string `json:"inputs"`
}

// TraceRequest is the body of POST /automata/{name}/trace.
type TraceRequest struct {
	Input string `json:"input"`
}

// ErrorResponse is returned for every failed request. Kind, Tokens and Line
// are set when a description failed to load.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Kind   string   `json:"kind,omitempty"`
	Tokens []string `json:"tokens,omitempty"`
	Line   int      `json:"line,omitempty"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine: engine,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.ListAutomata)
		r.Route("/{name}", func(r chi.Router) {
			r.Put("/", s.PutAutomaton)
			r.Get("/", s.GetAutomaton)
			r.Delete("/", s.DeleteAutomaton)
			r.Post("/classify", s.Classify)
			r.Post("/trace", s.Trace)
			r.Get("/graph", s.GetGraph)
		})
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "dfa-http",
		"version": strings.TrimSpace(dfa.Version),
	})
}

// ListAutomata handles the GET /automata request.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.Names(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, names)
}

// PutAutomaton handles the PUT /automata/{name} request. The body is the text description.
func (s *Server) PutAutomaton(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDescriptionBytes))
	if err != nil {
		s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := s.Engine.Register(r.Context(), chi.URLParam(r, "name"), string(body)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetAutomaton handles the GET /automata/{name} request.
// The model is JSON by default, YAML or the text description on request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}

	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "yaml"):
		data, err := schema.MarshalYAML(a)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(data)
	case strings.Contains(accept, "text/plain"):
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, compiler.Format(a))
	default:
		s.writeJSON(w, http.StatusOK, schema.FromAutomaton(a))
	}
}

// DeleteAutomaton handles the DELETE /automata/{name} request.
func (s *Server) DeleteAutomaton(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Remove(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Classify handles the POST /automata/{name}/classify request.
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	var body ClassifyRequest
	if !s.decode(w, r, &body) {
		return
	}
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}

	results, err := s.Engine.ClassifyAll(r.Context(), a, body.Inputs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.Result{}
	}
	s.writeJSON(w, http.StatusOK, results)
}

// Trace handles the POST /automata/{name}/trace request.
func (s *Server) Trace(w http.ResponseWriter, r *http.Request) {
	var body TraceRequest
	if !s.decode(w, r, &body) {
		return
	}
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.Engine.Trace(r.Context(), a, body.Input))
}

// decode reads a bounded JSON body into v, answering 413 or 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBytes)).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
		return false
	}
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	return false
}

// GetGraph handles the GET /automata/{name}/graph request.
// With ?input=..., the states visited by that input are highlighted.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var overlay *graph.GraphOverlay
	if q := r.URL.Query(); q.Has("input") {
		overlay = graph.OverlayFromRun(s.Engine.Trace(r.Context(), a, q.Get("input")))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(a, overlay))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*domain.Automaton, bool) {
	a, err := s.Engine.Lookup(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return a, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// writeError maps engine errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if le, ok := domain.AsLoadError(err); ok {
		s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  err.Error(),
			Kind:   string(le.Kind),
			Tokens: le.Tokens,
			Line:   le.Line,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAutomatonNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dfa.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		status = 499
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: fmt.Sprint(err)})
}

// Package httpapi wires the HTTP surface of the player service.
// It keeps handlers thin, delegating the player rules to the service layer.
package httpapi

import (
    "log/slog"
    "net/http"

    chi "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/go-chi/cors"

    "github.com/tinoosan/players/internal/service/players"
)

// Server wires handlers and middleware using Chi.
type Server struct {
    svc  players.Service
    repo players.Repo
    log  *slog.Logger
    rt   *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request logging, panic recovery and the player service.
func New(repo players.Repo, writer players.Writer, logger *slog.Logger, opts ...players.Option) *Server {
    if logger == nil { logger = slog.Default() }
    r := chi.NewRouter()
    r.Use(cors.Handler(cors.Options{
        AllowedOrigins: []string{"*"},
        AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
        AllowedHeaders: []string{"*"},
        ExposedHeaders: []string{"X-Request-Id"},
        MaxAge:         300,
    }))
    r.Use(chimw.RequestID)
    r.Use(observe(logger))
    r.Use(recoverer(logger))

    svcOpts := append([]players.Option{players.WithLogger(logger)}, opts...)
    s := &Server{
        svc:  players.New(repo, writer, svcOpts...),
        repo: repo,
        log:  logger,
        rt:   r,
    }
    s.routes()
    return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public endpoints. Static paths are matched before /{id}.
func (s *Server) routes() {
    s.rt.Get("/health", s.health)
    s.rt.Get("/readyz", s.readyz)
    s.rt.Method(http.MethodGet, "/metrics", metricsHandler())

    s.rt.Get("/", s.listPlayers)
    s.rt.With(s.decodeUpdate()).Post("/", s.createPlayer)
    s.rt.Get("/{id}", s.getPlayer)
    s.rt.With(s.decodeUpdate()).Put("/{id}", s.replacePlayer)
    s.rt.With(s.decodeUpdate()).Patch("/{id}", s.patchPlayer)
    s.rt.Delete("/{id}", s.deletePlayer)
}

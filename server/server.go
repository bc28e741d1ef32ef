package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/utils"
	"golang.org/x/net/websocket"
)

// Server exposes the game actor over HTTP and websocket.
type Server struct {
	r            *chi.Mux
	engine       *bollywood.Engine
	gameActorPID *bollywood.PID
	cfg          utils.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(engine *bollywood.Engine, gameActorPID *bollywood.PID, cfg utils.Config) *Server {
	s := &Server{
		r:            chi.NewRouter(),
		engine:       engine,
		gameActorPID: gameActorPID,
		cfg:          cfg,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Get("/health", s.HandleHealth())
		r.Get("/state", s.HandleGetState())
		r.Get("/ascii", s.HandleGetASCII())
		r.Post("/reset", s.HandleReset())
	})

	// Websocket connections are long-lived and stay outside the timeout group.
	s.r.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// GetEngine returns the actor engine.
func (s *Server) GetEngine() *bollywood.Engine { return s.engine }

// GetGameActorPID returns the PID of the game actor.
func (s *Server) GetGameActorPID() *bollywood.PID { return s.gameActorPID }

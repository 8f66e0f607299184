package server

import (
	"net/http"

	"contagion/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	logger   *zap.Logger
	cfg      config.Config
	handlers *Handlers
}

func New(cfg config.Config, logger *zap.Logger) *Server {
	return &Server{
		logger:   logger,
		cfg:      cfg,
		handlers: NewHandlers(cfg, logger),
	}
}

func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/games", s.handlers.HandleCreateGame)
	r.Get("/api/qr", s.handlers.HandleQR)
	r.Get("/api/player-id", s.handlers.HandlePlayerID)
	r.Get("/ws", s.handlers.HandleWS)

	s.logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return http.ListenAndServe(s.cfg.HTTPAddr, r)
}

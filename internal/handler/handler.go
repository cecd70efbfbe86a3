package handler

import (
	"context"
	"net/http"

	"wordbook/internal/config"
	"wordbook/internal/middleware"
	"wordbook/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether storage is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the glossary HTTP API
type Handler struct {
	wordService *service.WordService
	db          Pinger
	cfg         config.ServerConfig
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	wordService *service.WordService,
	db Pinger,
	cfg config.ServerConfig,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		wordService: wordService,
		db:          db,
		cfg:         cfg,
		logger:      logger,
	}
}

// Routes builds the router with all handlers and middleware registered
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(middleware.CORS(h.cfg))

	r.Get("/healthz", h.handleHealth)

	r.Get("/api/words", h.handleListWords)
	r.Post("/api/words", h.handleAddWord)

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok"))
}

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

// RecentTexts exposes the recency log for inspection.
type RecentTexts interface {
	Recent(ctx context.Context, kind string) ([]string, error)
}

// SessionCounter reports how many user sessions are held in memory.
type SessionCounter interface {
	Len() int
}

type Server struct {
	srv *http.Server
}

func NewServer(addr string, recency RecentTexts, sessions SessionCounter) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(recency, sessions),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

func NewRouter(recency RecentTexts, sessions SessionCounter) http.Handler {
	h := &handler{recency: recency, sessions: sessions}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Get("/recency/{kind}", h.recent)
	return r
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting health server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

type handler struct {
	recency  RecentTexts
	sessions SessionCounter
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  core.AppVersion,
		"sessions": h.sessions.Len(),
	})
}

func (h *handler) recent(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind != core.KindTranslation && kind != core.KindDictate {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown kind"})
		return
	}

	texts, err := h.recency.Recent(r.Context(), kind)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Str("kind", kind).Msg("failed to read recency log")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "recency log unavailable"})
		return
	}
	if texts == nil {
		texts = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "texts": texts})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

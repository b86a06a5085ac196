package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/chatstat/internal/processor"
	"github.com/MikeSquared-Agency/chatstat/internal/store"
)

// TranscriptLister lists stored exports.
type TranscriptLister interface {
	ListTranscripts(ctx context.Context, limit int) ([]store.TranscriptSummary, error)
}

// Options configure the HTTP API.
type Options struct {
	Port           int
	APIToken       string
	MaxUploadBytes int64
	// Transcripts enables the stored transcript routes when set.
	Transcripts TranscriptLister
}

type Server struct {
	router      *chi.Mux
	maxUpload   int64
	processor   *processor.Processor
	transcripts TranscriptLister
	logger      *slog.Logger
	httpServer  *http.Server
}

func NewServer(opts Options, proc *processor.Processor, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:      router,
		maxUpload:   opts.MaxUploadBytes,
		processor:   proc,
		transcripts: opts.Transcripts,
		logger:      logger,
	}
	if s.maxUpload <= 0 {
		s.maxUpload = 20 << 20
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/chatstat/status", s.status)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(opts.APIToken))
		r.Post("/analyze", s.analyzeUpload)
		r.Post("/users", s.usersUpload)
		if s.transcripts != nil {
			r.Get("/transcripts", s.listTranscripts)
			r.Get("/transcripts/{id}/report", s.transcriptReport)
		}
	})

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("API server starting", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agent":       "chatstat",
		"status":      "ready",
		"transcripts": s.transcripts != nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

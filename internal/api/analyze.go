package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/chatstat/internal/hermes"
	"github.com/MikeSquared-Agency/chatstat/internal/processor"
	"github.com/MikeSquared-Agency/chatstat/internal/report"
	"github.com/MikeSquared-Agency/chatstat/internal/store"
	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

// analyzeUpload handles POST /api/v1/analyze. The export is either the
// multipart field "file" or the raw request body; ?user= selects a sender and
// ?format= picks json (default), yaml or text.
func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	content, name, err := s.readUpload(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.processor.Analyze(r.Context(), hermes.TranscriptSubmitted{
		RequestID: r.Header.Get("X-Request-Id"),
		Inline:    true,
		Content:   transcript.Decode(content),
		User:      r.URL.Query().Get("user"),
		Source:    name,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}
	s.writeReport(w, r, rep)
}

// usersUpload handles POST /api/v1/users: the sender picker for an export.
func (s *Server) usersUpload(w http.ResponseWriter, r *http.Request) {
	content, _, err := s.readUpload(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	set := transcript.Parse(transcript.Decode(content))
	writeJSON(w, http.StatusOK, map[string]any{
		"records": set.Len(),
		"users":   set.Users(),
	})
}

// listTranscripts handles GET /api/v1/transcripts.
func (s *Server) listTranscripts(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	list, err := s.transcripts.ListTranscripts(r.Context(), limit)
	if err != nil {
		s.logger.Error("list transcripts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list transcripts failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transcripts": list, "count": len(list)})
}

// transcriptReport handles GET /api/v1/transcripts/{id}/report.
func (s *Server) transcriptReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.processor.Analyze(r.Context(), hermes.TranscriptSubmitted{
		RequestID:    r.Header.Get("X-Request-Id"),
		TranscriptID: chi.URLParam(r, "id"),
		User:         r.URL.Query().Get("user"),
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "transcript not found")
		return
	case errors.Is(err, processor.ErrInvalidID), errors.Is(err, processor.ErrNoSource):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}
	s.writeReport(w, r, rep)
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("read upload: %w", err)
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", fmt.Errorf("read upload: %w", err)
		}
		return data, header.Filename, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return data, r.URL.Query().Get("name"), nil
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, rep *report.Report) {
	format := r.URL.Query().Get("format")
	switch format {
	case "", report.FormatJSON:
		writeJSON(w, http.StatusOK, rep)
	case report.FormatYAML:
		w.Header().Set("Content-Type", "application/yaml")
		_ = report.Write(w, rep, report.FormatYAML)
	case report.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_ = report.Write(w, rep, report.FormatText)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
	}
}

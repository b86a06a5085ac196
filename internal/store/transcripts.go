package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Transcript is a chat export kept by the upload service. Content holds the
// raw bytes as uploaded; decoding happens in the parser.
type Transcript struct {
	ID        uuid.UUID
	Title     string
	Content   []byte
	CreatedAt time.Time
}

// GetTranscript loads a stored export. chatstat only reads this table.
func (s *Store) GetTranscript(ctx context.Context, id uuid.UUID) (*Transcript, error) {
	var t Transcript
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, content, created_at
		FROM transcripts
		WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title, &t.Content, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	return &t, nil
}

// TranscriptSummary is a listing row without the content.
type TranscriptSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTranscripts returns the most recent exports first.
func (s *Store) ListTranscripts(ctx context.Context, limit int) ([]TranscriptSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, octet_length(content), created_at
		FROM transcripts
		ORDER BY created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var out []TranscriptSummary
	for rows.Next() {
		var ts TranscriptSummary
		if err := rows.Scan(&ts.ID, &ts.Title, &ts.Size, &ts.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

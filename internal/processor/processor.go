package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/chatstat/internal/hermes"
	"github.com/MikeSquared-Agency/chatstat/internal/report"
	"github.com/MikeSquared-Agency/chatstat/internal/store"
	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

// handlerTimeout bounds the work done for one submitted transcript.
const handlerTimeout = 30 * time.Second

// ErrNoSource is returned for a request that carries neither content nor a
// transcript id.
var ErrNoSource = errors.New("request has neither content nor transcript_id")

// ErrInvalidID is returned when transcript_id is not a UUID.
var ErrInvalidID = errors.New("invalid transcript id")

// TranscriptSource loads stored exports.
type TranscriptSource interface {
	GetTranscript(ctx context.Context, id uuid.UUID) (*store.Transcript, error)
}

// Publisher sends events to the bus.
type Publisher interface {
	Publish(subject string, data any) error
}

// Notifier announces finished reports to humans.
type Notifier interface {
	PostReport(ctx context.Context, r *report.Report) (string, error)
}

// Processor runs submitted transcripts through parsing and analysis.
type Processor struct {
	builder  *report.Builder
	source   TranscriptSource
	bus      Publisher
	notifier Notifier
	logger   *slog.Logger
}

// New creates a processor. source, bus and notifier may be nil: without a
// source only inline content is accepted, without a bus results are only
// returned, without a notifier nothing is posted.
func New(b *report.Builder, source TranscriptSource, bus Publisher, notifier Notifier, logger *slog.Logger) *Processor {
	return &Processor{
		builder:  b,
		source:   source,
		bus:      bus,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleTranscriptSubmitted is the NATS handler for chatstat.transcript.submitted.
func (p *Processor) HandleTranscriptSubmitted(subject string, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	var evt hermes.TranscriptSubmitted
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse transcript event", "subject", subject, "error", err)
		return
	}

	p.logger.Info("analyzing transcript",
		"request_id", evt.RequestID,
		"transcript_id", evt.TranscriptID,
		"user", evt.User,
		"inline", evt.Inline || evt.Content != "",
	)

	r, err := p.Analyze(ctx, evt)
	if err != nil {
		p.logger.Error("analysis failed", "request_id", evt.RequestID, "error", err)
		p.publish(hermes.SubjectReportFailed, hermes.ReportFailed{
			RequestID:    evt.RequestID,
			TranscriptID: evt.TranscriptID,
			Error:        err.Error(),
		})
		return
	}

	p.publish(hermes.SubjectReportReady, hermes.ReportReady{
		RequestID:    evt.RequestID,
		TranscriptID: evt.TranscriptID,
		Report:       r,
	})

	if p.notifier != nil {
		if _, err := p.notifier.PostReport(ctx, r); err != nil {
			p.logger.Warn("failed to post report summary", "report_id", r.ID, "error", err)
		}
	}

	p.logger.Info("transcript analyzed",
		"request_id", evt.RequestID,
		"report_id", r.ID,
		"records", r.Records,
		"failed_views", len(r.Failed()),
	)
}

// Analyze resolves the transcript named by evt and builds its report.
func (p *Processor) Analyze(ctx context.Context, evt hermes.TranscriptSubmitted) (*report.Report, error) {
	set, source, err := p.resolve(ctx, evt)
	if err != nil {
		return nil, err
	}
	if set.Empty() {
		p.logger.Warn("transcript has no recognizable messages", "request_id", evt.RequestID, "source", source)
	}
	return p.builder.Build(set, evt.User, source), nil
}

func (p *Processor) resolve(ctx context.Context, evt hermes.TranscriptSubmitted) (*transcript.RecordSet, string, error) {
	// Prefer the export embedded in the event payload. An empty inline export
	// is still analyzed and yields an empty report.
	if evt.Inline || evt.Content != "" {
		return transcript.Parse(evt.Content), evt.Source, nil
	}
	if evt.TranscriptID == "" {
		return nil, "", ErrNoSource
	}
	if p.source == nil {
		return nil, "", fmt.Errorf("no transcript store configured for transcript %s", evt.TranscriptID)
	}

	id, err := uuid.Parse(evt.TranscriptID)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %v", ErrInvalidID, evt.TranscriptID, err)
	}
	t, err := p.source.GetTranscript(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("load transcript %s: %w", id, err)
	}

	source := evt.Source
	if source == "" {
		source = t.Title
	}
	return transcript.Parse(transcript.Decode(t.Content)), source, nil
}

func (p *Processor) publish(subject string, payload any) {
	if p.bus == nil {
		return
	}
	if err := p.bus.Publish(subject, payload); err != nil {
		p.logger.Error("failed to publish", "subject", subject, "error", err)
	}
}

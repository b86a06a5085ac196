package hermes

import "github.com/MikeSquared-Agency/chatstat/internal/report"

// QueueGroup is the NATS queue group chatstat workers join.
const QueueGroup = "chatstat"

const (
	SubjectTranscriptSubmitted = "chatstat.transcript.submitted"
	SubjectReportReady         = "chatstat.report.ready"
	SubjectReportFailed        = "chatstat.report.failed"
	SubjectRegistered          = "chatstat.agent.registered"
)

// TranscriptSubmitted asks for an analysis. Either Content carries the export
// inline or TranscriptID names a stored transcript. Inline marks Content as
// the export even when it is empty.
type TranscriptSubmitted struct {
	RequestID    string `json:"request_id"`
	TranscriptID string `json:"transcript_id,omitempty"`
	Inline       bool   `json:"inline,omitempty"`
	Content      string `json:"content,omitempty"`
	User         string `json:"user,omitempty"`
	Source       string `json:"source,omitempty"`
}

// ReportReady carries a finished analysis.
type ReportReady struct {
	RequestID    string         `json:"request_id"`
	TranscriptID string         `json:"transcript_id,omitempty"`
	Report       *report.Report `json:"report"`
}

// ReportFailed is published when a submitted transcript could not be analyzed.
type ReportFailed struct {
	RequestID    string `json:"request_id"`
	TranscriptID string `json:"transcript_id,omitempty"`
	Error        string `json:"error"`
}

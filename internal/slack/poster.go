package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/chatstat/internal/report"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

// topWordsInSummary is how many common words the Slack summary lists.
const topWordsInSummary = 5

type Poster struct {
	token   string
	channel string
	client  *http.Client
	logger  *slog.Logger
	apiURL  string
}

func NewPoster(token, channel string, logger *slog.Logger) *Poster {
	return &Poster{
		token:   token,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:  defaultPostMessageURL,
		logger:  logger,
	}
}

// PostReport posts a short summary of a finished report and returns the
// message timestamp.
func (p *Poster) PostReport(ctx context.Context, r *report.Report) (string, error) {
	text := formatReportMessage(r)

	body, err := json.Marshal(map[string]any{
		"channel": p.channel,
		"text":    text,
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": text,
				},
			},
			{
				"type": "context",
				"elements": []map[string]any{
					{
						"type": "mrkdwn",
						"text": fmt.Sprintf("Report `%s`", r.ID),
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("slack post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		TS    string `json:"ts"`
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return "", fmt.Errorf("parse slack response: %w", err)
	}
	if !slackResp.OK {
		return "", fmt.Errorf("slack error: %s", slackResp.Error)
	}

	p.logger.Info("posted report to slack", "ts", slackResp.TS, "report_id", r.ID)
	return slackResp.TS, nil
}

func formatReportMessage(r *report.Report) string {
	var sb strings.Builder

	title := r.Source
	if title == "" {
		title = "chat export"
	}
	fmt.Fprintf(&sb, "*Chat analysis:* %s (%s)\n", title, r.User)

	if r.Empty() {
		sb.WriteString("_" + report.NoticeNoData + "_")
		return sb.String()
	}

	if r.Stats.OK() {
		s := r.Stats.Data
		fmt.Fprintf(&sb, "Messages: %d | Words: %d | Media: %d | Links: %d\n", s.Messages, s.Words, s.Media, s.Links)
	}

	if r.BusyUsers != nil && r.BusyUsers.OK() {
		sb.WriteString("\n*Most busy users*\n")
		for i, c := range r.BusyUsers.Data.Top {
			fmt.Fprintf(&sb, "%d. %s (%d)\n", i+1, c.Label, c.Count)
		}
	}

	if r.CommonWords.OK() {
		words := r.CommonWords.Data
		if len(words) > topWordsInSummary {
			words = words[:topWordsInSummary]
		}
		labels := make([]string, len(words))
		for i, w := range words {
			labels[i] = w.Label
		}
		fmt.Fprintf(&sb, "\n*Top words:* %s\n", strings.Join(labels, ", "))
	}

	if r.Emoji.OK() {
		fmt.Fprintf(&sb, "*Top emoji:* %s\n", r.Emoji.Data[0].Label)
	}

	if failed := r.Failed(); len(failed) > 0 {
		fmt.Fprintf(&sb, "\n_Views that failed: %s_", strings.Join(failed, ", "))
	}

	return sb.String()
}

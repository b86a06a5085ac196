// Package report assembles every analysis view of a chat into one document.
// Each view carries its own status so that a failure in one of them does not
// take the others down.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/chatstat/internal/analysis"
	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

// Status is the outcome of computing one view.
type Status string

const (
	StatusOK     Status = "ok"
	StatusEmpty  Status = "empty"
	StatusFailed Status = "failed"
)

// NoticeNoData is shown when the upload contains no recognizable messages.
const NoticeNoData = "No valid chat data found in this file. Please upload a proper WhatsApp export (.txt)."

// emojiChartSlices is how many emoji get their own pie slice.
const emojiChartSlices = 10

// View is one section of a report. Data is only meaningful when Status is
// StatusOK; Message explains the other two states.
type View[T any] struct {
	Status  Status `json:"status" yaml:"status"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Data    T      `json:"data,omitempty" yaml:"data,omitempty"`
}

// OK reports whether the view holds data.
func (v View[T]) OK() bool {
	return v.Status == StatusOK
}

// Report is the full analysis of a transcript for one user selection.
type Report struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	User        string    `json:"user" yaml:"user"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Records     int       `json:"records" yaml:"records"`
	Users       []string  `json:"users" yaml:"users"`
	Notice      string    `json:"notice,omitempty" yaml:"notice,omitempty"`

	Stats       View[analysis.Stats]      `json:"stats" yaml:"stats"`
	Monthly     View[[]analysis.Count]    `json:"monthly_timeline" yaml:"monthly_timeline"`
	Daily       View[[]analysis.Count]    `json:"daily_timeline" yaml:"daily_timeline"`
	BusyDays    View[[]analysis.Count]    `json:"busy_days" yaml:"busy_days"`
	BusyMonths  View[[]analysis.Count]    `json:"busy_months" yaml:"busy_months"`
	Heatmap     View[analysis.Heatmap]    `json:"heatmap" yaml:"heatmap"`
	BusyUsers   *View[analysis.BusyUsers] `json:"busy_users,omitempty" yaml:"busy_users,omitempty"`
	WordCloud   View[string]              `json:"wordcloud" yaml:"wordcloud"`
	CommonWords View[[]analysis.Count]    `json:"common_words" yaml:"common_words"`
	Emoji       View[[]analysis.Count]    `json:"emoji" yaml:"emoji"`
	EmojiChart  View[[]analysis.Count]    `json:"emoji_chart" yaml:"emoji_chart"`
}

// Empty reports whether the transcript had no records at all.
func (r *Report) Empty() bool {
	return r.Records == 0
}

// Failed returns the names of the views that could not be computed.
func (r *Report) Failed() []string {
	var names []string
	add := func(name string, s Status) {
		if s == StatusFailed {
			names = append(names, name)
		}
	}
	add("stats", r.Stats.Status)
	add("monthly_timeline", r.Monthly.Status)
	add("daily_timeline", r.Daily.Status)
	add("busy_days", r.BusyDays.Status)
	add("busy_months", r.BusyMonths.Status)
	add("heatmap", r.Heatmap.Status)
	if r.BusyUsers != nil {
		add("busy_users", r.BusyUsers.Status)
	}
	add("wordcloud", r.WordCloud.Status)
	add("common_words", r.CommonWords.Status)
	add("emoji", r.Emoji.Status)
	add("emoji_chart", r.EmojiChart.Status)
	return names
}

// Builder computes reports with a shared engine.
type Builder struct {
	engine *analysis.Engine
	logger *slog.Logger
	now    func() time.Time
}

// NewBuilder creates a report builder.
func NewBuilder(engine *analysis.Engine, logger *slog.Logger) *Builder {
	return &Builder{
		engine: engine,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Build computes every view of set for user. Busiest users are only part of
// the Overall report. A user that does not occur in set yields empty views.
func (b *Builder) Build(set *transcript.RecordSet, user, source string) *Report {
	if user == "" {
		user = transcript.Overall
	}
	e := b.engine

	r := &Report{
		ID:          uuid.New(),
		Source:      source,
		User:        user,
		GeneratedAt: b.now(),
		Records:     set.Len(),
		Users:       set.Users(),
	}
	if set.Empty() {
		r.Notice = NoticeNoData
	}

	r.Stats = compute(b, "stats", "", func() (analysis.Stats, bool) {
		return e.Totals(set, user), true
	})
	r.Monthly = compute(b, "monthly_timeline", "No monthly timeline data available.", func() ([]analysis.Count, bool) {
		out := e.MonthlyTimeline(set, user)
		return out, len(out) > 0
	})
	r.Daily = compute(b, "daily_timeline", "No daily timeline data available.", func() ([]analysis.Count, bool) {
		out := e.DailyTimeline(set, user)
		return out, len(out) > 0
	})
	r.BusyDays = compute(b, "busy_days", "No weekday activity available.", func() ([]analysis.Count, bool) {
		out := e.WeekActivity(set, user)
		return out, len(out) > 0
	})
	r.BusyMonths = compute(b, "busy_months", "No monthly activity available.", func() ([]analysis.Count, bool) {
		out := e.MonthActivity(set, user)
		return out, len(out) > 0
	})
	r.Heatmap = compute(b, "heatmap", "No activity to map.", func() (analysis.Heatmap, bool) {
		out := e.ActivityHeatmap(set, user)
		return out, len(out.Periods) > 0
	})
	if user == transcript.Overall {
		v := compute(b, "busy_users", "No senders found.", func() (analysis.BusyUsers, bool) {
			out := e.BusyUsers(set)
			return out, len(out.Top) > 0
		})
		r.BusyUsers = &v
	}
	r.WordCloud = compute(b, "wordcloud", "WordCloud could not be generated (no data).", func() (string, bool) {
		return e.WordCloudText(set, user)
	})
	r.CommonWords = compute(b, "common_words", "No word frequency data available.", func() ([]analysis.Count, bool) {
		out := e.CommonWords(set, user)
		return out, len(out) > 0
	})
	r.Emoji = compute(b, "emoji", "No emojis found.", func() ([]analysis.Count, bool) {
		out := e.EmojiFrequency(set, user)
		return out, len(out) > 0
	})
	r.EmojiChart = compute(b, "emoji_chart", "No emojis found.", func() ([]analysis.Count, bool) {
		if !r.Emoji.OK() {
			return nil, false
		}
		return analysis.Collapse(r.Emoji.Data, emojiChartSlices), true
	})

	return r
}

// compute runs fn and turns its outcome into a view. A panic inside fn marks
// only this view as failed. fn returns false when it has nothing to show; an
// empty emptyMsg means the zero result is still shown as data.
func compute[T any](b *Builder, name, emptyMsg string, fn func() (T, bool)) (v View[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.Error("report view failed", "view", name, "panic", rec)
			v = View[T]{Status: StatusFailed, Message: fmt.Sprintf("Error in %s: %v", name, rec)}
		}
	}()

	data, ok := fn()
	if !ok && emptyMsg != "" {
		return View[T]{Status: StatusEmpty, Message: emptyMsg}
	}
	return View[T]{Status: StatusOK, Data: data}
}

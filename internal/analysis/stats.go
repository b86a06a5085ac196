package analysis

import (
	"strings"

	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

// Totals counts messages, whitespace-separated words, media placeholders and
// links for user (or transcript.Overall).
func (e *Engine) Totals(set *transcript.RecordSet, user string) Stats {
	var s Stats
	for r := range set.Filter(user).All() {
		s.Messages++
		s.Words += len(strings.Fields(r.Message))
		if strings.Contains(r.Message, transcript.MediaOmitted) {
			s.Media++
		}
		s.Links += len(e.links.FindAll(r.Message))
	}
	return s
}

// BusyUsers ranks every sender of the whole set, group notifications
// included. Top holds the five busiest; Shares holds everyone's percentage of
// all records.
func (e *Engine) BusyUsers(set *transcript.RecordSet) BusyUsers {
	t := newTally()
	for r := range set.All() {
		t.add(r.User)
	}

	ranked := t.mostCommon(0)
	out := BusyUsers{
		Top:    t.mostCommon(topSendersLimit),
		Shares: make([]Share, 0, len(ranked)),
	}
	total := float64(set.Len())
	for _, c := range ranked {
		out.Shares = append(out.Shares, Share{
			Name:    c.Label,
			Percent: round2(float64(c.Count) / total * 100),
		})
	}
	return out
}

package analysis

import (
	"fmt"
	"sort"

	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

// MonthlyTimeline counts messages per calendar month in chronological order,
// labelled "January-2023". Records without a date are skipped.
func (e *Engine) MonthlyTimeline(set *transcript.RecordSet, user string) []Count {
	type month struct {
		year, num int
		name      string
	}
	counts := make(map[month]int)
	for r := range set.Filter(user).All() {
		if !r.HasDate() {
			continue
		}
		counts[month{year: r.Year, num: r.MonthNum, name: r.Month}]++
	}

	keys := make([]month, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].num < keys[j].num
	})

	out := make([]Count, len(keys))
	for i, k := range keys {
		out[i] = Count{Label: fmt.Sprintf("%s-%d", k.name, k.year), Count: counts[k]}
	}
	return out
}

// DailyTimeline counts messages per date ("2006-01-02") in chronological
// order. Records without a date are skipped.
func (e *Engine) DailyTimeline(set *transcript.RecordSet, user string) []Count {
	counts := make(map[string]int)
	for r := range set.Filter(user).All() {
		if !r.HasDate() {
			continue
		}
		counts[r.OnlyDate]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	// ISO dates with four-digit years sort chronologically as strings.
	sort.Strings(dates)

	out := make([]Count, len(dates))
	for i, d := range dates {
		out[i] = Count{Label: d, Count: counts[d]}
	}
	return out
}

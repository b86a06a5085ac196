package analysis

import (
	"sort"
	"time"

	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

// weekdays lists heat map rows, Monday first.
var weekdays = []string{
	time.Monday.String(), time.Tuesday.String(), time.Wednesday.String(),
	time.Thursday.String(), time.Friday.String(), time.Saturday.String(), time.Sunday.String(),
}

// WeekActivity counts messages per weekday name, busiest first. Days without
// messages are absent.
func (e *Engine) WeekActivity(set *transcript.RecordSet, user string) []Count {
	t := newTally()
	for r := range set.Filter(user).All() {
		if r.HasDate() {
			t.add(r.DayName)
		}
	}
	return t.mostCommon(0)
}

// MonthActivity counts messages per month name across years, busiest first.
// Months without messages are absent.
func (e *Engine) MonthActivity(set *transcript.RecordSet, user string) []Count {
	t := newTally()
	for r := range set.Filter(user).All() {
		if r.HasDate() {
			t.add(r.Month)
		}
	}
	return t.mostCommon(0)
}

// ActivityHeatmap tabulates messages by weekday and hour bucket. It always
// has seven rows; its columns are the buckets seen in the data, in hour
// order, and missing combinations are zero.
func (e *Engine) ActivityHeatmap(set *transcript.RecordSet, user string) Heatmap {
	byHour := make(map[int]map[string]int)
	for r := range set.Filter(user).All() {
		if !r.HasDate() {
			continue
		}
		if byHour[r.Hour] == nil {
			byHour[r.Hour] = make(map[string]int)
		}
		byHour[r.Hour][r.DayName]++
	}

	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	hm := Heatmap{
		Days:    append([]string(nil), weekdays...),
		Periods: make([]string, len(hours)),
		Cells:   make([][]int, len(weekdays)),
	}
	for j, h := range hours {
		hm.Periods[j] = transcript.Period(h)
	}
	for i, day := range weekdays {
		row := make([]int, len(hours))
		for j, h := range hours {
			row[j] = byHour[h][day]
		}
		hm.Cells[i] = row
	}
	return hm
}

// Total returns the sum of all cells.
func (h Heatmap) Total() int {
	n := 0
	for _, row := range h.Cells {
		for _, c := range row {
			n += c
		}
	}
	return n
}

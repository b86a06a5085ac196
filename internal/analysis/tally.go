package analysis

import (
	"math"
	"sort"
)

// tally counts labels and remembers the order they were first seen in.
type tally struct {
	index  map[string]int
	counts []Count
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) add(label string) {
	if i, ok := t.index[label]; ok {
		t.counts[i].Count++
		return
	}
	t.index[label] = len(t.counts)
	t.counts = append(t.counts, Count{Label: label, Count: 1})
}

// mostCommon returns the counts by descending count, ties in first-seen
// order. limit <= 0 returns all of them.
func (t *tally) mostCommon(limit int) []Count {
	out := make([]Count, len(t.counts))
	copy(out, t.counts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// round2 rounds half up to two decimals.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Collapse keeps the first n counts and folds the rest into a single
// "Others" entry, the shape of a pie chart legend.
func Collapse(counts []Count, n int) []Count {
	if n <= 0 || len(counts) <= n {
		return append([]Count(nil), counts...)
	}
	out := append([]Count(nil), counts[:n]...)
	others := 0
	for _, c := range counts[n:] {
		others += c.Count
	}
	return append(out, Count{Label: "Others", Count: others})
}

package transcript

import (
	"iter"
	"sort"
)

// RecordSet is an ordered, read-only sequence of records in transcript order.
// The zero value and a nil *RecordSet are both empty sets.
type RecordSet struct {
	records []Record
}

// NewRecordSet wraps records in a set. The slice is copied.
func NewRecordSet(records []Record) *RecordSet {
	out := make([]Record, len(records))
	copy(out, records)
	return &RecordSet{records: out}
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Empty reports whether the set has no records.
func (s *RecordSet) Empty() bool {
	return s.Len() == 0
}

// At returns the i-th record.
func (s *RecordSet) At(i int) Record {
	return s.records[i]
}

// All iterates over the records in transcript order.
func (s *RecordSet) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if s == nil {
			return
		}
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Filter returns the records sent by user. Overall (or an empty name) returns
// the set itself.
func (s *RecordSet) Filter(user string) *RecordSet {
	if user == "" || user == Overall {
		return s
	}
	var out []Record
	for r := range s.All() {
		if r.User == user {
			out = append(out, r)
		}
	}
	return &RecordSet{records: out}
}

// Senders returns the distinct human senders, sorted.
func (s *RecordSet) Senders() []string {
	seen := make(map[string]bool)
	var senders []string
	for r := range s.All() {
		if r.IsNotification() || seen[r.User] {
			continue
		}
		seen[r.User] = true
		senders = append(senders, r.User)
	}
	sort.Strings(senders)
	return senders
}

// Users returns the sender picker list: Overall followed by Senders.
func (s *RecordSet) Users() []string {
	return append([]string{Overall}, s.Senders()...)
}

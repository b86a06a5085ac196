package transcript

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// stampRe matches a cleaned timestamp of either export flavour:
// "12/1/23, 10:00", "12/1/23, 10:00 PM" or "12/1/2023, 10:00:05".
var stampRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4}),\s(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s?([APMapm]{2}))?$`)

type dateOrder int

const (
	monthFirst dateOrder = iota
	dayFirst
)

// stamp is a timestamp split into its numeric components. d1 and d2 are the
// first two date components in transcript order; which one is the month is
// decided per transcript.
type stamp struct {
	raw      string
	matched  bool
	d1, d2   int
	year     int
	hour     int
	minute   int
	sec      int
	meridiem string
}

func splitStamp(raw string) stamp {
	s := stamp{raw: raw}
	m := stampRe.FindStringSubmatch(raw)
	if m == nil {
		return s
	}
	s.d1, _ = strconv.Atoi(m[1])
	s.d2, _ = strconv.Atoi(m[2])
	s.year = expandYear(m[3])
	s.hour, _ = strconv.Atoi(m[4])
	s.minute, _ = strconv.Atoi(m[5])
	if m[6] != "" {
		s.sec, _ = strconv.Atoi(m[6])
	}
	s.meridiem = strings.ToLower(m[7])
	s.matched = s.year > 0
	return s
}

// expandYear pivots two-digit years the way strptime's %y does. Three-digit
// years are rejected.
func expandYear(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	switch len(digits) {
	case 2:
		if n < 69 {
			return 2000 + n
		}
		return 1900 + n
	case 4:
		return n
	default:
		return 0
	}
}

// inferOrder picks the date order for a whole transcript from the first stamp
// whose components are unambiguous. Without one, month-first is kept.
func inferOrder(stamps []stamp) dateOrder {
	for _, s := range stamps {
		if !s.matched {
			continue
		}
		if s.d1 > 12 && s.d2 <= 12 {
			return dayFirst
		}
		if s.d2 > 12 && s.d1 <= 12 {
			return monthFirst
		}
	}
	return monthFirst
}

// resolve converts the stamp into a wall-clock time. The preferred order is
// tried first and the other one second; ok is false when neither yields a
// real date-time.
func (s stamp) resolve(preferred dateOrder) (time.Time, bool) {
	if !s.matched {
		return time.Time{}, false
	}
	if t, ok := s.build(preferred); ok {
		return t, true
	}
	other := dayFirst
	if preferred == dayFirst {
		other = monthFirst
	}
	return s.build(other)
}

func (s stamp) build(order dateOrder) (time.Time, bool) {
	month, day := s.d1, s.d2
	if order == dayFirst {
		month, day = s.d2, s.d1
	}

	hour := s.hour
	switch s.meridiem {
	case "":
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return time.Time{}, false
		}
		if hour == 12 {
			hour = 0
		}
		if s.meridiem == "pm" {
			hour += 12
		}
	default:
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || hour > 23 || s.minute > 59 || s.sec > 59 {
		return time.Time{}, false
	}
	t := time.Date(s.year, time.Month(month), day, hour, s.minute, s.sec, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); such dates are invalid here.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

package transcript

import (
	"regexp"
	"strings"
)

// boundaryFormat is one surface syntax an exporter uses to prefix messages.
type boundaryFormat struct {
	name    string
	pattern string
}

// boundaryFormats are tried in order at every position of the transcript.
var boundaryFormats = []boundaryFormat{
	// Android and most desktop exports: "12/1/23, 10:00 - " or "12/1/23, 10:00 PM - ".
	{name: "dash", pattern: `\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}(?:\s?[APMapm]{2})?\s-\s`},
	// iPhone exports: "[12/1/23, 10:00:05]".
	{name: "bracket", pattern: `\[\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}:\d{2}\]`},
}

var boundaryRe = compileBoundaries(boundaryFormats)

func compileBoundaries(formats []boundaryFormat) *regexp.Regexp {
	alts := make([]string, len(formats))
	for i, f := range formats {
		alts[i] = "(?:" + f.pattern + ")"
	}
	return regexp.MustCompile(strings.Join(alts, "|"))
}

// exportNoise replaces characters some exporters inject around timestamps:
// U+202F (narrow no-break space) before AM/PM and U+200E (left-to-right mark).
var exportNoise = strings.NewReplacer("\u202f", " ", "\u200e", "")

// Parse converts an exported chat into records. It never fails: text without
// any recognizable timestamp yields an empty set, and timestamps that do not
// form a real date-time produce records without calendar fields.
func Parse(raw string) *RecordSet {
	text := exportNoise.Replace(raw)

	stamps := boundaryRe.FindAllString(text, -1)
	if len(stamps) == 0 {
		return &RecordSet{}
	}
	// The first segment precedes the first timestamp (encryption notice,
	// export header) and is not part of the conversation.
	segments := boundaryRe.Split(text, -1)[1:]

	n := min(len(stamps), len(segments))
	parts := make([]stamp, n)
	for i := range n {
		parts[i] = splitStamp(cleanStamp(stamps[i]))
	}
	order := inferOrder(parts)

	records := make([]Record, n)
	for i := range n {
		user, message := splitSender(segments[i])
		rec := Record{
			Stamp:   parts[i].raw,
			User:    user,
			Message: message,
		}
		if t, ok := parts[i].resolve(order); ok {
			rec.Calendar = newCalendar(t)
		}
		records[i] = rec
	}
	return &RecordSet{records: records}
}

// cleanStamp strips the separator and brackets surrounding a boundary match.
func cleanStamp(boundary string) string {
	s := strings.Trim(boundary, " \t\r\n-")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}

// splitSender separates "Alice: hello" into sender and body. The sender is the
// shortest non-empty prefix of the first line followed by a colon and a space
// or tab; the first such colon wins, and the body is the rest of that line.
// Segments without one belong to GroupNotification and keep their whole text
// as the body.
func splitSender(segment string) (string, string) {
	body := strings.TrimRight(strings.TrimLeft(segment, " \t"), "\r\n")

	line := body
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	for i := 1; i+1 < len(line); i++ {
		if line[i] != ':' {
			continue
		}
		if line[i+1] == ' ' || line[i+1] == '\t' {
			return line[:i], strings.TrimRight(line[i+2:], "\r")
		}
	}
	return GroupNotification, body
}

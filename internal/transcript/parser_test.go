package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTwoMessages(t *testing.T) {
	set := Parse("12/1/23, 10:00 - Alice: Hello there\n12/1/23, 10:05 - Bob: <Media omitted>\n")
	require.Equal(t, 2, set.Len())

	a, b := set.At(0), set.At(1)
	assert.Equal(t, "Alice", a.User)
	assert.Equal(t, "Hello there", a.Message)
	assert.Equal(t, "12/1/23, 10:00", a.Stamp)
	assert.Equal(t, "Bob", b.User)
	assert.Equal(t, MediaOmitted, b.Message)

	require.True(t, a.HasDate())
	assert.Equal(t, time.Date(2023, time.December, 1, 10, 0, 0, 0, time.UTC), a.Date)
	assert.Equal(t, "December", a.Month)
	assert.Equal(t, 12, a.MonthNum)
	assert.Equal(t, "Friday", a.DayName)
	assert.Equal(t, "2023-12-01", a.OnlyDate)
	assert.Equal(t, "10-11", a.Period)
	assert.Equal(t, 5, b.Minute)
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n", "just some text\nwith no timestamps"} {
		set := Parse(in)
		assert.True(t, set.Empty(), "input %q", in)
		assert.Equal(t, []string{Overall}, set.Users())
	}
}

func TestParseDropsPreamble(t *testing.T) {
	in := "Messages and calls are end-to-end encrypted.\n" +
		"1/2/2024, 09:30 - Alice: first\n"
	set := Parse(in)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, "first", set.At(0).Message)
}

func TestParseGroupNotification(t *testing.T) {
	in := "1/2/2024, 09:30 - Alice added Bob\n" +
		"1/2/2024, 09:31 - Bob: thanks: really\n"
	set := Parse(in)
	require.Equal(t, 2, set.Len())

	assert.Equal(t, GroupNotification, set.At(0).User)
	assert.True(t, set.At(0).IsNotification())
	assert.Equal(t, "Alice added Bob", set.At(0).Message)

	// First colon-space pair wins.
	assert.Equal(t, "Bob", set.At(1).User)
	assert.Equal(t, "thanks: really", set.At(1).Message)
}

func TestParseBracketFormat(t *testing.T) {
	in := "[25/12/2022, 18:04:09] Alice: merry christmas\n" +
		"[25/12/2022, 18:05:10] Bob: you too\n"
	set := Parse(in)
	require.Equal(t, 2, set.Len())

	r := set.At(0)
	assert.Equal(t, "25/12/2022, 18:04:09", r.Stamp)
	assert.Equal(t, "Alice", r.User)
	assert.Equal(t, "merry christmas", r.Message)
	require.True(t, r.HasDate())
	assert.Equal(t, time.Date(2022, time.December, 25, 18, 4, 9, 0, time.UTC), r.Date)
	assert.Equal(t, "Sunday", r.DayName)
}

func TestParseInfersDayFirst(t *testing.T) {
	// 3/4 is ambiguous on its own; 25/4 settles the transcript as day-first.
	in := "3/4/23, 08:00 - Alice: a\n" +
		"25/4/23, 08:00 - Alice: b\n"
	set := Parse(in)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "2023-04-03", set.At(0).OnlyDate)
	assert.Equal(t, "2023-04-25", set.At(1).OnlyDate)
}

func TestParseDefaultsToMonthFirst(t *testing.T) {
	set := Parse("3/4/23, 08:00 - Alice: a\n")
	require.Equal(t, 1, set.Len())
	assert.Equal(t, "2023-03-04", set.At(0).OnlyDate)
}

func TestParseMeridiem(t *testing.T) {
	in := "1/5/23, 12:15 AM - Alice: midnight\n" +
		"1/5/23, 12:30 PM - Alice: noon\n" +
		"1/5/23, 11:45 pm - Alice: late\n"
	set := Parse(in)
	require.Equal(t, 3, set.Len())
	assert.Equal(t, 0, set.At(0).Hour)
	assert.Equal(t, "00-1", set.At(0).Period)
	assert.Equal(t, 12, set.At(1).Hour)
	assert.Equal(t, 23, set.At(2).Hour)
	assert.Equal(t, "23-00", set.At(2).Period)
}

func TestParseExportNoise(t *testing.T) {
	in := "\u200e1/5/23, 9:15\u202fPM - Alice: hi\n"
	set := Parse(in)
	require.Equal(t, 1, set.Len())
	r := set.At(0)
	assert.Equal(t, "1/5/23, 9:15 PM", r.Stamp)
	require.True(t, r.HasDate())
	assert.Equal(t, 21, r.Hour)
}

func TestParseKeepsInvalidTimestamps(t *testing.T) {
	in := "31/31/23, 10:00 - Alice: bad date\n" +
		"1/5/23, 10:00 - Alice: good\n" +
		"2/30/2023, 10:00 - Bob: no such day\n"
	set := Parse(in)
	require.Equal(t, 3, set.Len())

	assert.False(t, set.At(0).HasDate())
	assert.Equal(t, "bad date", set.At(0).Message)
	assert.True(t, set.At(1).HasDate())
	assert.False(t, set.At(2).HasDate())
}

func TestParseMultilineBody(t *testing.T) {
	in := "1/5/23, 10:00 - Alice: line one\nline two\r\n1/5/23, 10:01 - Bob: ok\n"
	set := Parse(in)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "line one", set.At(0).Message)
	assert.Equal(t, "ok", set.At(1).Message)
}

func TestParseMultilineNotificationKeepsText(t *testing.T) {
	in := "1/5/23, 10:00 - Alice changed the group description\nNew rules\n1/5/23, 10:01 - Bob: ok\n"
	set := Parse(in)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, GroupNotification, set.At(0).User)
	assert.Equal(t, "Alice changed the group description\nNew rules", set.At(0).Message)
}

func TestParseIsDeterministic(t *testing.T) {
	in := "1/5/23, 10:00 - Alice: one\n1/5/23, 10:01 - Bob: two\n1/5/23, 10:02 - Carol joined\n"
	assert.Equal(t, Parse(in), Parse(in))
}

func TestSplitSender(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		user    string
		body    string
	}{
		{"simple", "Alice: hi", "Alice", "hi"},
		{"tab", "Alice:\thi", "Alice", "hi"},
		{"leading space", "  Alice: hi\n", "Alice", "hi"},
		{"phone number sender", "+91 98765 43210: hello", "+91 98765 43210", "hello"},
		{"no delimiter", "Alice left", GroupNotification, "Alice left"},
		{"colon without space", "time is 10:30", GroupNotification, "time is 10:30"},
		{"empty sender", ": hi", GroupNotification, ": hi"},
		{"continuation lines dropped", "Alice: first\r\nsecond\nthird", "Alice", "first"},
		{"delimiter on second line", "Alice changed the subject\nNote: x", GroupNotification, "Alice changed the subject\nNote: x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, body := splitSender(tt.segment)
			assert.Equal(t, tt.user, user)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestExpandYear(t *testing.T) {
	assert.Equal(t, 2023, expandYear("23"))
	assert.Equal(t, 2068, expandYear("68"))
	assert.Equal(t, 1969, expandYear("69"))
	assert.Equal(t, 2024, expandYear("2024"))
	assert.Equal(t, 0, expandYear("202"))
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "00-1", Period(0))
	assert.Equal(t, "9-10", Period(9))
	assert.Equal(t, "22-23", Period(22))
	assert.Equal(t, "23-00", Period(23))
}

package transcript

import (
	"fmt"
	"time"
)

// GroupNotification is the sender of records that have no individual author
// (membership changes, subject changes, encryption notices).
const GroupNotification = "group_notification"

// Overall is the sender filter that selects every record.
const Overall = "Overall"

// MediaOmitted is the body an exporter writes in place of an attachment.
const MediaOmitted = "<Media omitted>"

// Record is a single parsed line of an exported chat.
type Record struct {
	Stamp   string `json:"raw_date"` // timestamp text as it appeared in the export
	User    string `json:"user"`
	Message string `json:"message"`

	// Calendar is nil when Stamp could not be turned into a date-time.
	*Calendar
}

// Calendar holds the fields derived from a valid timestamp.
type Calendar struct {
	Date     time.Time `json:"date"` // wall clock, no zone information
	Year     int       `json:"year"`
	MonthNum int       `json:"month_num"`
	Month    string    `json:"month"`
	Day      int       `json:"day"`
	DayName  string    `json:"day_name"`
	Hour     int       `json:"hour"`
	Minute   int       `json:"minute"`
	OnlyDate string    `json:"only_date"`
	Period   string    `json:"period"`
}

// HasDate reports whether the record carries derived calendar fields.
func (r Record) HasDate() bool {
	return r.Calendar != nil
}

// IsNotification reports whether the record is a system line without a sender.
func (r Record) IsNotification() bool {
	return r.User == GroupNotification
}

func newCalendar(t time.Time) *Calendar {
	return &Calendar{
		Date:     t,
		Year:     t.Year(),
		MonthNum: int(t.Month()),
		Month:    t.Month().String(),
		Day:      t.Day(),
		DayName:  t.Weekday().String(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		OnlyDate: t.Format(time.DateOnly),
		Period:   Period(t.Hour()),
	}
}

// Period returns the hour-wide bucket label containing hour: "9-10", with
// "23-00" and "00-1" at the day boundary.
func Period(hour int) string {
	switch hour {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	default:
		return fmt.Sprintf("%d-%d", hour, hour+1)
	}
}

// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// Period is a named reporting time range.
type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

// Range maps a period to its offset in days from today.
var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs divides a seconds value into whole minutes and
// leftover seconds. The minutes component is not capped at 59.
func SecsToMinsAndSecs(secs float64) (mins, s int) {
	total := Round(secs)
	if total < 0 {
		total = 0
	}

	return total / minutesInAnHour, total % minutesInAnHour
}

// FromStr parses a natural-language or formatted date string.
func FromStr(s string) (time.Time, error) {
	dt, err := dateparser.Parse(nil, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

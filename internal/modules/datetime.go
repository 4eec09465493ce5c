package modules

import (
	"fmt"
	"io"
	"time"
)

// DateLayout and ClockLayout are the reference-time layouts used for output.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// SpecificTime returns 14:30:00 on the day of now, in now's location.
func SpecificTime(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 14, 30, 0, 0, now.Location())
}

// Today truncates now to midnight in its own location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// DateTime prints the current instant, today's date and a fixed wall-clock
// time. now is injected so output is reproducible.
func DateTime(w io.Writer, now time.Time) {
	fmt.Fprintf(w, "now: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(w, "today: %s\n", Today(now).Format(DateLayout))
	fmt.Fprintf(w, "specific time: %s\n", SpecificTime(now).Format(ClockLayout))
	fmt.Fprintf(w, "until 14:30: %s\n", SpecificTime(now).Sub(now).Round(time.Minute))
}

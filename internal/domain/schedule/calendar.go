package schedule

import (
	"fmt"
	"time"
)

// Weekday uses the salon numbering: Monday=0 ... Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

func WeekdayOf(date time.Time) Weekday {
	return Weekday((int(date.Weekday()) + 6) % 7)
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// DateOnly strips the clock and location, keeping the calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsPast compares calendar days only: today is never in the past.
func IsPast(date, today time.Time) bool {
	return DateOnly(date).Before(DateOnly(today))
}

func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

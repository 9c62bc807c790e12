package schedule

import (
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
)

type ShiftKind string

const (
	ShiftMorning   ShiftKind = "MORNING"
	ShiftAfternoon ShiftKind = "AFTERNOON"
	ShiftFull      ShiftKind = "FULL"
)

func ParseShiftKind(s string) (ShiftKind, bool) {
	k := ShiftKind(strings.ToUpper(strings.TrimSpace(s)))
	return k, k.Valid()
}

func (k ShiftKind) Valid() bool {
	switch k {
	case ShiftMorning, ShiftAfternoon, ShiftFull:
		return true
	}
	return false
}

// Intervals maps the shift to its open ranges. The result is already
// ordered and disjoint.
func (k ShiftKind) Intervals(h Hours) []timeslot.Interval {
	switch k {
	case ShiftMorning:
		return []timeslot.Interval{h.Morning()}
	case ShiftAfternoon:
		return []timeslot.Interval{h.Afternoon()}
	case ShiftFull:
		return []timeslot.Interval{h.Morning(), h.Afternoon()}
	}
	return nil
}

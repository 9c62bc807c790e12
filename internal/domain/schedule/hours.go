package schedule

import (
	"errors"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
)

// SlotMinutes is the booking grid: starts fall on :00 and :30.
const SlotMinutes = 30

// Hours holds the salon-wide opening rules. It is built once at startup and
// passed by value; nothing mutates it afterwards.
type Hours struct {
	Opening     timeslot.Clock
	Closing     timeslot.Clock
	LunchStart  timeslot.Clock
	LunchEnd    timeslot.Clock
	SlotMinutes int
}

func DefaultHours() Hours {
	return Hours{
		Opening:     timeslot.At(8, 0),
		Closing:     timeslot.At(21, 0),
		LunchStart:  timeslot.At(13, 30),
		LunchEnd:    timeslot.At(15, 0),
		SlotMinutes: SlotMinutes,
	}
}

func (h Hours) Validate() error {
	switch {
	case h.SlotMinutes != SlotMinutes:
		return fmt.Errorf("slot minutes must be %d", SlotMinutes)
	case h.Opening >= h.Closing:
		return errors.New("opening must be before closing")
	case h.LunchStart >= h.LunchEnd:
		return errors.New("lunch start must be before lunch end")
	case h.LunchStart < h.Opening || h.LunchEnd > h.Closing:
		return errors.New("lunch must fall within opening hours")
	}
	return nil
}

func (h Hours) Business() timeslot.Interval {
	return timeslot.Interval{Start: h.Opening, End: h.Closing}
}

func (h Hours) Lunch() timeslot.Interval {
	return timeslot.Interval{Start: h.LunchStart, End: h.LunchEnd}
}

func (h Hours) Morning() timeslot.Interval {
	return timeslot.Interval{Start: h.Opening, End: h.LunchStart}
}

func (h Hours) Afternoon() timeslot.Interval {
	return timeslot.Interval{Start: h.LunchEnd, End: h.Closing}
}

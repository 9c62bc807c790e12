package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day expressed in minutes since midnight.
type Clock int

const (
	Midnight Clock = 0
	EndOfDay Clock = 24 * 60

	Layout = "15:04"
)

func At(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Parse reads "HH:MM" or "HH:MM:SS". Seconds are returned apart so callers
// can reject sub-minute values instead of silently truncating them.
func Parse(s string) (Clock, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid time format: %q", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return 0, 0, fmt.Errorf("invalid time format: %q", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid time format: %q", s)
		}
		nums[i] = n
	}

	hour, minute := nums[0], nums[1]
	sec := 0
	if len(nums) == 3 {
		sec = nums[2]
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return 0, 0, fmt.Errorf("invalid time: %q", s)
	}

	return At(hour, minute), sec, nil
}

// ParseHM is Parse restricted to whole minutes.
func ParseHM(s string) (Clock, error) {
	c, sec, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if sec != 0 {
		return 0, fmt.Errorf("time has seconds: %q", s)
	}
	return c, nil
}

func MustParse(s string) Clock {
	c, err := ParseHM(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// Aligned reports whether c falls on a step boundary (:00/:30 for step 30).
func (c Clock) Aligned(step int) bool {
	if step <= 0 {
		return true
	}
	return int(c)%step == 0
}

// Ceil rounds c up to the next step boundary.
func (c Clock) Ceil(step int) Clock {
	if step <= 0 || c.Aligned(step) {
		return c
	}
	return c + Clock(step-int(c)%step)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Strings formats a list of clocks as "HH:MM" values.
func Strings(cs []Clock) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.String())
	}
	return out
}

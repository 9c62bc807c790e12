package timeslot

import (
	"fmt"
	"sort"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start Clock
	End   Clock
}

func NewInterval(start Clock, minutes int) Interval {
	return Interval{Start: start, End: start.Add(minutes)}
}

func (i Interval) Empty() bool {
	return i.End <= i.Start
}

// Overlaps uses half-open semantics: touching endpoints do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i.Start, i.End, o.Start, o.End)
}

func (i Interval) Contains(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.Start, i.End)
}

func Overlaps(aStart, aEnd, bStart, bEnd Clock) bool {
	return aStart < bEnd && bStart < aEnd
}

func OverlapsAny(i Interval, set []Interval) bool {
	for _, o := range set {
		if i.Overlaps(o) {
			return true
		}
	}
	return false
}

// Merge returns the minimal ordered set of disjoint intervals covering the
// input. Overlapping and adjacent ranges are joined; empty ones are dropped.
// The input slice is not modified.
func Merge(in []Interval) []Interval {
	sorted := make([]Interval, 0, len(in))
	for _, iv := range in {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Start < sorted[b].Start
	})

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		last := len(merged) - 1
		if last < 0 || iv.Start > merged[last].End {
			merged = append(merged, iv)
			continue
		}
		if iv.End > merged[last].End {
			merged[last].End = iv.End
		}
	}
	return merged
}

// Walk enumerates the step-aligned instants in the closed range [from, to],
// starting at from rounded up to the next step boundary.
func Walk(from, to Clock, step int) []Clock {
	if step <= 0 {
		return nil
	}
	var out []Clock
	for cur := from.Ceil(step); cur <= to; cur = cur.Add(step) {
		out = append(out, cur)
	}
	return out
}

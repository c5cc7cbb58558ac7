package domain

import "github.com/jaysonsaraujo/phm-app/pkg/types"

// Interval is a half-open time range [Start, End) expressed in minutes
// since midnight. Buffers may push Start below zero or End past the end
// of the day; that is fine for collision testing, the expanded interval
// is never persisted.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds the occupied interval of a ceremony starting at the
// given time with the given duration
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: startMin, End: startMin + durationMinutes}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
// Touching intervals (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// WithBuffer returns the interval expanded by the given paddings.
// Asymmetric paddings support the celebrant displacement buffer.
func (i Interval) WithBuffer(before, after int) Interval {
	return Interval{Start: i.Start - before, End: i.End + after}
}

// Duration returns the interval length in minutes
func (i Interval) Duration() int {
	return i.End - i.Start
}

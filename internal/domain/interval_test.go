package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps_Symmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "disjoint", a: Interval{600, 660}, b: Interval{720, 780}, want: false},
		{name: "touching is free", a: Interval{600, 660}, b: Interval{660, 720}, want: false},
		{name: "partial overlap", a: Interval{600, 660}, b: Interval{630, 690}, want: true},
		{name: "contained", a: Interval{600, 720}, b: Interval{630, 660}, want: true},
		{name: "identical", a: Interval{600, 660}, b: Interval{600, 660}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_WithBuffer(t *testing.T) {
	// 16:00-17:00 with 30m padding on both sides becomes 15:30-17:30
	padded := Interval{Start: 960, End: 1020}.WithBuffer(30, 30)
	assert.Equal(t, Interval{Start: 930, End: 1050}, padded)
}

func TestInterval_BufferMonotonicity(t *testing.T) {
	// Growing the buffer never turns a conflicting pair into a free one
	a := Interval{Start: 810, End: 930}  // 13:30-15:30
	b := Interval{Start: 960, End: 1080} // 16:00-18:00

	require.False(t, a.Overlaps(b))

	for buffer := 0; buffer <= 120; buffer += 15 {
		if a.WithBuffer(buffer, buffer).Overlaps(b.WithBuffer(buffer, buffer)) {
			// Once overlapping, every larger buffer must still overlap
			for bigger := buffer; bigger <= 180; bigger += 15 {
				assert.True(t, a.WithBuffer(bigger, bigger).Overlaps(b.WithBuffer(bigger, bigger)),
					"buffer %d overlapped but larger buffer %d did not", buffer, bigger)
			}
			return
		}
	}
	t.Fatal("expected some buffer to produce an overlap")
}

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval("16:00", 60)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 960, End: 1020}, interval)
	assert.Equal(t, 60, interval.Duration())

	_, err = NewInterval("25:99", 60)
	assert.Error(t, err)
}

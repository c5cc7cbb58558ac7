package domain

import (
	"time"

	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// AlternativeDay is a nearby day where the originally requested time is
// free for both the location and the celebrant
type AlternativeDay struct {
	Date         time.Time
	Time         types.TimeString
	WeekdayLabel string
}

// Suggestions holds the two independent suggestion classes. The engine
// only proposes different start times or days, never a different
// duration.
type Suggestions struct {
	SameDay   []types.TimeString
	OtherDays []AlternativeDay
}

// IsEmpty returns true when neither class produced an alternative
func (s Suggestions) IsEmpty() bool {
	return len(s.SameDay) == 0 && len(s.OtherDays) == 0
}

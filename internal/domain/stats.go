package domain

import "github.com/jaysonsaraujo/phm-app/pkg/types"

// MonthCount is the number of bookings in one month of a year
type MonthCount struct {
	Month int
	Count int
}

// TimeCount is the popularity of one start time
type TimeCount struct {
	Time  types.TimeString
	Count int
}

// Statistics is the aggregated booking report for a period
type Statistics struct {
	Total        int
	ByStatus     map[BookingStatus]int
	ByMonth      []MonthCount
	PopularTimes []TimeCount
}

package models

import (
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// CalendarDay один день календаря с бронированиями
type CalendarDay struct {
	Date     time.Time
	Bookings []*domain.Booking
}

// CalendarMonth календарь месяца: только дни с бронированиями
type CalendarMonth struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

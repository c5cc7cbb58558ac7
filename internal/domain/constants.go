package domain

import "time"

// Default engine configuration values
const (
	DefaultCeremonyDurationMinutes = 60
	DefaultLocationBufferMinutes   = 30
	DefaultCelebrantTravelMinutes  = 30
	DefaultMinAdvanceDays          = 90
	DefaultMaxAdvanceDays          = 365
	DefaultSlotGranularityMinutes  = 30
	DefaultMinNoticeMinutes        = 120 // same-day bookings need 2h notice
	DefaultLocationDailyCapacity   = 8
	DefaultCelebrantDailyCapacity  = 4
)

// Default booking window
const (
	DefaultDayStart = "08:00"
	DefaultDayEnd   = "20:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Suggestion engine limits
const (
	MaxSameDaySuggestions = 3
	MaxAlternativeDays    = 3
	AlternativeDayRange   = 7 // days scanned before and after the requested date
)

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusActive,
	StatusCancelled,
	StatusCompleted,
}

// WeekdayLabels названия дней недели на португальском (язык продукта)
var WeekdayLabels = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

package get_bookings

import (
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	LocationID    int64  `json:"locationId"`
	LocationName  string `json:"locationName"`
	CelebrantID   int64  `json:"celebrantId"`
	CelebrantName string `json:"celebrantName"`
	Couple        string `json:"couple"`
	Status        string `json:"status"`
}

// CalendarDayResponse один день календаря
type CalendarDayResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarMonthResponse календарь месяца
type CalendarMonthResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

// DayBookingsResponse бронирования одного дня
type DayBookingsResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует доменную модель в HTTP модель
func FromDomain(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Date:          b.WeddingDate.Format(domain.DateFormat),
		Time:          b.StartTime.String(),
		LocationID:    b.LocationID,
		LocationName:  b.LocationName,
		CelebrantID:   b.CelebrantID,
		CelebrantName: b.CelebrantName,
		Couple:        b.CoupleLabel(),
		Status:        string(b.Status),
	}
}

// FromCalendarMonth конвертирует календарь месяца в HTTP модель
func FromCalendarMonth(calendar models.CalendarMonth) *CalendarMonthResponse {
	response := &CalendarMonthResponse{
		Year:  calendar.Year,
		Month: int(calendar.Month),
		Days:  make([]CalendarDayResponse, 0, len(calendar.Days)),
	}

	for _, day := range calendar.Days {
		dayResponse := CalendarDayResponse{
			Date:     day.Date.Format(domain.DateFormat),
			Bookings: make([]BookingResponse, 0, len(day.Bookings)),
		}
		for _, booking := range day.Bookings {
			dayResponse.Bookings = append(dayResponse.Bookings, FromDomain(booking))
		}
		response.Days = append(response.Days, dayResponse)
	}

	return response
}

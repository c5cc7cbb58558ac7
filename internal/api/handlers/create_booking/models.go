package create_booking

import (
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	createBooking "github.com/jaysonsaraujo/phm-app/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"` // "2026-12-19"
	Time        string  `json:"time"` // "16:00"
	LocationID  int64   `json:"locationId"`
	CelebrantID int64   `json:"celebrantId"`
	BrideName   string  `json:"brideName"`
	BridePhone  string  `json:"bridePhone"`
	GroomName   string  `json:"groomName"`
	GroomPhone  string  `json:"groomPhone"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:        r.Date,
		Time:        r.Time,
		LocationID:  r.LocationID,
		CelebrantID: r.CelebrantID,
		BrideName:   r.BrideName,
		BridePhone:  r.BridePhone,
		GroomName:   r.GroomName,
		GroomPhone:  r.GroomPhone,
		Notes:       r.Notes,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	LocationID    int64   `json:"locationId"`
	LocationName  string  `json:"locationName"`
	CelebrantID   int64   `json:"celebrantId"`
	CelebrantName string  `json:"celebrantName"`
	BrideName     string  `json:"brideName"`
	BridePhone    string  `json:"bridePhone"`
	GroomName     string  `json:"groomName"`
	GroomPhone    string  `json:"groomPhone"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createBooking.Response) *BookingResponse {
	b := result.Booking
	return &BookingResponse{
		ID:            b.ID,
		Date:          b.WeddingDate.Format(domain.DateFormat),
		Time:          b.StartTime.String(),
		LocationID:    b.LocationID,
		LocationName:  b.LocationName,
		CelebrantID:   b.CelebrantID,
		CelebrantName: b.CelebrantName,
		BrideName:     b.BrideName,
		BridePhone:    b.BridePhone,
		GroomName:     b.GroomName,
		GroomPhone:    b.GroomPhone,
		Status:        string(b.Status),
		Notes:         b.Notes,
	}
}

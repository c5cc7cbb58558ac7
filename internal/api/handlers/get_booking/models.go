package get_booking

import (
	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	LocationID         int64   `json:"locationId"`
	LocationName       string  `json:"locationName"`
	CelebrantID        int64   `json:"celebrantId"`
	CelebrantName      string  `json:"celebrantName"`
	BrideName          string  `json:"brideName"`
	BridePhone         string  `json:"bridePhone"`
	GroomName          string  `json:"groomName"`
	GroomPhone         string  `json:"groomPhone"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP модель
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Date:               b.WeddingDate.Format(domain.DateFormat),
		Time:               b.StartTime.String(),
		LocationID:         b.LocationID,
		LocationName:       b.LocationName,
		CelebrantID:        b.CelebrantID,
		CelebrantName:      b.CelebrantName,
		BrideName:          b.BrideName,
		BridePhone:         b.BridePhone,
		GroomName:          b.GroomName,
		GroomPhone:         b.GroomPhone,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// BookingStatus represents the status of a wedding booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "ATIVO"
	StatusCancelled BookingStatus = "CANCELADO"
	StatusCompleted BookingStatus = "CONCLUIDO"
)

// Booking represents a wedding ceremony booking in the system
type Booking struct {
	ID          int64
	WeddingDate time.Time
	StartTime   types.TimeString
	LocationID  int64
	CelebrantID int64

	BrideName  string
	BridePhone string
	GroomName  string
	GroomPhone string

	Status BookingStatus
	Notes  *string

	// Denormalized names for conflict reports and calendar views
	LocationName  string
	CelebrantName string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict checks
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CoupleLabel returns the couple as displayed in conflict reports
func (b *Booking) CoupleLabel() string {
	return fmt.Sprintf("%s & %s", b.BrideName, b.GroomName)
}

// InvolvesPerson returns true if the given name matches the bride or the
// groom, compared case-insensitively
func (b *Booking) InvolvesPerson(name string) bool {
	upper := strings.ToUpper(strings.TrimSpace(name))
	return strings.ToUpper(strings.TrimSpace(b.BrideName)) == upper ||
		strings.ToUpper(strings.TrimSpace(b.GroomName)) == upper
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate   *time.Time     // Начало периода (опционально)
	EndDate     *time.Time     // Конец периода (опционально)
	LocationID  *int64         // Фильтр по месту церемонии (опционально)
	CelebrantID *int64         // Фильтр по целебранту (опционально)
	ExcludeID   *int64         // Исключить бронирование (при редактировании)
	Status      *BookingStatus // Фильтр по статусу (опционально)
	OnlyActive  bool           // Только активные бронирования
}

// SingleDate returns the date when the filter targets exactly one day
func (f BookingsFilter) SingleDate() (time.Time, bool) {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate) {
		return *f.StartDate, true
	}
	return time.Time{}, false
}

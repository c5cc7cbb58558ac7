package get_upcoming_bookings

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type BookingService interface {
	Upcoming(ctx context.Context, now time.Time, limit uint64) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

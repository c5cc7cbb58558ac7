package get_bookings

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/bookings/models"
)

type BookingService interface {
	CalendarMonth(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error)
	CalendarDay(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

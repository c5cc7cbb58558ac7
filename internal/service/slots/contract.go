package slots

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindWithFilter получает бронирования с гибкой фильтрацией
	FindWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

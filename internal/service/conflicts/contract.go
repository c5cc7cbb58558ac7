package conflicts

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindWithFilter получает бронирования с гибкой фильтрацией
	FindWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	// FindActiveForPerson ищет будущие активные бронирования персоны
	FindActiveForPerson(ctx context.Context, name string, fromDate time.Time, excludeID *int64) ([]*domain.Booking, error)
}

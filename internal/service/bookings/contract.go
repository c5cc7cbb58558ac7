package bookings

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByID получает бронирование по ID
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// FindWithFilter получает бронирования с гибкой фильтрацией
	FindWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	// FindUpcoming получает ближайшие активные бронирования
	FindUpcoming(ctx context.Context, fromDate time.Time, limit uint64) ([]*domain.Booking, error)
	// UpdateStatus обновляет статус бронирования
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	// Cancel отменяет бронирование с указанием причины
	Cancel(ctx context.Context, id int64, reason string) error
	// CountByStatusInPeriod подсчитывает бронирования по статусам
	CountByStatusInPeriod(ctx context.Context, start, end time.Time) (map[domain.BookingStatus]int, error)
	// CountByMonth подсчитывает активные бронирования по месяцам
	CountByMonth(ctx context.Context, year int) ([]domain.MonthCount, error)
	// PopularTimes возвращает востребованные времена начала
	PopularTimes(ctx context.Context, year int, limit uint64) ([]domain.TimeCount, error)
}

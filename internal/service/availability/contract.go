package availability

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountActive подсчитывает активные бронирования на дату
	CountActive(ctx context.Context, date time.Time, locationID, celebrantID *int64) (int, error)
}

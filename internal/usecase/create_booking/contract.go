package create_booking

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ResourceService интерфейс справочника мест и целебрантов
type ResourceService interface {
	GetActiveLocation(ctx context.Context, id int64) (*domain.Location, error)
	GetActiveCelebrant(ctx context.Context, id int64) (*domain.Celebrant, error)
}

// ConfigService интерфейс сервиса конфигурации движка
type ConfigService interface {
	Get(ctx context.Context) (domain.EngineConfig, error)
}

// ConflictDetector интерфейс детектора конфликтов
type ConflictDetector interface {
	Detect(ctx context.Context, c conflicts.Candidate, cfg domain.EngineConfig) (domain.ConflictReport, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

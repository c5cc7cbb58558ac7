package get_free_slots

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/slots"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// ConfigService интерфейс сервиса конфигурации движка
type ConfigService interface {
	Get(ctx context.Context) (domain.EngineConfig, error)
}

// SlotGenerator интерфейс генератора свободных слотов
type SlotGenerator interface {
	FreeSlots(ctx context.Context, q slots.Query, cfg domain.EngineConfig) ([]types.TimeString, error)
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

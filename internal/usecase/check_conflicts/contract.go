package check_conflicts

import (
	"context"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
	"github.com/jaysonsaraujo/phm-app/internal/service/suggestions"
)

// ConfigService интерфейс сервиса конфигурации движка
type ConfigService interface {
	Get(ctx context.Context) (domain.EngineConfig, error)
}

// ConflictDetector интерфейс детектора конфликтов
type ConflictDetector interface {
	Detect(ctx context.Context, c conflicts.Candidate, cfg domain.EngineConfig) (domain.ConflictReport, error)
}

// SuggestionEngine интерфейс движка альтернатив
type SuggestionEngine interface {
	Suggest(ctx context.Context, req suggestions.Request, cfg domain.EngineConfig) (domain.Suggestions, error)
}

// AvailabilityAnalyzer интерфейс анализатора загруженности
type AvailabilityAnalyzer interface {
	Analyze(ctx context.Context, date time.Time, locationID, celebrantID int64, cfg domain.EngineConfig) (domain.AvailabilityAnalysis, error)
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

package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// Analyzer сервис анализа загруженности дня
// Анализ носит рекомендательный характер и никогда не блокирует
// сохранение - мягкие лимиты не являются источником конфликтов
type Analyzer struct {
	bookingRepo BookingRepository
}

// NewAnalyzer создает новый экземпляр анализатора загруженности
func NewAnalyzer(bookingRepo BookingRepository) *Analyzer {
	return &Analyzer{bookingRepo: bookingRepo}
}

// Analyze вычисляет загруженность места и целебранта на дату
func (a *Analyzer) Analyze(ctx context.Context, date time.Time, locationID, celebrantID int64, cfg domain.EngineConfig) (domain.AvailabilityAnalysis, error) {
	locationCount, err := a.bookingRepo.CountActive(ctx, date, &locationID, nil)
	if err != nil {
		return domain.AvailabilityAnalysis{}, fmt.Errorf("availability.Analyze - count location bookings: %w", err)
	}

	celebrantCount, err := a.bookingRepo.CountActive(ctx, date, nil, &celebrantID)
	if err != nil {
		return domain.AvailabilityAnalysis{}, fmt.Errorf("availability.Analyze - count celebrant bookings: %w", err)
	}

	location := domain.NewResourceOccupancy(locationCount, cfg.DailyCapacityFor(domain.ResourceLocation))
	celebrant := domain.NewResourceOccupancy(celebrantCount, cfg.DailyCapacityFor(domain.ResourceCelebrant))

	status := domain.ClassifyOccupancy(location, celebrant)

	return domain.AvailabilityAnalysis{
		Location:       location,
		Celebrant:      celebrant,
		Status:         status,
		Recommendation: domain.RecommendationFor(status),
	}, nil
}

package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// Query запрос свободных слотов одного ресурса на дату
type Query struct {
	Date       time.Time
	Resource   domain.ResourceType
	ResourceID int64
	Now        time.Time
}

// CombinedQuery запрос слотов, свободных одновременно у места и целебранта
type CombinedQuery struct {
	Date        time.Time
	LocationID  int64
	CelebrantID int64
	Now         time.Time
}

// Generator сервис перечисления свободных слотов
// Кандидаты идут с шагом гранулярности от начала до конца рабочего дня,
// слот свободен если его интервал с буфером не пересекает ни одно
// активное бронирование ресурса (также с буфером)
type Generator struct {
	bookingRepo BookingRepository
}

// NewGenerator создает новый экземпляр генератора слотов
func NewGenerator(bookingRepo BookingRepository) *Generator {
	return &Generator{bookingRepo: bookingRepo}
}

// FreeSlots возвращает свободные времена начала для одного ресурса
func (g *Generator) FreeSlots(ctx context.Context, q Query, cfg domain.EngineConfig) ([]types.TimeString, error) {
	filter := domain.BookingsFilter{
		StartDate:  &q.Date,
		EndDate:    &q.Date,
		OnlyActive: true,
	}
	switch q.Resource {
	case domain.ResourceCelebrant:
		filter.CelebrantID = &q.ResourceID
	default:
		filter.LocationID = &q.ResourceID
	}

	bookings, err := g.bookingRepo.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("slots.FreeSlots - load bookings: %w", err)
	}

	buffer := cfg.BufferFor(q.Resource)
	busy, err := busyIntervals(bookings, buffer, cfg)
	if err != nil {
		return nil, err
	}

	return g.enumerate(q.Date, q.Now, cfg, func(candidate domain.Interval) bool {
		return isFree(candidate.WithBuffer(buffer, buffer), busy)
	})
}

// FreeCombinedSlots возвращает времена, свободные и у места и у целебранта
func (g *Generator) FreeCombinedSlots(ctx context.Context, q CombinedQuery, cfg domain.EngineConfig) ([]types.TimeString, error) {
	// Один запрос на весь день, разделение по ресурсам в памяти
	bookings, err := g.bookingRepo.FindWithFilter(ctx, domain.BookingsFilter{
		StartDate:  &q.Date,
		EndDate:    &q.Date,
		OnlyActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("slots.FreeCombinedSlots - load bookings: %w", err)
	}

	locationBookings := make([]*domain.Booking, 0)
	celebrantBookings := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.LocationID == q.LocationID {
			locationBookings = append(locationBookings, b)
		}
		if b.CelebrantID == q.CelebrantID {
			celebrantBookings = append(celebrantBookings, b)
		}
	}

	locationBuffer := cfg.BufferFor(domain.ResourceLocation)
	celebrantBuffer := cfg.BufferFor(domain.ResourceCelebrant)

	locationBusy, err := busyIntervals(locationBookings, locationBuffer, cfg)
	if err != nil {
		return nil, err
	}
	celebrantBusy, err := busyIntervals(celebrantBookings, celebrantBuffer, cfg)
	if err != nil {
		return nil, err
	}

	return g.enumerate(q.Date, q.Now, cfg, func(candidate domain.Interval) bool {
		return isFree(candidate.WithBuffer(locationBuffer, locationBuffer), locationBusy) &&
			isFree(candidate.WithBuffer(celebrantBuffer, celebrantBuffer), celebrantBusy)
	})
}

// enumerate перечисляет кандидатов рабочего дня и собирает свободные
// Для сегодняшней даты кандидаты раньше now + MinNoticeMinutes исключаются
func (g *Generator) enumerate(date, now time.Time, cfg domain.EngineConfig, free func(domain.Interval) bool) ([]types.TimeString, error) {
	dayStart, err := cfg.DayStart.Minutes()
	if err != nil {
		return nil, fmt.Errorf("slots.enumerate - parse day start: %w", err)
	}
	dayEnd, err := cfg.DayEnd.Minutes()
	if err != nil {
		return nil, fmt.Errorf("slots.enumerate - parse day end: %w", err)
	}

	cutoff := -1
	if domain.SameDay(date, now) {
		cutoff = now.Hour()*60 + now.Minute() + cfg.MinNoticeMinutes
	}

	result := make([]types.TimeString, 0)
	for minute := dayStart; minute <= dayEnd; minute += cfg.SlotGranularityMinutes {
		if minute < cutoff {
			continue
		}

		candidate := domain.Interval{Start: minute, End: minute + cfg.CeremonyDurationMinutes}
		if !free(candidate) {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(minute)
		if err != nil {
			return nil, fmt.Errorf("slots.enumerate - format slot: %w", err)
		}
		result = append(result, slot)
	}

	return result, nil
}

// busyIntervals строит занятые интервалы бронирований с буфером
func busyIntervals(bookings []*domain.Booking, buffer int, cfg domain.EngineConfig) ([]domain.Interval, error) {
	intervals := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		interval, err := domain.NewInterval(b.StartTime, cfg.CeremonyDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("slots.busyIntervals - build interval for booking %d: %w", b.ID, err)
		}
		intervals = append(intervals, interval.WithBuffer(buffer, buffer))
	}
	return intervals, nil
}

func isFree(candidate domain.Interval, busy []domain.Interval) bool {
	for _, interval := range busy {
		if candidate.Overlaps(interval) {
			return false
		}
	}
	return true
}

package suggestions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/slots"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// Request запрос альтернатив для занятого слота
type Request struct {
	Date        time.Time
	StartTime   types.TimeString
	LocationID  int64
	CelebrantID int64
	Now         time.Time
}

// Engine сервис подбора альтернатив при конфликте
// Предлагает только другие времена и дни, никогда не меняет длительность
type Engine struct {
	slotGenerator SlotGenerator
}

// NewEngine создает новый экземпляр движка альтернатив
func NewEngine(slotGenerator SlotGenerator) *Engine {
	return &Engine{slotGenerator: slotGenerator}
}

// Suggest подбирает альтернативы: свободные времена того же дня и
// ближайшие дни, где запрошенное время свободно
func (e *Engine) Suggest(ctx context.Context, req Request, cfg domain.EngineConfig) (domain.Suggestions, error) {
	result := domain.Suggestions{
		SameDay:   make([]types.TimeString, 0),
		OtherDays: make([]domain.AlternativeDay, 0),
	}

	sameDay, err := e.sameDayTimes(ctx, req, cfg)
	if err != nil {
		return result, err
	}
	result.SameDay = sameDay

	otherDays, err := e.alternativeDays(ctx, req, cfg)
	if err != nil {
		return result, err
	}
	result.OtherDays = otherDays

	return result, nil
}

// sameDayTimes возвращает до трех свободных времен того же дня,
// ранжированных по близости к запрошенному времени
// При равной дистанции приоритет у более раннего времени
func (e *Engine) sameDayTimes(ctx context.Context, req Request, cfg domain.EngineConfig) ([]types.TimeString, error) {
	free, err := e.slotGenerator.FreeCombinedSlots(ctx, slots.CombinedQuery{
		Date:        req.Date,
		LocationID:  req.LocationID,
		CelebrantID: req.CelebrantID,
		Now:         req.Now,
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("suggestions.sameDayTimes - load free slots: %w", err)
	}

	requested, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("suggestions.sameDayTimes - parse requested time: %w", err)
	}

	type rankedSlot struct {
		slot     types.TimeString
		minutes  int
		distance int
	}

	ranked := make([]rankedSlot, 0, len(free))
	for _, slot := range free {
		minutes, err := slot.Minutes()
		if err != nil {
			return nil, fmt.Errorf("suggestions.sameDayTimes - parse slot %s: %w", slot, err)
		}
		distance := minutes - requested
		if distance < 0 {
			distance = -distance
		}
		ranked = append(ranked, rankedSlot{slot: slot, minutes: minutes, distance: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].minutes < ranked[j].minutes
	})

	if len(ranked) > domain.MaxSameDaySuggestions {
		ranked = ranked[:domain.MaxSameDaySuggestions]
	}

	result := make([]types.TimeString, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.slot)
	}

	return result, nil
}

// alternativeDays сканирует соседние дни от ближних к дальним (сначала
// -i, потом +i) и собирает дни, где запрошенное время свободно
// Дни за пределами окна бронирования пропускаются
func (e *Engine) alternativeDays(ctx context.Context, req Request, cfg domain.EngineConfig) ([]domain.AlternativeDay, error) {
	today := domain.DateOnly(req.Now)
	windowStart := today.AddDate(0, 0, cfg.MinAdvanceDays)
	windowEnd := today.AddDate(0, 0, cfg.MaxAdvanceDays)

	result := make([]domain.AlternativeDay, 0, domain.MaxAlternativeDays)

	for offset := 1; offset <= domain.AlternativeDayRange; offset++ {
		for _, delta := range []int{-offset, offset} {
			if len(result) >= domain.MaxAlternativeDays {
				return result, nil
			}

			day := req.Date.AddDate(0, 0, delta)
			if day.Before(windowStart) || day.After(windowEnd) {
				continue
			}

			free, err := e.timeFreeOn(ctx, day, req, cfg)
			if err != nil {
				return nil, err
			}
			if !free {
				continue
			}

			result = append(result, domain.AlternativeDay{
				Date:         day,
				Time:         req.StartTime,
				WeekdayLabel: domain.WeekdayLabels[day.Weekday()],
			})
		}
	}

	return result, nil
}

func (e *Engine) timeFreeOn(ctx context.Context, day time.Time, req Request, cfg domain.EngineConfig) (bool, error) {
	free, err := e.slotGenerator.FreeCombinedSlots(ctx, slots.CombinedQuery{
		Date:        day,
		LocationID:  req.LocationID,
		CelebrantID: req.CelebrantID,
		Now:         req.Now,
	}, cfg)
	if err != nil {
		return false, fmt.Errorf("suggestions.timeFreeOn - load free slots for %s: %w", day.Format(domain.DateFormat), err)
	}

	for _, slot := range free {
		if slot == req.StartTime {
			return true, nil
		}
	}

	return false, nil
}

package suggestions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/slots"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// fakeSlotGenerator отдает заранее заданные свободные слоты по датам
type fakeSlotGenerator struct {
	freeByDate map[string][]types.TimeString
	queried    []string
}

func (f *fakeSlotGenerator) FreeCombinedSlots(_ context.Context, q slots.CombinedQuery, _ domain.EngineConfig) ([]types.TimeString, error) {
	key := q.Date.Format(domain.DateFormat)
	f.queried = append(f.queried, key)
	return f.freeByDate[key], nil
}

func suggestionRequest(date time.Time) Request {
	return Request{
		Date:        date,
		StartTime:   "16:00",
		LocationID:  10,
		CelebrantID: 20,
		Now:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestSuggest_SameDayRankedByDistance(t *testing.T) {
	date := time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)
	generator := &fakeSlotGenerator{freeByDate: map[string][]types.TimeString{
		"2026-12-19": {"13:00", "14:00", "17:00", "17:30"},
	}}
	engine := NewEngine(generator)

	result, err := engine.Suggest(context.Background(), suggestionRequest(date), domain.DefaultEngineConfig())
	require.NoError(t, err)

	// Distances from 16:00 are 180, 120, 60 and 90 minutes; only the
	// three closest survive.
	assert.Equal(t, []types.TimeString{"17:00", "17:30", "14:00"}, result.SameDay)
}

func TestSuggest_SameDayTieBreaksToEarlierTime(t *testing.T) {
	date := time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)
	generator := &fakeSlotGenerator{freeByDate: map[string][]types.TimeString{
		"2026-12-19": {"15:00", "17:00"},
	}}
	engine := NewEngine(generator)

	result, err := engine.Suggest(context.Background(), suggestionRequest(date), domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.Len(t, result.SameDay, 2)
	assert.Equal(t, types.TimeString("15:00"), result.SameDay[0])
}

func TestSuggest_AlternativeDaysNearestFirst(t *testing.T) {
	// The requested time is free on the days around the 19th; the scan
	// visits -1, +1, -2, +2, ... and stops at three hits.
	date := time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)
	generator := &fakeSlotGenerator{freeByDate: map[string][]types.TimeString{
		"2026-12-18": {"16:00"},
		"2026-12-20": {"16:00"},
		"2026-12-21": {"16:00"},
		"2026-12-22": {"16:00"},
	}}
	engine := NewEngine(generator)

	result, err := engine.Suggest(context.Background(), suggestionRequest(date), domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.Len(t, result.OtherDays, domain.MaxAlternativeDays)
	assert.Equal(t, "2026-12-18", result.OtherDays[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2026-12-20", result.OtherDays[1].Date.Format(domain.DateFormat))
	assert.Equal(t, "2026-12-21", result.OtherDays[2].Date.Format(domain.DateFormat))

	for _, day := range result.OtherDays {
		assert.Equal(t, types.TimeString("16:00"), day.Time)
	}

	// 2026-12-18 is a Friday
	assert.Equal(t, "Sexta-feira", result.OtherDays[0].WeekdayLabel)
	assert.Equal(t, "Domingo", result.OtherDays[1].WeekdayLabel)
}

func TestSuggest_SkipsDaysOutsideBookingWindow(t *testing.T) {
	// With now at 2026-08-30 and a 90 day minimum, days before
	// 2026-11-28 are not bookable; a request on the window edge must
	// only look forward.
	date := time.Date(2026, 11, 28, 0, 0, 0, 0, time.UTC)
	generator := &fakeSlotGenerator{freeByDate: map[string][]types.TimeString{
		"2026-11-27": {"16:00"},
		"2026-11-29": {"16:00"},
	}}
	engine := NewEngine(generator)

	result, err := engine.Suggest(context.Background(), suggestionRequest(date), domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.Len(t, result.OtherDays, 1)
	assert.Equal(t, "2026-11-29", result.OtherDays[0].Date.Format(domain.DateFormat))
	assert.NotContains(t, generator.queried, "2026-11-27")
}

func TestSuggest_WindowEdgeDayAllowedInLocalZone(t *testing.T) {
	// With the clock in UTC-3 the day exactly at now + the minimum lead
	// time is still inside the window and must be proposed.
	brt := time.FixedZone("BRT", -3*3600)
	date := time.Date(2026, 11, 29, 0, 0, 0, 0, time.UTC)
	generator := &fakeSlotGenerator{freeByDate: map[string][]types.TimeString{
		"2026-11-28": {"16:00"},
	}}
	engine := NewEngine(generator)

	req := suggestionRequest(date)
	req.Now = time.Date(2026, 8, 30, 10, 0, 0, 0, brt)

	result, err := engine.Suggest(context.Background(), req, domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.Len(t, result.OtherDays, 1)
	assert.Equal(t, "2026-11-28", result.OtherDays[0].Date.Format(domain.DateFormat))
}

func TestSuggest_NoAlternativesFound(t *testing.T) {
	date := time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)
	generator := &fakeSlotGenerator{freeByDate: map[string][]types.TimeString{}}
	engine := NewEngine(generator)

	result, err := engine.Suggest(context.Background(), suggestionRequest(date), domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Empty(t, result.SameDay)
	assert.Empty(t, result.OtherDays)
}

package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) FindWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.LocationID != nil && b.LocationID != *filter.LocationID {
			continue
		}
		if filter.CelebrantID != nil && b.CelebrantID != *filter.CelebrantID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

var slotDay = time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)

func booking(start types.TimeString, locationID, celebrantID int64) *domain.Booking {
	return &domain.Booking{
		ID:          1,
		WeddingDate: slotDay,
		StartTime:   start,
		LocationID:  locationID,
		CelebrantID: celebrantID,
		Status:      domain.StatusActive,
	}
}

func TestFreeSlots_EmptyDayYieldsWholeGrid(t *testing.T) {
	repo := &fakeBookingRepo{}
	generator := NewGenerator(repo)

	slots, err := generator.FreeSlots(context.Background(), Query{
		Date:       slotDay,
		Resource:   domain.ResourceLocation,
		ResourceID: 10,
		Now:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}, domain.DefaultEngineConfig())
	require.NoError(t, err)

	// 08:00 through 20:00 inclusive with a 30 minute step
	require.Len(t, slots, 25)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])

	require.NotNil(t, repo.lastFilter.LocationID)
	assert.Equal(t, int64(10), *repo.lastFilter.LocationID)
	assert.True(t, repo.lastFilter.OnlyActive)
}

func TestFreeSlots_BookingBlocksBufferedRange(t *testing.T) {
	// Booking at 14:30 occupies 14:00-16:00 with 30 minute buffers; a
	// candidate at 13:00 padded to 12:30-14:30 still overlaps, so
	// everything from 13:00 through 16:00 is busy.
	repo := &fakeBookingRepo{bookings: []*domain.Booking{booking("14:30", 10, 20)}}
	generator := NewGenerator(repo)

	slots, err := generator.FreeSlots(context.Background(), Query{
		Date:       slotDay,
		Resource:   domain.ResourceLocation,
		ResourceID: 10,
		Now:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}, domain.DefaultEngineConfig())
	require.NoError(t, err)

	blocked := []types.TimeString{"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00"}
	for _, s := range blocked {
		assert.NotContains(t, slots, s)
	}
	assert.Contains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("16:30"))
	assert.Len(t, slots, 25-len(blocked))
}

func TestFreeSlots_SameDayNoticeCutoff(t *testing.T) {
	repo := &fakeBookingRepo{}
	generator := NewGenerator(repo)

	// Now is 10:15 on the requested day; with 120 minutes of notice the
	// first allowed candidate is 12:30.
	slots, err := generator.FreeSlots(context.Background(), Query{
		Date:       slotDay,
		Resource:   domain.ResourceCelebrant,
		ResourceID: 20,
		Now:        time.Date(2026, 12, 19, 10, 15, 0, 0, time.UTC),
	}, domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("12:30"), slots[0])

	require.NotNil(t, repo.lastFilter.CelebrantID)
	assert.Equal(t, int64(20), *repo.lastFilter.CelebrantID)
}

func TestFreeCombinedSlots_BothResourcesMustBeFree(t *testing.T) {
	// Location 10 is taken at 10:00, celebrant 20 at 15:00 elsewhere.
	// A combined slot must clear both busy windows.
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("10:00", 10, 99),
		booking("15:00", 99, 20),
	}}
	generator := NewGenerator(repo)

	slots, err := generator.FreeCombinedSlots(context.Background(), CombinedQuery{
		Date:        slotDay,
		LocationID:  10,
		CelebrantID: 20,
		Now:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}, domain.DefaultEngineConfig())
	require.NoError(t, err)

	for _, s := range []types.TimeString{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"} {
		assert.NotContains(t, slots, s, "slot %s should be blocked", s)
	}
	assert.Contains(t, slots, types.TimeString("08:00"))
	assert.Contains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("17:00"))

	// The whole day is loaded in one query, resources are split in memory
	assert.Nil(t, repo.lastFilter.LocationID)
	assert.Nil(t, repo.lastFilter.CelebrantID)
}

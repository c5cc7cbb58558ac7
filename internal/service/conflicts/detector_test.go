package conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/slots"
	"github.com/jaysonsaraujo/phm-app/pkg/ptr"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) FindWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StartDate != nil && !domain.SameDay(b.WeddingDate, *filter.StartDate) {
			continue
		}
		if filter.ExcludeID != nil && b.ID == *filter.ExcludeID {
			continue
		}
		if filter.OnlyActive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) FindActiveForPerson(_ context.Context, name string, fromDate time.Time, excludeID *int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if !b.IsActive() || b.WeddingDate.Before(fromDate) {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.InvolvesPerson(name) {
			result = append(result, b)
		}
	}
	return result, nil
}

var weddingDay = time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC)

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		WeddingDate:   weddingDay,
		StartTime:     "14:30",
		LocationID:    10,
		CelebrantID:   20,
		BrideName:     "MARIA SILVA",
		GroomName:     "JOSE SANTOS",
		Status:        domain.StatusActive,
		LocationName:  "Igreja Matriz",
		CelebrantName: "Padre Antonio",
	}
}

func candidate(start types.TimeString) Candidate {
	return Candidate{
		Date:        weddingDay,
		StartTime:   start,
		LocationID:  10,
		CelebrantID: 20,
		BrideName:   "Ana Costa",
		GroomName:   "Pedro Lima",
		Today:       time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestDetect_LocationAndCelebrantConflict(t *testing.T) {
	// Existing 14:30-15:30 padded to 14:00-16:00; candidate 16:00-17:00
	// padded to 15:30-17:30. The padded intervals overlap on both
	// resources.
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existingBooking()}}
	detector := NewDetector(repo)

	report, err := detector.Detect(context.Background(), candidate("16:00"), domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.Len(t, report.LocationConflicts, 1)
	require.Len(t, report.CelebrantConflicts, 1)
	assert.True(t, report.HasConflicts())

	location := report.LocationConflicts[0]
	assert.Equal(t, int64(1), location.BookingID)
	assert.Equal(t, "MARIA SILVA & JOSE SANTOS", location.Couple)
	assert.Equal(t, "Padre Antonio", location.CelebrantName)
	assert.Equal(t, 90, location.TimeDiffMinutes)

	assert.Equal(t, "Igreja Matriz", report.CelebrantConflicts[0].LocationName)
}

func TestDetect_FarEnoughApartIsFree(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existingBooking()}}
	detector := NewDetector(repo)

	// Candidate padded 16:00-18:00 only touches existing padded 14:00-16:00
	report, err := detector.Detect(context.Background(), candidate("16:30"), domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Empty(t, report.LocationConflicts)
	assert.Empty(t, report.CelebrantConflicts)
	assert.False(t, report.HasConflicts())
}

func TestDetect_DifferentResourcesNoConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existingBooking()}}
	detector := NewDetector(repo)

	c := candidate("16:00")
	c.LocationID = 11
	c.CelebrantID = 21

	report, err := detector.Detect(context.Background(), c, domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.False(t, report.HasConflicts())
}

func TestDetect_ExcludeIDSkipsOwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existingBooking()}}
	detector := NewDetector(repo)

	c := candidate("16:00")
	c.ExcludeID = ptr.Ptr(int64(1))
	c.BrideName = "Maria Silva" // same person as booking 1, which is excluded

	report, err := detector.Detect(context.Background(), c, domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.False(t, report.HasConflicts(), "a booking must not conflict with itself when editing")
}

func TestDetect_CancelledBookingsIgnored(t *testing.T) {
	cancelled := existingBooking()
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	detector := NewDetector(repo)

	report, err := detector.Detect(context.Background(), candidate("16:00"), domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.False(t, report.HasConflicts())
}

func TestDetect_AcceptsEveryGeneratedSlot(t *testing.T) {
	// Every slot the generator offers must pass detection for the same
	// resource pair and date
	taken := []*domain.Booking{existingBooking()}
	second := existingBooking()
	second.ID = 2
	second.StartTime = "10:00"
	second.CelebrantID = 99
	third := existingBooking()
	third.ID = 3
	third.StartTime = "18:00"
	third.LocationID = 99
	taken = append(taken, second, third)

	repo := &fakeBookingRepo{bookings: taken}
	detector := NewDetector(repo)
	generator := slots.NewGenerator(repo)
	cfg := domain.DefaultEngineConfig()

	free, err := generator.FreeCombinedSlots(context.Background(), slots.CombinedQuery{
		Date:        weddingDay,
		LocationID:  10,
		CelebrantID: 20,
		Now:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, free)
	assert.Less(t, len(free), 25, "the seeded bookings must block part of the grid")

	for _, slot := range free {
		c := candidate(slot)
		c.BrideName = ""
		c.GroomName = ""

		report, err := detector.Detect(context.Background(), c, cfg)
		require.NoError(t, err)
		assert.Falsef(t, report.HasConflicts(), "slot %s was offered as free but conflicts", slot)
	}
}

func TestDetect_PersonConflicts(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existingBooking()}}
	detector := NewDetector(repo)

	c := candidate("10:00")
	c.LocationID = 11
	c.CelebrantID = 21
	c.BrideName = "maria silva" // match is case-insensitive
	c.GroomName = "Pedro Lima"

	report, err := detector.Detect(context.Background(), c, domain.DefaultEngineConfig())
	require.NoError(t, err)

	require.Len(t, report.PersonConflicts, 1)
	conflict := report.PersonConflicts[0]
	assert.Equal(t, domain.RoleBride, conflict.Role)
	assert.Equal(t, "maria silva", conflict.Person)
	assert.Equal(t, int64(1), conflict.BookingID)
	assert.Equal(t, "Igreja Matriz", conflict.Location)
}

package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking

	cancelledID     int64
	cancelReason    string
	updatedStatus   domain.BookingStatus
	updatedStatusID int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeBookingRepo) FindWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.StartDate != nil && b.WeddingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.WeddingDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) FindUpcoming(_ context.Context, fromDate time.Time, limit uint64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.IsActive() && !b.WeddingDate.Before(fromDate) && uint64(len(result)) < limit {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedStatusID = id
	f.updatedStatus = status
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = domain.StatusCancelled
		}
	}
	return nil
}

func (f *fakeBookingRepo) CountByStatusInPeriod(_ context.Context, _, _ time.Time) (map[domain.BookingStatus]int, error) {
	return map[domain.BookingStatus]int{
		domain.StatusActive:    12,
		domain.StatusCancelled: 3,
		domain.StatusCompleted: 20,
	}, nil
}

func (f *fakeBookingRepo) CountByMonth(_ context.Context, _ int) ([]domain.MonthCount, error) {
	return []domain.MonthCount{{Month: 5, Count: 4}, {Month: 12, Count: 8}}, nil
}

func (f *fakeBookingRepo) PopularTimes(_ context.Context, _ int, limit uint64) ([]domain.TimeCount, error) {
	times := []domain.TimeCount{
		{Time: "16:00", Count: 9},
		{Time: "10:00", Count: 5},
	}
	if uint64(len(times)) > limit {
		times = times[:limit]
	}
	return times, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.December, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarMonth_GroupsByDay(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, WeddingDate: day(5), StartTime: "10:00", Status: domain.StatusActive},
		{ID: 2, WeddingDate: day(5), StartTime: "16:00", Status: domain.StatusActive},
		{ID: 3, WeddingDate: day(19), StartTime: "11:00", Status: domain.StatusCancelled},
	}}
	service := NewService(repo)

	calendar, err := service.CalendarMonth(context.Background(), 2026, time.December)
	require.NoError(t, err)

	assert.Equal(t, 2026, calendar.Year)
	assert.Equal(t, time.December, calendar.Month)

	// Только дни с бронированиями, порядок репозитория сохраняется
	require.Len(t, calendar.Days, 2)
	assert.Equal(t, day(5), calendar.Days[0].Date)
	require.Len(t, calendar.Days[0].Bookings, 2)
	assert.Equal(t, day(19), calendar.Days[1].Date)
	require.Len(t, calendar.Days[1].Bookings, 1)
}

func TestCancel_ActiveBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, WeddingDate: day(19), Status: domain.StatusActive},
	}}
	service := NewService(repo)

	booking, err := service.Cancel(context.Background(), 1, "mudança de planos")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, booking.Status)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "mudança de planos", repo.cancelReason)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, WeddingDate: day(19), Status: domain.StatusCancelled},
	}}
	service := NewService(repo)

	_, err := service.Cancel(context.Background(), 1, "de novo")
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, repo.cancelledID)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, WeddingDate: day(19), Status: domain.StatusActive},
	}}
	service := NewService(repo)

	booking, err := service.UpdateStatus(context.Background(), 1, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, booking.Status)

	_, err = service.UpdateStatus(context.Background(), 1, "PENDENTE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatistics(t *testing.T) {
	repo := &fakeBookingRepo{}
	service := NewService(repo)

	stats, err := service.Statistics(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 35, stats.Total)
	assert.Equal(t, 12, stats.ByStatus[domain.StatusActive])
	require.Len(t, stats.ByMonth, 2)
	require.Len(t, stats.PopularTimes, 2)
	assert.Equal(t, 9, stats.PopularTimes[0].Count)
}

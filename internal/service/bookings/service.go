package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/bookings/models"
)

const popularTimesLimit = 5

// Service сервис чтения и управления жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository) *Service {
	return &Service{bookingRepo: bookingRepo}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// Find получает бронирования по произвольному фильтру
func (s *Service) Find(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookingRepo.FindWithFilter(ctx, filter)
}

// CalendarMonth строит календарь месяца: дни с бронированиями
func (s *Service) CalendarMonth(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error) {
	calendar := models.CalendarMonth{Year: year, Month: month}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	bookings, err := s.bookingRepo.FindWithFilter(ctx, domain.BookingsFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return calendar, fmt.Errorf("bookings.CalendarMonth - load bookings: %w", err)
	}

	// Бронирования приходят отсортированными по дате и времени,
	// группировка по дням сохраняет порядок
	calendar.Days = make([]models.CalendarDay, 0)
	for _, booking := range bookings {
		date := domain.DateOnly(booking.WeddingDate)

		if n := len(calendar.Days); n > 0 && calendar.Days[n-1].Date.Equal(date) {
			calendar.Days[n-1].Bookings = append(calendar.Days[n-1].Bookings, booking)
			continue
		}

		calendar.Days = append(calendar.Days, models.CalendarDay{
			Date:     date,
			Bookings: []*domain.Booking{booking},
		})
	}

	return calendar, nil
}

// CalendarDay получает бронирования одного дня
func (s *Service) CalendarDay(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return s.bookingRepo.FindWithFilter(ctx, domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
}

// Upcoming получает ближайшие активные бронирования
func (s *Service) Upcoming(ctx context.Context, now time.Time, limit uint64) ([]*domain.Booking, error) {
	return s.bookingRepo.FindUpcoming(ctx, domain.DateOnly(now), limit)
}

// Cancel отменяет бронирование
// Отменять можно только активные бронирования
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bookings.Cancel - get booking: %w", err)
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking %d has status %s", ErrCannotCancel, id, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		return nil, fmt.Errorf("bookings.Cancel - cancel booking: %w", err)
	}

	return s.bookingRepo.GetByID(ctx, id)
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("bookings.UpdateStatus - update status: %w", err)
	}

	return s.bookingRepo.GetByID(ctx, id)
}

// Statistics собирает годовой отчет по бронированиям
func (s *Service) Statistics(ctx context.Context, year int) (domain.Statistics, error) {
	stats := domain.Statistics{}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	byStatus, err := s.bookingRepo.CountByStatusInPeriod(ctx, start, end)
	if err != nil {
		return stats, fmt.Errorf("bookings.Statistics - count by status: %w", err)
	}
	stats.ByStatus = byStatus
	for _, count := range byStatus {
		stats.Total += count
	}

	byMonth, err := s.bookingRepo.CountByMonth(ctx, year)
	if err != nil {
		return stats, fmt.Errorf("bookings.Statistics - count by month: %w", err)
	}
	stats.ByMonth = byMonth

	popular, err := s.bookingRepo.PopularTimes(ctx, year, popularTimesLimit)
	if err != nil {
		return stats, fmt.Errorf("bookings.Statistics - popular times: %w", err)
	}
	stats.PopularTimes = popular

	return stats, nil
}

func validStatus(status domain.BookingStatus) bool {
	for _, s := range domain.ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// Candidate кандидат на бронирование для проверки конфликтов
type Candidate struct {
	Date        time.Time
	StartTime   types.TimeString
	LocationID  int64
	CelebrantID int64
	BrideName   string
	GroomName   string
	ExcludeID   *int64 // Исключить бронирование (при редактировании)
	Today       time.Time
}

// Detector сервис обнаружения конфликтов бронирований
// Все три проверки (место, целебрант, персоны) ортогональны и всегда
// выполняются полностью - отчет показывает полную картину за один вызов
type Detector struct {
	bookingRepo BookingRepository
}

// NewDetector создает новый экземпляр детектора конфликтов
func NewDetector(bookingRepo BookingRepository) *Detector {
	return &Detector{bookingRepo: bookingRepo}
}

// Detect выполняет полную проверку конфликтов для кандидата
func (d *Detector) Detect(ctx context.Context, c Candidate, cfg domain.EngineConfig) (domain.ConflictReport, error) {
	report := domain.ConflictReport{
		LocationConflicts:  make([]domain.BookingConflict, 0),
		CelebrantConflicts: make([]domain.BookingConflict, 0),
		PersonConflicts:    make([]domain.PersonConflict, 0),
	}

	candidate, err := domain.NewInterval(c.StartTime, cfg.CeremonyDurationMinutes)
	if err != nil {
		return report, fmt.Errorf("conflicts.Detect - build candidate interval: %w", err)
	}

	// 1. Загружаем активные бронирования дня одним запросом
	sameDay, err := d.bookingRepo.FindWithFilter(ctx, domain.BookingsFilter{
		StartDate:  &c.Date,
		EndDate:    &c.Date,
		ExcludeID:  c.ExcludeID,
		OnlyActive: true,
	})
	if err != nil {
		return report, fmt.Errorf("conflicts.Detect - load same-day bookings: %w", err)
	}

	// 2. Проверка места и целебранта против общего списка дня
	for _, booking := range sameDay {
		if booking.LocationID == c.LocationID {
			conflict, err := resourceConflict(candidate, booking, domain.ResourceLocation, cfg)
			if err != nil {
				return report, err
			}
			if conflict != nil {
				report.LocationConflicts = append(report.LocationConflicts, *conflict)
			}
		}

		if booking.CelebrantID == c.CelebrantID {
			conflict, err := resourceConflict(candidate, booking, domain.ResourceCelebrant, cfg)
			if err != nil {
				return report, err
			}
			if conflict != nil {
				report.CelebrantConflicts = append(report.CelebrantConflicts, *conflict)
			}
		}
	}

	// 3. Проверка занятости персон в будущих бронированиях
	personConflicts, err := d.personConflicts(ctx, c)
	if err != nil {
		return report, err
	}
	report.PersonConflicts = personConflicts

	return report, nil
}

// personConflicts ищет будущие активные бронирования невесты и жениха
// Сравнение имен без учета регистра выполняется на стороне БД
func (d *Detector) personConflicts(ctx context.Context, c Candidate) ([]domain.PersonConflict, error) {
	conflicts := make([]domain.PersonConflict, 0)

	persons := []struct {
		name string
		role domain.PersonRole
	}{
		{name: c.BrideName, role: domain.RoleBride},
		{name: c.GroomName, role: domain.RoleGroom},
	}

	for _, person := range persons {
		if person.name == "" {
			continue
		}

		bookings, err := d.bookingRepo.FindActiveForPerson(ctx, person.name, c.Today, c.ExcludeID)
		if err != nil {
			return nil, fmt.Errorf("conflicts.personConflicts - find bookings for %s: %w", person.role, err)
		}

		for _, booking := range bookings {
			conflicts = append(conflicts, domain.PersonConflict{
				Person:    person.name,
				Role:      person.role,
				BookingID: booking.ID,
				Couple:    booking.CoupleLabel(),
				Date:      booking.WeddingDate,
				Time:      booking.StartTime,
				Location:  booking.LocationName,
			})
		}
	}

	return conflicts, nil
}

// resourceConflict проверяет пересечение кандидата с существующим
// бронированием на общем ресурсе. Буферами расширяются ОБА интервала -
// переходное время нужно и до и после каждой церемонии.
func resourceConflict(candidate domain.Interval, booking *domain.Booking, resource domain.ResourceType, cfg domain.EngineConfig) (*domain.BookingConflict, error) {
	existing, err := domain.NewInterval(booking.StartTime, cfg.CeremonyDurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("conflicts.resourceConflict - build interval for booking %d: %w", booking.ID, err)
	}

	buffer := cfg.BufferFor(resource)
	if !candidate.WithBuffer(buffer, buffer).Overlaps(existing.WithBuffer(buffer, buffer)) {
		return nil, nil
	}

	diff := candidate.Start - existing.Start
	if diff < 0 {
		diff = -diff
	}

	conflict := &domain.BookingConflict{
		BookingID:       booking.ID,
		Couple:          booking.CoupleLabel(),
		Date:            booking.WeddingDate,
		Time:            booking.StartTime,
		TimeDiffMinutes: diff,
	}

	// Для конфликта места показываем целебранта, для целебранта - место
	if resource == domain.ResourceLocation {
		conflict.CelebrantName = booking.CelebrantName
	} else {
		conflict.LocationName = booking.LocationName
	}

	return conflict, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
)

// UseCase use case создания бронирования венчания
// Проверка конфликтов и вставка выполняются в одной сериализуемой
// транзакции - иначе два параллельных запроса могут оба увидеть
// свободный слот и оба сохраниться
type UseCase struct {
	bookingRepo     BookingRepository
	resourceService ResourceService
	configService   ConfigService
	detector        ConflictDetector
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceService ResourceService,
	configService ConfigService,
	detector ConflictDetector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		resourceService: resourceService,
		configService:   configService,
		detector:        detector,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, location=%d, celebrant=%d",
		req.Date, req.Time, req.LocationID, req.CelebrantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование и активность места
	location, err := uc.resourceService.GetActiveLocation(ctx, req.LocationID)
	if err != nil {
		uc.logger.Warn("CreateBooking: location id=%d unavailable: %v", req.LocationID, err)
		return nil, ErrLocationNotFound
	}

	// 4. Проверяем существование и активность целебранта
	celebrant, err := uc.resourceService.GetActiveCelebrant(ctx, req.CelebrantID)
	if err != nil {
		uc.logger.Warn("CreateBooking: celebrant id=%d unavailable: %v", req.CelebrantID, err)
		return nil, ErrCelebrantNotFound
	}

	// 5. Нормализация имен и телефонов
	brideName := normalizeName(req.BrideName)
	groomName := normalizeName(req.GroomName)
	bridePhone, _ := normalizePhone(req.BridePhone)
	groomPhone, _ := normalizePhone(req.GroomPhone)

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем проверку конфликтов и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем конфигурацию движка
		cfg, err := uc.configService.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load engine config: %v", err)
			return fmt.Errorf("%w: failed to load engine config: %v", ErrInternal, err)
		}

		// 6.2. Временные правила - при сохранении достаточно первого нарушения
		temporal := domain.ValidateTemporal(req.Date, req.Time, now, cfg)
		if violation := temporal.First(); violation != nil {
			uc.logger.Warn("CreateBooking: temporal rule %s violated", violation.Rule)
			return fmt.Errorf("%w: %s", ErrTemporalViolation, violation.Message)
		}

		// 6.3. Проверяем конфликты; выборка дня блокирует строки (FOR UPDATE)
		report, err := uc.detector.Detect(txCtx, conflicts.Candidate{
			Date:        temporal.Date,
			StartTime:   temporal.Time,
			LocationID:  req.LocationID,
			CelebrantID: req.CelebrantID,
			BrideName:   brideName,
			GroomName:   groomName,
			Today:       domain.DateOnly(now),
		}, cfg)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict detection failed: %v", err)
			return fmt.Errorf("%w: conflict detection failed: %v", ErrInternal, err)
		}

		if report.HasConflicts() {
			uc.logger.Warn("CreateBooking: slot taken (location=%d, celebrant=%d, person=%d)",
				len(report.LocationConflicts), len(report.CelebrantConflicts), len(report.PersonConflicts))
			return ErrBookingConflict
		}

		// 6.4. Сохраняем бронирование
		booking := &domain.Booking{
			WeddingDate: temporal.Date,
			StartTime:   temporal.Time,
			LocationID:  req.LocationID,
			CelebrantID: req.CelebrantID,
			BrideName:   brideName,
			BridePhone:  bridePhone,
			GroomName:   groomName,
			GroomPhone:  groomPhone,
			Status:      domain.StatusActive,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingConflict) || errors.Is(err, ErrTemporalViolation) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	// 7. Денормализованные имена для ответа
	result.LocationName = location.Name
	result.CelebrantName = celebrant.FullName

	uc.logger.Info("CreateBooking: booking id=%d created", result.ID)

	return &Response{Booking: result}, nil
}

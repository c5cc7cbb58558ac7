package get_free_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/slots"
)

// UseCase use case получения свободных слотов ресурса
type UseCase struct {
	configService ConfigService
	slotGenerator SlotGenerator
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configService ConfigService, slotGenerator SlotGenerator, logger Logger) *UseCase {
	return &UseCase{
		configService: configService,
		slotGenerator: slotGenerator,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: date=%s, resource=%s, id=%d", req.Date, req.Resource, req.ResourceID)

	// 1. Валидация входных данных
	resource, err := domain.ParseResourceType(req.Resource)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: unknown resource type %q", req.Resource)
		return nil, fmt.Errorf("%w: resource must be location or celebrant", ErrInvalidRequest)
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resource id must be positive", ErrInvalidRequest)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	}

	// 2. Получаем конфигурацию движка
	cfg, err := uc.configService.Get(ctx)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to load engine config: %v", err)
		return nil, fmt.Errorf("%w: failed to load engine config: %v", ErrInternal, err)
	}

	// 3. Перечисляем свободные слоты
	free, err := uc.slotGenerator.FreeSlots(ctx, slots.Query{
		Date:       date,
		Resource:   resource,
		ResourceID: req.ResourceID,
		Now:        uc.timeProvider.Now(),
	}, cfg)
	if err != nil {
		uc.logger.Error("GetFreeSlots: slot enumeration failed: %v", err)
		return nil, fmt.Errorf("%w: slot enumeration failed: %v", ErrInternal, err)
	}

	return &Response{
		Date:     date,
		Resource: resource,
		Slots:    free,
	}, nil
}

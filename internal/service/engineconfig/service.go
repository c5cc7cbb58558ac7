package engineconfig

import (
	"context"
	"fmt"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// Service сервис параметров движка бронирования
// Конфигурация загружается на каждый запрос и неизменна в его рамках
type Service struct {
	configRepo ConfigRepository
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository) *Service {
	return &Service{configRepo: configRepo}
}

// Get загружает текущую конфигурацию движка
func (s *Service) Get(ctx context.Context) (domain.EngineConfig, error) {
	return s.configRepo.Load(ctx)
}

// Update проверяет и сохраняет новую конфигурацию движка
func (s *Service) Update(ctx context.Context, cfg domain.EngineConfig) (domain.EngineConfig, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("engineconfig.Update - validate config: %w", err)
	}

	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return cfg, fmt.Errorf("engineconfig.Update - save config: %w", err)
	}

	return s.configRepo.Load(ctx)
}

package resources

import (
	"context"
	"errors"
	"strings"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

var (
	ErrEmptyName        = errors.New("resources.service: name is required")
	ErrInvalidType      = errors.New("resources.service: invalid celebrant type")
	ErrInactiveResource = errors.New("resources.service: resource is inactive")
)

// Service сервис справочника мест церемоний и целебрантов
type Service struct {
	resourceRepo ResourceRepository
}

// NewService создает новый экземпляр сервиса справочника
func NewService(resourceRepo ResourceRepository) *Service {
	return &Service{resourceRepo: resourceRepo}
}

// ListLocations получает все активные места церемоний
func (s *Service) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.resourceRepo.ListLocations(ctx)
}

// GetActiveLocation получает место и проверяет что оно активно
func (s *Service) GetActiveLocation(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := s.resourceRepo.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !location.Active {
		return nil, ErrInactiveResource
	}
	return location, nil
}

// CreateLocation создает новое место церемонии
func (s *Service) CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error) {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return nil, ErrEmptyName
	}
	return s.resourceRepo.CreateLocation(ctx, l)
}

// ListCelebrants получает всех активных целебрантов
func (s *Service) ListCelebrants(ctx context.Context) ([]*domain.Celebrant, error) {
	return s.resourceRepo.ListCelebrants(ctx)
}

// GetActiveCelebrant получает целебранта и проверяет что он активен
func (s *Service) GetActiveCelebrant(ctx context.Context, id int64) (*domain.Celebrant, error) {
	celebrant, err := s.resourceRepo.GetCelebrant(ctx, id)
	if err != nil {
		return nil, err
	}
	if !celebrant.Active {
		return nil, ErrInactiveResource
	}
	return celebrant, nil
}

// CreateCelebrant создает нового целебранта
func (s *Service) CreateCelebrant(ctx context.Context, c *domain.Celebrant) (*domain.Celebrant, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	if c.FullName == "" {
		return nil, ErrEmptyName
	}
	if c.Type != domain.CelebrantPriest && c.Type != domain.CelebrantDeacon {
		return nil, ErrInvalidType
	}
	return s.resourceRepo.CreateCelebrant(ctx, c)
}

package resources

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// ResourceRepository интерфейс репозитория мест и целебрантов
type ResourceRepository interface {
	ListLocations(ctx context.Context) ([]*domain.Location, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error)
	ListCelebrants(ctx context.Context) ([]*domain.Celebrant, error)
	GetCelebrant(ctx context.Context, id int64) (*domain.Celebrant, error)
	CreateCelebrant(ctx context.Context, c *domain.Celebrant) (*domain.Celebrant, error)
}

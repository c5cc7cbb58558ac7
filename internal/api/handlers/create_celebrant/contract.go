package create_celebrant

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type ResourceService interface {
	CreateCelebrant(ctx context.Context, c *domain.Celebrant) (*domain.Celebrant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

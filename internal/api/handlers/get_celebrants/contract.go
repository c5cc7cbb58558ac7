package get_celebrants

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type ResourceService interface {
	ListCelebrants(ctx context.Context) ([]*domain.Celebrant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

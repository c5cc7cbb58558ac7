package create_location

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type ResourceService interface {
	CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

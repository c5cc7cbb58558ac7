package get_locations

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type ResourceService interface {
	ListLocations(ctx context.Context) ([]*domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_statistics

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type BookingService interface {
	Statistics(ctx context.Context, year int) (domain.Statistics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

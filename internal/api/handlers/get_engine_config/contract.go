package get_engine_config

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type ConfigService interface {
	Get(ctx context.Context) (domain.EngineConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

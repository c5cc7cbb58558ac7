package engineconfig

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

// ConfigRepository интерфейс хранилища параметров движка
type ConfigRepository interface {
	// Load загружает конфигурацию движка, отсутствующие ключи
	// заполняются значениями по умолчанию
	Load(ctx context.Context) (domain.EngineConfig, error)
	// Save сохраняет конфигурацию движка
	Save(ctx context.Context, cfg domain.EngineConfig) error
}

package suggestions

import (
	"context"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/internal/service/slots"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// SlotGenerator интерфейс генератора свободных слотов
type SlotGenerator interface {
	// FreeCombinedSlots возвращает времена, свободные у места и целебранта
	FreeCombinedSlots(ctx context.Context, q slots.CombinedQuery, cfg domain.EngineConfig) ([]types.TimeString, error)
}

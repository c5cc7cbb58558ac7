package get_free_slots

import (
	"time"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/types"
)

// Request запрос свободных слотов ресурса на дату
type Request struct {
	Date       string // YYYY-MM-DD
	Resource   string // location | celebrant
	ResourceID int64
}

// Response список свободных времен начала
type Response struct {
	Date     time.Time
	Resource domain.ResourceType
	Slots    []types.TimeString
}

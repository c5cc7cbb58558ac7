package get_free_slots

import (
	"github.com/jaysonsaraujo/phm-app/internal/domain"
	getFreeSlots "github.com/jaysonsaraujo/phm-app/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	Date     string   `json:"date"`
	Resource string   `json:"resource"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]string, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, slot.String())
	}

	return &FreeSlotsResponse{
		Date:     result.Date.Format(domain.DateFormat),
		Resource: string(result.Resource),
		Slots:    slots,
	}
}

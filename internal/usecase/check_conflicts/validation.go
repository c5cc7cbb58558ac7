package check_conflicts

import (
	"fmt"
	"strings"
)

// validateRequest проверяет обязательные поля запроса
// Временные правила проверяются отдельно полным отчетом
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidRequest)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: location_id must be positive", ErrInvalidRequest)
	}
	if req.CelebrantID <= 0 {
		return fmt.Errorf("%w: celebrant_id must be positive", ErrInvalidRequest)
	}
	return nil
}

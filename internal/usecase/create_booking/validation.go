package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет обязательные поля запроса
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
	if strings.TrimSpace(req.BrideName) == "" {
		return fmt.Errorf("%w: bride_name is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.GroomName) == "" {
		return fmt.Errorf("%w: groom_name is required", ErrInvalidRequest)
	}
	if _, err := normalizePhone(req.BridePhone); err != nil {
		return fmt.Errorf("%w: bride_phone: %v", ErrInvalidRequest, err)
	}
	if _, err := normalizePhone(req.GroomPhone); err != nil {
		return fmt.Errorf("%w: groom_phone: %v", ErrInvalidRequest, err)
	}
	return nil
}

// normalizeName приводит имя к каноническому виду хранения
// Имена хранятся в верхнем регистре, сравнение дубликатов персон
// выполняется без учета регистра
func normalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// normalizePhone форматирует бразильский телефон как (DD) NNNNN-NNNN
// Принимаются 10 цифр (стационарный) или 11 цифр (мобильный)
func normalizePhone(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch len(digits) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:]), nil
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:]), nil
	default:
		return "", fmt.Errorf("expected 10 or 11 digits, got %d", len(digits))
	}
}

package get_free_slots

import "errors"

var (
	ErrInvalidRequest = errors.New("get_free_slots: invalid request")
	ErrInternal       = errors.New("get_free_slots: internal error")
)

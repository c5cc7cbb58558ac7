package check_conflicts

import "errors"

var (
	ErrInvalidRequest = errors.New("check_conflicts: invalid request")
	ErrInternal       = errors.New("check_conflicts: internal error")
)

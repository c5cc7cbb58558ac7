package bookings

import "errors"

var (
	ErrCannotCancel  = errors.New("bookings.service: booking cannot be cancelled")
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")
)

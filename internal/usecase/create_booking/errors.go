package create_booking

import "errors"

var (
	ErrInvalidRequest    = errors.New("create_booking: invalid request")
	ErrTemporalViolation = errors.New("create_booking: temporal rule violated")
	ErrBookingConflict   = errors.New("create_booking: booking conflicts with existing bookings")
	ErrLocationNotFound  = errors.New("create_booking: location not found or inactive")
	ErrCelebrantNotFound = errors.New("create_booking: celebrant not found or inactive")
	ErrInternal          = errors.New("create_booking: internal error")
)

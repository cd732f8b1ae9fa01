package domain

import "errors"

var (
	// ErrUnknownRoom the room is not part of the facility
	ErrUnknownRoom = errors.New("domain: room is not part of the facility")

	// ErrOutsideWindow the start time is outside the operating window
	ErrOutsideWindow = errors.New("domain: start time is outside the operating window")

	// ErrInvalidBooking a booking field is malformed or out of range
	ErrInvalidBooking = errors.New("domain: invalid booking data")
)

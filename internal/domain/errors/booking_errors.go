package errors

import "errors"

var (
	// ErrHallNotFound indicates that the requested hall does not exist
	ErrHallNotFound = errors.New("hall not found")

	// ErrBookingNotFound indicates that the requested booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDatesUnavailable indicates that the hall already has a pending or
	// confirmed booking overlapping the requested date range
	ErrDatesUnavailable = errors.New("hall not available for selected dates")
)

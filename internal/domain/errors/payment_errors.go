package errors

import "errors"

var (
	// ErrPaymentNotFound indicates that no payment record matches the lookup
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrUnknownProvider indicates an unrecognized payment provider name
	ErrUnknownProvider = errors.New("unknown payment provider")
)

package calculator

import "errors"

var (
	// ErrInvalidDigit is returned when a digit button is pressed with a value outside 0..9
	ErrInvalidDigit = errors.New("digit must be between 0 and 9")

	// ErrUnknownOperation is returned for operations other than add, subtract, multiply and divide
	ErrUnknownOperation = errors.New("unknown operation")
)

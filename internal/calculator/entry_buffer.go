package calculator

import (
	"fmt"
	"strconv"
)

// EntryBuffer collects the number the user is typing. The digits and decimal
// point are kept as text; the sign is a separate flag so negate can toggle it
// at any point during entry.
type EntryBuffer struct {
	digits          string
	hasDecimalPoint bool
	isNegative      bool

	// onError is called when an extra decimal point is rejected
	onError func()
}

// NewEntryBuffer creates an empty entry buffer. onError may be nil.
func NewEntryBuffer(onError func()) *EntryBuffer {
	return &EntryBuffer{onError: onError}
}

// Clear resets the buffer to its initial state
func (b *EntryBuffer) Clear() {
	b.digits = ""
	b.hasDecimalPoint = false
	b.isNegative = false
}

// EnterDigit appends a digit. A lone leading zero is replaced rather than kept.
func (b *EntryBuffer) EnterDigit(digit int) error {
	if err := validateDigit(digit); err != nil {
		return err
	}

	if b.digits == "0" {
		b.digits = strconv.Itoa(digit)
	} else {
		b.digits += strconv.Itoa(digit)
	}
	return nil
}

// EnterDecimalPoint appends a decimal point, inserting a leading zero if
// nothing has been typed yet. A second decimal point leaves the buffer
// unchanged and triggers the error callback.
func (b *EntryBuffer) EnterDecimalPoint() {
	if b.hasDecimalPoint {
		if b.onError != nil {
			b.onError()
		}
		return
	}

	if b.digits == "" {
		b.digits = "0"
	}
	b.digits += "."
	b.hasDecimalPoint = true
}

// Negate toggles the sign
func (b *EntryBuffer) Negate() {
	b.isNegative = !b.isNegative
}

// IsEmpty reports whether the buffer is in its post-Clear state
func (b *EntryBuffer) IsEmpty() bool {
	return b.digits == "" && !b.hasDecimalPoint && !b.isNegative
}

// String returns the buffer as it should appear on the display
func (b *EntryBuffer) String() string {
	text := b.digits
	if text == "" {
		text = "0"
	}
	if b.isNegative {
		return "-" + text
	}
	return text
}

// Value parses the displayed text, falling back to 0 if it is not a number
func (b *EntryBuffer) Value() float64 {
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func validateDigit(digit int) error {
	if digit < 0 || digit > 9 {
		return fmt.Errorf("%w: got %d", ErrInvalidDigit, digit)
	}
	return nil
}

// Package calculator implements the input and compute engine of a
// four-function pocket calculator.
//
// A Calculator has two registers. The accumulator is both the first operand
// and the destination of results; the argument register holds the second
// operand. Button presses either edit the active register through an
// EntryBuffer or act on its settled value. Callers press buttons and then read
// Display and ClearLabel to refresh the screen.
//
// A Calculator is not safe for concurrent use.
package calculator

import "fmt"

const (
	// AllClearLabel is shown on the clear button when pressing it resets everything
	AllClearLabel = "AC"
	// ClearEntryLabel is shown on the clear button when pressing it clears only the current entry
	ClearEntryLabel = "C"
)

type register int

const (
	accumulatorRegister register = iota
	argumentRegister
)

// Calculator holds the state behind the calculator's display
type Calculator struct {
	accumulator float64
	argument    float64
	operation   Operation
	active      register

	// editing is true while keystrokes build up the entry buffer rather than
	// a settled register value being displayed
	editing bool

	enteredNumberSinceReset bool

	// negateArmsEditing makes negate start a fresh entry instead of flipping
	// the displayed value. It is set right after an operator so that "+ ± 5"
	// enters -5 as the argument.
	negateArmsEditing bool

	entry   *EntryBuffer
	onFlash func()
}

// New creates a calculator in its all-clear state. onFlash, if non-nil, is
// called whenever the display should visibly flash: after an all clear and
// when an extra decimal point is rejected. It must not call back into the
// calculator.
func New(onFlash func()) *Calculator {
	c := &Calculator{onFlash: onFlash}
	c.entry = NewEntryBuffer(c.flash)
	c.reset()
	return c
}

func (c *Calculator) flash() {
	if c.onFlash != nil {
		c.onFlash()
	}
}

// setEditing changes the editing flag. Entering editing clears the entry
// buffer, and any assignment disarms negate.
func (c *Calculator) setEditing(editing bool) {
	if !c.editing && editing {
		c.entry.Clear()
	}
	c.editing = editing
	c.negateArmsEditing = false
}

func (c *Calculator) activeValue() float64 {
	if c.active == argumentRegister {
		return c.argument
	}
	return c.accumulator
}

func (c *Calculator) setActiveValue(v float64) {
	if c.active == argumentRegister {
		c.argument = positiveZero(v)
	} else {
		c.accumulator = positiveZero(v)
	}
}

func (c *Calculator) reset() {
	c.enteredNumberSinceReset = false
	c.accumulator = 0
	c.operation = Add
	c.argument = 0
	c.active = accumulatorRegister
	c.entry.Clear()
	c.setEditing(false)
	// Must follow setEditing, which disarms negate.
	c.negateArmsEditing = true
}

// ClearLabel returns the text for the clear button: "AC" until a number has
// been entered since the last clear, "C" afterwards
func (c *Calculator) ClearLabel() string {
	if c.enteredNumberSinceReset {
		return ClearEntryLabel
	}
	return AllClearLabel
}

// Clear implements the clear button. As "AC" it resets the calculator and
// flashes the display; as "C" it zeroes only the register being entered.
func (c *Calculator) Clear() {
	if !c.enteredNumberSinceReset {
		c.reset()
		c.flash()
	} else {
		c.entry.Clear()
		c.setActiveValue(c.entry.Value())
	}
	c.enteredNumberSinceReset = false
}

// Digit implements the 0-9 buttons
func (c *Calculator) Digit(digit int) error {
	if err := validateDigit(digit); err != nil {
		return err
	}

	c.setEditing(true)
	if err := c.entry.EnterDigit(digit); err != nil {
		return err
	}
	c.setActiveValue(c.entry.Value())
	c.enteredNumberSinceReset = true
	return nil
}

// DecimalPoint implements the decimal point button. An extra decimal point is
// ignored and flashes the display.
func (c *Calculator) DecimalPoint() {
	c.setEditing(true)
	c.entry.EnterDecimalPoint()
	c.setActiveValue(c.entry.Value())
	c.enteredNumberSinceReset = true
}

// Operation implements the operator buttons. There is no precedence: a
// calculation already in progress is completed first and its result becomes
// the first operand of op.
func (c *Calculator) Operation(op Operation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownOperation, int(op))
	}

	if c.editing && c.active == argumentRegister {
		c.calculate()
	}
	c.setEditing(false)
	c.operation = op
	c.argument = c.accumulator
	c.active = argumentRegister
	c.negateArmsEditing = true
	return nil
}

// Negate implements the +/- button. Right after an operator (or an all clear)
// it starts entering a new negative number; otherwise it negates the value on
// the display.
func (c *Calculator) Negate() {
	if c.negateArmsEditing {
		c.setEditing(true)
	}

	if c.editing {
		c.entry.Negate()
		c.setActiveValue(c.entry.Value())
		c.enteredNumberSinceReset = true
	} else {
		c.setActiveValue(-c.activeValue())
	}
}

// Percent implements the % button, dividing the displayed register by 100
func (c *Calculator) Percent() {
	c.setEditing(false)
	c.setActiveValue(c.activeValue() / 100)
}

// Equals implements the = button. Pressing it again repeats the last
// operation with the same argument, so 1 + 1 = = = shows 4.
func (c *Calculator) Equals() {
	c.calculate()
}

func (c *Calculator) calculate() {
	c.setEditing(false)
	c.accumulator = positiveZero(c.operation.Apply(c.accumulator, c.argument))
	c.active = accumulatorRegister
}

// Display returns the text on the calculator's display
func (c *Calculator) Display() string {
	if c.editing {
		return c.entry.String()
	}
	return FormatNumber(c.activeValue())
}

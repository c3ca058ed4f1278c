package calculator

import (
	"fmt"
	"strings"
)

// Operation is one of the four arithmetic operator buttons
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

var operationSymbols = map[Operation]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "×",
	Divide:   "÷",
}

var operationAliases = map[string]Operation{
	"+":        Add,
	"add":      Add,
	"plus":     Add,
	"-":        Subtract,
	"subtract": Subtract,
	"minus":    Subtract,
	"*":        Multiply,
	"x":        Multiply,
	"×":        Multiply,
	"multiply": Multiply,
	"times":    Multiply,
	"/":        Divide,
	"÷":        Divide,
	"divide":   Divide,
}

// ParseOperation maps an operator symbol or name to an Operation
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Add, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// String returns the symbol printed on the operator button
func (op Operation) String() string {
	if s, ok := operationSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Valid reports whether op is one of the four supported operations
func (op Operation) Valid() bool {
	_, ok := operationSymbols[op]
	return ok
}

// Apply computes lhs op rhs. Division by zero yields an IEEE-754 infinity or NaN.
func (op Operation) Apply(lhs, rhs float64) float64 {
	switch op {
	case Subtract:
		return lhs - rhs
	case Multiply:
		return lhs * rhs
	case Divide:
		return lhs / rhs
	default:
		return lhs + rhs
	}
}

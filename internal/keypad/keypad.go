// Package keypad translates compact key strings such as "12+3.5=" into
// calculator button presses.
package keypad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// ErrUnknownKey is returned by Parse for characters that are not calculator keys
var ErrUnknownKey = errors.New("unknown key")

// Kind identifies which button a Key presses
type Kind int

const (
	KindDigit Kind = iota
	KindDecimalPoint
	KindOperation
	KindNegate
	KindPercent
	KindEquals
	KindClear
)

// Key is a single button press
type Key struct {
	Kind      Kind
	Digit     int
	Operation calculator.Operation
}

// Digit returns the key for a digit button
func Digit(d int) Key { return Key{Kind: KindDigit, Digit: d} }

// Op returns the key for an operator button
func Op(op calculator.Operation) Key { return Key{Kind: KindOperation, Operation: op} }

var (
	DecimalPoint = Key{Kind: KindDecimalPoint}
	Negate       = Key{Kind: KindNegate}
	Percent      = Key{Kind: KindPercent}
	Equals       = Key{Kind: KindEquals}
	Clear        = Key{Kind: KindClear}
)

// Parse converts a key string into keys. Digits, '.', '%', '=' and the
// operator symbols map to their buttons; '~' or '±' is negate and 'c' is
// clear. Whitespace is ignored.
func Parse(s string) ([]Key, error) {
	keys := make([]Key, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		key, err := parseRune(r)
		if err != nil {
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownKey, r, i)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func parseRune(r rune) (Key, error) {
	switch {
	case r >= '0' && r <= '9':
		return Digit(int(r - '0')), nil
	case r == '.':
		return DecimalPoint, nil
	case r == '~' || r == '±':
		return Negate, nil
	case r == '%':
		return Percent, nil
	case r == '=':
		return Equals, nil
	case r == 'c' || r == 'C':
		return Clear, nil
	}

	op, err := calculator.ParseOperation(string(r))
	if err != nil {
		return Key{}, err
	}
	return Op(op), nil
}

// Press applies the key to c
func (k Key) Press(c *calculator.Calculator) error {
	switch k.Kind {
	case KindDigit:
		return c.Digit(k.Digit)
	case KindDecimalPoint:
		c.DecimalPoint()
	case KindOperation:
		return c.Operation(k.Operation)
	case KindNegate:
		c.Negate()
	case KindPercent:
		c.Percent()
	case KindEquals:
		c.Equals()
	case KindClear:
		c.Clear()
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownKey, int(k.Kind))
	}
	return nil
}

// String returns the glyph printed on the key's button
func (k Key) String() string {
	switch k.Kind {
	case KindDigit:
		return strconv.Itoa(k.Digit)
	case KindDecimalPoint:
		return "."
	case KindOperation:
		return k.Operation.String()
	case KindNegate:
		return "±"
	case KindPercent:
		return "%"
	case KindEquals:
		return "="
	case KindClear:
		return "C"
	default:
		return "?"
	}
}

// Replay presses every key in order, stopping at the first error
func Replay(c *calculator.Calculator, keys []Key) error {
	for i, k := range keys {
		if err := k.Press(c); err != nil {
			return fmt.Errorf("failed to press key %d (%s): %w", i, k, err)
		}
	}
	return nil
}

// Format renders keys back into a key string
func Format(keys []Key) string {
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k.String())
	}
	return b.String()
}

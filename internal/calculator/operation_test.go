package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input    string
		expected Operation
	}{
		{input: "+", expected: Add},
		{input: "add", expected: Add},
		{input: "-", expected: Subtract},
		{input: "Subtract", expected: Subtract},
		{input: "*", expected: Multiply},
		{input: "x", expected: Multiply},
		{input: "×", expected: Multiply},
		{input: " multiply ", expected: Multiply},
		{input: "/", expected: Divide},
		{input: "÷", expected: Divide},
		{input: "DIVIDE", expected: Divide},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := ParseOperation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestParseOperationUnknown(t *testing.T) {
	for _, input := range []string{"", "^", "mod", "%"} {
		_, err := ParseOperation(input)
		assert.ErrorIs(t, err, ErrUnknownOperation, "input %q", input)
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "+", Add.String())
	assert.Equal(t, "-", Subtract.String())
	assert.Equal(t, "×", Multiply.String())
	assert.Equal(t, "÷", Divide.String())
	assert.Equal(t, "Operation(9)", Operation(9).String())
	assert.False(t, Operation(9).Valid())
}

func TestOperationApply(t *testing.T) {
	assert.Equal(t, 5.0, Add.Apply(2, 3))
	assert.Equal(t, -1.0, Subtract.Apply(2, 3))
	assert.Equal(t, 6.0, Multiply.Apply(2, 3))
	assert.Equal(t, 0.5, Divide.Apply(1, 2))
	assert.True(t, math.IsInf(Divide.Apply(1, 0), 1))
	assert.True(t, math.IsNaN(Divide.Apply(0, 0)))
}

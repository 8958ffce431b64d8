package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantityString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int64
	}{
		{
			name:     "quantidades separadas por +",
			input:    "10+20+30",
			expected: []int64{10, 20, 30},
		},
		{
			name:     "espaços normalizados para +",
			input:    "10  20",
			expected: []int64{10, 20},
		},
		{
			name:     "mistura de espaços e +",
			input:    " 5 + 7 ",
			expected: []int64{5, 7},
		},
		{
			name:     "segmentos inválidos descartados",
			input:    "abc+5",
			expected: []int64{5},
		},
		{
			name:     "string vazia",
			input:    "",
			expected: nil,
		},
		{
			name:     "apenas lixo",
			input:    "abc+def",
			expected: nil,
		},
		{
			name:     "segmentos vazios entre sinais",
			input:    "10++20",
			expected: []int64{10, 20},
		},
		{
			name:     "ordem preservada",
			input:    "3+1+2",
			expected: []int64{3, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuantityString(tt.input))
		})
	}
}

// O parse deve ser idempotente sob o round-trip pela forma canônica "a+b+c".
func TestParseQuantityStringRoundTrip(t *testing.T) {
	inputs := []string{"10+20+30", "10  20", "abc+5", "1", " 42 7 ", "10++20"}

	for _, input := range inputs {
		first := ParseQuantityString(input)
		second := ParseQuantityString(JoinQuantities(first))
		assert.Equal(t, first, second, "input: %q", input)
	}
}

func TestSumQuantities(t *testing.T) {
	assert.Equal(t, int64(60), SumQuantities([]int64{10, 20, 30}))
	assert.Equal(t, int64(0), SumQuantities(nil))
}

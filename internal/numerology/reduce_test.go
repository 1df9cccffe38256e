package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{name: "zero", n: 0, expected: 0},
		{name: "negative", n: -5, expected: 0},
		{name: "single digit", n: 7, expected: 7},
		{name: "nine stays nine", n: 9, expected: 9},
		{name: "ten", n: 10, expected: 1},
		{name: "two passes", n: 38, expected: 2},
		{name: "ninety nine", n: 99, expected: 9},
		{name: "typical base sum", n: 2066, expected: 5},
		{name: "large", n: 123456789, expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reduce(tt.n))
		})
	}
}

func TestReduceRangeAndIdempotence(t *testing.T) {
	for n := 0; n <= 1000; n++ {
		r := Reduce(n)
		if n == 0 {
			assert.Equal(t, 0, r)
		} else {
			assert.GreaterOrEqual(t, r, 1, "Reduce(%d)", n)
			assert.LessOrEqual(t, r, 9, "Reduce(%d)", n)
		}
		assert.Equal(t, r, Reduce(r), "Reduce must be idempotent at %d", n)
	}
}

package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToStr(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "string", input: "alice", expected: "alice"},
		{name: "int", input: 42, expected: "42"},
		{name: "int64", input: int64(7), expected: "7"},
		{name: "bool", input: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToStr(tt.input))
		})
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		def      int64
		expected int64
	}{
		{name: "numeric string", input: "42", def: 0, expected: 42},
		{name: "padded numeric string", input: " 7 ", def: 0, expected: 7},
		{name: "int", input: 9, def: 0, expected: 9},
		{name: "nil uses default", input: nil, def: -1, expected: -1},
		{name: "empty string uses default", input: "", def: -1, expected: -1},
		{name: "malformed string uses default", input: "abc", def: -1, expected: -1},
		{name: "malformed with zero default", input: "12x", def: 0, expected: 0},
		{name: "leading zero is decimal", input: "010", def: -1, expected: 10},
		{name: "leading zero with non-octal digit", input: "08", def: -1, expected: 8},
		{name: "negative leading zero", input: "-010", def: -1, expected: -10},
		{name: "hex uses default", input: "0x1F", def: -1, expected: -1},
		{name: "binary uses default", input: "0b11", def: -1, expected: -1},
		{name: "octal prefix uses default", input: "0o17", def: -1, expected: -1},
		{name: "underscore uses default", input: "1_000", def: -1, expected: -1},
		{name: "fraction truncates", input: "1.5", def: -1, expected: 1},
		{name: "negative fraction truncates toward zero", input: "-1.9", def: -1, expected: -1},
		{name: "exponent", input: "1e3", def: -1, expected: 1000},
		{name: "tiny exponent", input: "1e-9", def: -1, expected: 0},
		{name: "max int64", input: "9223372036854775807", def: -1, expected: 9223372036854775807},
		{name: "min int64", input: "-9223372036854775808", def: -1, expected: -9223372036854775808},
		{name: "overflow uses default", input: "9223372036854775808", def: -1, expected: -1},
		{name: "huge exponent uses default", input: "1e999999999", def: -1, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToInt64(tt.input, tt.def))
		})
	}
}

func TestTo(t *testing.T) {
	t.Run("string to int64", func(t *testing.T) {
		v, ok := To[int64]("15")
		assert.True(t, ok)
		assert.Equal(t, int64(15), v)
	})

	t.Run("leading zero string is decimal", func(t *testing.T) {
		v, ok := To[int64]("010")
		assert.True(t, ok)
		assert.Equal(t, int64(10), v)

		n, ok := To[int]("08")
		assert.True(t, ok)
		assert.Equal(t, 8, n)
	})

	t.Run("hex string is rejected", func(t *testing.T) {
		v, ok := To[int64]("0x1F")
		assert.False(t, ok)
		assert.Zero(t, v)

		n, ok := To[int]("0x1F")
		assert.False(t, ok)
		assert.Zero(t, n)
	})

	t.Run("overflowing string is rejected", func(t *testing.T) {
		v, ok := To[int64]("99999999999999999999")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("string to bool", func(t *testing.T) {
		v, ok := To[bool]("true")
		assert.True(t, ok)
		assert.True(t, v)
	})

	t.Run("string to duration", func(t *testing.T) {
		v, ok := To[time.Duration]("1s")
		assert.True(t, ok)
		assert.Equal(t, time.Second, v)
	})

	t.Run("identity", func(t *testing.T) {
		v, ok := To[[]string]([]string{"a", "b"})
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, v)
	})

	t.Run("malformed yields zero", func(t *testing.T) {
		v, ok := To[int]("not-a-number")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("nil yields zero", func(t *testing.T) {
		v, ok := To[string](nil)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("unsupported target", func(t *testing.T) {
		type custom struct{ A int }
		v, ok := To[custom]("x")
		assert.False(t, ok)
		assert.Equal(t, custom{}, v)
	})
}

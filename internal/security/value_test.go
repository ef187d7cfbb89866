package security

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		kind     Kind
		expected string
	}{
		{name: "nil", input: nil, kind: KindString, expected: ""},
		{name: "string", input: "x", kind: KindString, expected: "x"},
		{name: "int", input: 3, kind: KindInt, expected: "3"},
		{name: "int32", input: int32(-4), kind: KindInt, expected: "-4"},
		{name: "bool", input: false, kind: KindBool, expected: "false"},
		{name: "strings", input: []string{"p", "q"}, kind: KindStrings, expected: "p,q"},
		{name: "value passthrough", input: IntValue(9), kind: KindInt, expected: "9"},
		{name: "uint", input: uint(5), kind: KindInt, expected: "5"},
		{name: "uint64 in range", input: uint64(1 << 40), kind: KindInt, expected: "1099511627776"},
		{name: "uint64 max int64", input: uint64(math.MaxInt64), kind: KindInt, expected: "9223372036854775807"},
		{name: "uint64 above int64", input: uint64(math.MaxUint64), kind: KindString, expected: "18446744073709551615"},
		{name: "uintptr", input: uintptr(12), kind: KindInt, expected: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.input)

			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestValue_Int64(t *testing.T) {
	n, ok := IntValue(5).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	n, ok = StringValue("12").Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = StringValue("").Int64()
	assert.False(t, ok)

	_, ok = StringValue("nope").Int64()
	assert.False(t, ok)

	_, ok = BoolValue(true).Int64()
	assert.False(t, ok)
}

func TestValue_Bool(t *testing.T) {
	b, ok := BoolValue(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = StringValue("false").Bool()
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = IntValue(1).Bool()
	assert.False(t, ok)
}

func TestValue_Strings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringValue(" a ,b,").Strings())
	assert.Equal(t, []string{"x"}, StringsValue([]string{"x"}).Strings())
	assert.Equal(t, []string{"3"}, IntValue(3).Strings())
	assert.Empty(t, StringValue("").Strings())
}

func TestStringsValue_CopiesInput(t *testing.T) {
	list := []string{"a"}
	v := StringsValue(list)
	list[0] = "mutated"

	assert.Equal(t, "a", v.String())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.False(t, StringValue("1").Equal(IntValue(1)))
	assert.True(t, StringsValue([]string{"a"}).Equal(StringsValue([]string{"a"})))
	assert.False(t, BoolValue(true).Equal(BoolValue(false)))
}

func TestValue_ZeroIsEmpty(t *testing.T) {
	var v Value

	assert.True(t, v.IsEmpty())
	assert.Equal(t, KindString, v.Kind())
	assert.False(t, IntValue(0).IsEmpty())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "strings", KindStrings.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

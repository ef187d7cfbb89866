package security

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/pmhub/secctx/internal/platform/convert"
)

// Kind identifies the concrete type held by a Value.
type Kind uint8

const (
	// KindString is text. The zero Value is an empty KindString.
	KindString Kind = iota

	// KindInt is a signed 64-bit integer.
	KindInt

	// KindBool is a boolean flag.
	KindBool

	// KindStrings is a list of strings.
	KindStrings
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindStrings:
		return "strings"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a tagged variant stored under a key in a Store.
type Value struct {
	kind Kind
	str  string
	num  int64
	flag bool
	list []string
}

// StringValue returns a text value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue returns an integer value.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// StringsValue returns a list value. The slice is copied.
func StringsValue(list []string) Value {
	return Value{kind: KindStrings, list: slices.Clone(list)}
}

// ValueOf normalizes an arbitrary Go value. Nil becomes the Empty sentinel and
// types without a dedicated kind are stored as their textual form.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return StringValue(Empty)
	case Value:
		return x
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return IntValue(convert.ToInt64(x, 0))
	case uint:
		return unsignedValue(uint64(x))
	case uint64:
		return unsignedValue(x)
	case uintptr:
		return unsignedValue(uint64(x))
	case []string:
		return StringsValue(x)
	case fmt.Stringer:
		return StringValue(x.String())
	default:
		if s := convert.ToStr(x); s != "" {
			return StringValue(s)
		}
		return StringValue(fmt.Sprint(x))
	}
}

// unsignedValue keeps n as an integer when it fits in int64 and falls back to
// its decimal text otherwise, so large ids are never wrapped to negatives.
func unsignedValue(n uint64) Value {
	if n > math.MaxInt64 {
		return StringValue(strconv.FormatUint(n, 10))
	}

	return IntValue(int64(n))
}

// Kind reports the concrete type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the textual form. Lists are joined with commas.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindStrings:
		return strings.Join(v.list, ",")
	default:
		return v.str
	}
}

// Int64 returns the value as an integer. Text is parsed; ok is false when the
// value has no integer reading.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.num, true
	case KindString:
		n, ok := convert.To[int64](strings.TrimSpace(v.str))
		return n, ok && v.str != ""
	default:
		return 0, false
	}
}

// Bool returns the value as a boolean. Text is parsed.
func (v Value) Bool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.flag, true
	case KindString:
		return convert.To[bool](v.str)
	default:
		return false, false
	}
}

// Strings returns the value as a list. Text is split on commas and empty
// items are dropped.
func (v Value) Strings() []string {
	switch v.kind {
	case KindStrings:
		return slices.Clone(v.list)
	case KindString:
		return splitList(v.str)
	default:
		return []string{v.String()}
	}
}

// Any returns the underlying Go value.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindBool:
		return v.flag
	case KindStrings:
		return slices.Clone(v.list)
	default:
		return v.str
	}
}

// IsEmpty reports whether the value is the Empty sentinel.
func (v Value) IsEmpty() bool {
	return v.kind == KindString && v.str == Empty
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindInt:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindStrings:
		return slices.Equal(v.list, other.list)
	default:
		return v.str == other.str
	}
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	switch v.kind {
	case KindInt:
		return slog.Int64Value(v.num)
	case KindBool:
		return slog.BoolValue(v.flag)
	case KindStrings:
		return slog.AnyValue(slices.Clone(v.list))
	default:
		return slog.StringValue(v.str)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// Package convert turns loosely typed values into concrete Go types.
// Conversions never fail loudly: callers get a default instead of an error.
package convert

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// maxInt64Digits is the number of decimal digits in math.MaxInt64.
const maxInt64Digits = 19

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// ToStr returns the textual form of v. Nil yields an empty string.
func ToStr(v any) string {
	if v == nil {
		return ""
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}

	return s
}

// ToInt64 converts v to an int64, returning def when v is nil, empty
// or cannot be parsed. Strings are read as base-10 numbers and truncated
// toward zero, so "010" is 10 and "1.9" is 1; "0x1F" is not a number.
func ToInt64(v any, def int64) int64 {
	if v == nil {
		return def
	}

	if s, ok := v.(string); ok {
		n, ok := parseDecimal(s)
		if !ok {
			return def
		}

		return n
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return def
	}

	return n
}

// parseDecimal reads s as a base-10 number, plain or with a fraction or
// exponent, and truncates it toward zero. Values outside the int64 range
// are rejected.
func parseDecimal(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}

	// Check magnitude from the digit count before rescaling, so an input
	// like "1e999999999" is never expanded.
	magnitude := d.NumDigits() + int(d.Exponent())

	switch {
	case d.IsZero(), magnitude <= 0:
		return 0, true
	case magnitude > maxInt64Digits:
		return 0, false
	}

	d = d.Truncate(0)
	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return 0, false
	}

	return d.IntPart(), true
}

// To converts v to T. The boolean is false when v is nil or the
// conversion is not possible, in which case the zero value is returned.
func To[T any](v any) (T, bool) {
	var out T
	if v == nil {
		return out, false
	}

	if typed, ok := v.(T); ok {
		return typed, true
	}

	var err error

	switch p := any(&out).(type) {
	case *string:
		*p, err = cast.ToStringE(v)
	case *int:
		*p, err = toInt(v)
	case *int64:
		*p, err = toInt64(v)
	case *float64:
		*p, err = cast.ToFloat64E(v)
	case *bool:
		*p, err = cast.ToBoolE(v)
	case *[]string:
		*p, err = cast.ToStringSliceE(v)
	case *time.Duration:
		*p, err = cast.ToDurationE(v)
	default:
		return out, false
	}

	if err != nil {
		var zero T
		return zero, false
	}

	return out, true
}

func toInt64(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return cast.ToInt64E(v)
	}

	n, ok := parseDecimal(s)
	if !ok {
		return 0, strconv.ErrSyntax
	}

	return n, nil
}

func toInt(v any) (int, error) {
	if _, ok := v.(string); !ok {
		return cast.ToIntE(v)
	}

	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}

	if n < math.MinInt || n > math.MaxInt {
		return 0, strconv.ErrRange
	}

	return int(n), nil
}

package cast

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// ErrNotInteger indicates a value with a fractional part or exponent, or a
// string that is not an integer literal.
var ErrNotInteger = errors.New("not an integer")

// To converts v to the integer type T. Values that would need rounding are
// rejected with [ErrNotInteger].
func To[T Integer](v any) (T, error) {
	if isIntVal(v) {
		return safemath.ConvertAny[T](v)
	}

	// json.Number and other decoder number types.
	if s, ok := v.(fmt.Stringer); ok {
		v = s.String()
	}

	switch x := v.(type) {
	case string:
		if !isIntLiteral(x) {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, x)
		}
	case float32:
		if !isIntFloat(float64(x)) {
			return 0, fmt.Errorf("%w: %v", ErrNotInteger, x)
		}
	case float64:
		if !isIntFloat(x) {
			return 0, fmt.Errorf("%w: %v", ErrNotInteger, x)
		}
	}

	if isSigned[T]() {
		n, err := cast.ToInt64E(v)
		if err != nil {
			return 0, err
		}

		return safemath.ConvertAny[T](n)
	}

	n, err := cast.ToUint64E(v)
	if err != nil {
		return 0, err
	}

	return safemath.ConvertAny[T](n)
}

// isSigned reports whether T can hold negative values.
func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

// isIntLiteral reports whether s is an optionally signed integer literal in
// decimal or with a 0x, 0o or 0b prefix. Underscores may separate digits.
func isIntLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	digits := "0123456789"
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			digits, s = "0123456789abcdefABCDEF", s[2:]
		case 'o', 'O':
			digits, s = "01234567", s[2:]
		case 'b', 'B':
			digits, s = "01", s[2:]
		}
	}

	seen := false
	for _, c := range s {
		switch {
		case c == '_':
		case strings.ContainsRune(digits, c):
			seen = true
		default:
			return false
		}
	}

	return seen
}

// isIntFloat reports whether f is finite and has no fractional part.
func isIntFloat(f float64) bool {
	return !math.IsInf(f, 0) && math.Trunc(f) == f
}

package cast

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"go.dw1.io/safemath"
)

func TestIsSigned(t *testing.T) {
	cases := map[string][2]bool{
		"int":    {isSigned[int](), true},
		"int8":   {isSigned[int8](), true},
		"int64":  {isSigned[int64](), true},
		"uint":   {isSigned[uint](), false},
		"uint32": {isSigned[uint32](), false},
		"uint64": {isSigned[uint64](), false},
	}

	for name, c := range cases {
		if c[0] != c[1] {
			t.Fatalf("%s: expected signed=%v", name, c[1])
		}
	}
}

func TestToUsesSafemathForIntegerInputs(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := To[int8](int64(math.MaxInt8))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != int8(math.MaxInt8) {
			t.Fatalf("expected %d, got %d", int8(math.MaxInt8), got)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := To[int8](int64(math.MaxInt8) + 1)
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})

	t.Run("negativeToUnsigned", func(t *testing.T) {
		if _, err := To[uint64](-1); err == nil {
			t.Fatalf("expected error for negative input")
		}
	})
}

func TestToWithStrings(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want uint64
	}{
		{name: "decimal", in: "42", want: 42},
		{name: "hex", in: "0xdeadbeef", want: 0xdeadbeef},
		{name: "fullWidth", in: "0xffffffffffffffff", want: math.MaxUint64},
		{name: "jsonNumber", in: json.Number("18446744073709551615"), want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := To[uint64](tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}

	t.Run("signed", func(t *testing.T) {
		got, err := To[int]("-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != -7 {
			t.Fatalf("expected -7, got %d", got)
		}
	})

	t.Run("narrowingIsChecked", func(t *testing.T) {
		if _, err := To[uint32]("0x1ffffffff"); err == nil {
			t.Fatalf("expected error for a string wider than uint32")
		}
	})

	t.Run("negativeString", func(t *testing.T) {
		if _, err := To[uint64]("-1"); err == nil {
			t.Fatalf("expected error for negative input")
		}
	})

	t.Run("invalidString", func(t *testing.T) {
		if _, err := To[int]("not-a-number"); err == nil {
			t.Fatalf("expected error for invalid input")
		}
	})
}

func TestToRejectsFractions(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{name: "decimalString", in: "1.5"},
		{name: "exponentString", in: "1e3"},
		{name: "jsonFraction", in: json.Number("1.5")},
		{name: "jsonExponent", in: json.Number("1e3")},
		{name: "float", in: 1.5},
		{name: "float32", in: float32(0.25)},
		{name: "nan", in: math.NaN()},
		{name: "inf", in: math.Inf(1)},
		{name: "emptyString", in: ""},
		{name: "bareHexPrefix", in: "0x"},
		{name: "badHexDigit", in: "0xfg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := To[uint64](tt.in); !errors.Is(err, ErrNotInteger) {
				t.Fatalf("expected ErrNotInteger, got %v", err)
			}
		})
	}
}

func TestToAcceptsIntegralForms(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{name: "wholeFloat", in: float64(99), want: 99},
		{name: "octal", in: "0o17", want: 15},
		{name: "binary", in: "-0b101", want: -5},
		{name: "underscores", in: "1_000", want: 1000},
		{name: "plus", in: "+8", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := To[int64](tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

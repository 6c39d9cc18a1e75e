package value

import (
	"reflect"

	"golang.org/x/exp/constraints"

	"go.dw1.io/hashers"
)

// Integer writes v at the width of its kind, the same bytes [Encoder.Any]
// writes for it: one byte for int8, two for int16, four for int32 and eight
// for int64. int, uint and uintptr always take eight.
func Integer[T constraints.Integer](e *Encoder, v T) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8, reflect.Uint8:
		e.Uint8(uint8(v))
	case reflect.Int16, reflect.Uint16:
		e.Uint16(uint16(v))
	case reflect.Int32, reflect.Uint32:
		e.Uint32(uint32(v))
	default:
		e.Uint64(uint64(v))
	}
}

// Float writes v through [Encoder.Float64].
func Float[T constraints.Float](e *Encoder, v T) { e.Float64(float64(v)) }

// Slice writes the length of s followed by fn for each element.
func Slice[T any](e *Encoder, s []T, fn func(*Encoder, T)) {
	e.Len(len(s))
	for _, v := range s {
		fn(e, v)
	}
}

// Strings writes a sequence of strings.
func Strings(e *Encoder, s []string) { Slice(e, s, (*Encoder).String) }

// Integers writes a sequence of integers, each through [Integer].
func Integers[T constraints.Integer](e *Encoder, s []T) { Slice(e, s, Integer[T]) }

// HashOf returns the digest of the canonical encoding of v, using a fresh
// hasher from b.
func HashOf[D hashers.Digest](b hashers.Builder[D], seed hashers.Seed, v any) (D, error) {
	h := b.New(seed)
	if err := NewEncoder(h).Any(v); err != nil {
		return 0, err
	}
	return h.Digest(), nil
}

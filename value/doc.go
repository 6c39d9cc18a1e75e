// Package value streams typed Go values into a hash.Hash using a canonical
// byte encoding, so that equal keys produce equal digests on every platform.
//
// Encodings are little-endian and fixed width:
//
//   - bool, int8 and uint8 take one byte; int, uint and uintptr take eight.
//   - Floats are written as IEEE-754 bits with -0 folded to +0 and every NaN
//     folded to one quiet NaN.
//   - Strings, byte slices and sequences carry a uint64 length prefix. A
//     string and a byte slice with the same content encode the same.
//   - Pointers and interfaces write 0 when nil and 1 before the element.
//   - Structs write their exported fields in declaration order. A field
//     tagged `hash:"-"` is skipped.
//
// Maps, channels, funcs and unsafe pointers have no canonical encoding and
// are rejected with [ErrUnsupported].
package value

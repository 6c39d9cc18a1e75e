package value

import (
	"encoding/binary"
	"hash"
	"math"
	"time"
)

const (
	canonicalNaN64 uint64 = 0x7ff8000000000000
	canonicalNaN32 uint32 = 0x7fc00000
)

// Hashable is implemented by records that encode their own fields.
type Hashable interface {
	HashTo(e *Encoder)
}

// Encoder writes canonical encodings to a hash. Encoding never allocates and
// never fails; hash.Hash writes do not return errors.
type Encoder struct {
	h       hash.Hash
	scratch [8]byte
}

// NewEncoder returns an Encoder writing to h.
func NewEncoder(h hash.Hash) *Encoder { return &Encoder{h: h} }

// Hash returns the underlying hash.
func (e *Encoder) Hash() hash.Hash { return e.h }

// Write writes p without a length prefix.
func (e *Encoder) Write(p []byte) (int, error) { return e.h.Write(p) }

func (e *Encoder) put(n int) {
	e.h.Write(e.scratch[:n]) //nolint:errcheck // hash.Hash never fails
}

// Bool writes 1 for true and 0 for false.
func (e *Encoder) Bool(v bool) {
	e.scratch[0] = 0
	if v {
		e.scratch[0] = 1
	}
	e.put(1)
}

// Uint8 writes one byte.
func (e *Encoder) Uint8(v uint8) {
	e.scratch[0] = v
	e.put(1)
}

// Int8 writes one byte.
func (e *Encoder) Int8(v int8) { e.Uint8(uint8(v)) }

// Uint16 writes two bytes.
func (e *Encoder) Uint16(v uint16) {
	binary.LittleEndian.PutUint16(e.scratch[:], v)
	e.put(2)
}

// Int16 writes two bytes.
func (e *Encoder) Int16(v int16) { e.Uint16(uint16(v)) }

// Uint32 writes four bytes.
func (e *Encoder) Uint32(v uint32) {
	binary.LittleEndian.PutUint32(e.scratch[:], v)
	e.put(4)
}

// Int32 writes four bytes.
func (e *Encoder) Int32(v int32) { e.Uint32(uint32(v)) }

// Uint64 writes eight bytes.
func (e *Encoder) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(e.scratch[:], v)
	e.put(8)
}

// Int64 writes eight bytes.
func (e *Encoder) Int64(v int64) { e.Uint64(uint64(v)) }

// Int writes eight bytes regardless of the platform word size.
func (e *Encoder) Int(v int) { e.Uint64(uint64(int64(v))) }

// Uint writes eight bytes regardless of the platform word size.
func (e *Encoder) Uint(v uint) { e.Uint64(uint64(v)) }

// Uintptr writes eight bytes.
func (e *Encoder) Uintptr(v uintptr) { e.Uint64(uint64(v)) }

// Float32 writes the canonical bits of v.
func (e *Encoder) Float32(v float32) {
	var b uint32
	switch {
	case math.IsNaN(float64(v)):
		b = canonicalNaN32
	case v == 0:
		b = 0
	default:
		b = math.Float32bits(v)
	}
	e.Uint32(b)
}

// Float64 writes the canonical bits of v.
func (e *Encoder) Float64(v float64) {
	var b uint64
	switch {
	case math.IsNaN(v):
		b = canonicalNaN64
	case v == 0:
		b = 0
	default:
		b = math.Float64bits(v)
	}
	e.Uint64(b)
}

// Complex64 writes the real part and then the imaginary part.
func (e *Encoder) Complex64(v complex64) {
	e.Float32(real(v))
	e.Float32(imag(v))
}

// Complex128 writes the real part and then the imaginary part.
func (e *Encoder) Complex128(v complex128) {
	e.Float64(real(v))
	e.Float64(imag(v))
}

// String writes the length of s followed by its bytes, exactly as [Bytes]
// does for the same content. Strings need not be valid UTF-8.
func (e *Encoder) String(s string) {
	e.Len(len(s))
	if len(s) == 0 {
		return
	}
	if sw, ok := e.h.(interface{ WriteString(string) (int, error) }); ok {
		sw.WriteString(s) //nolint:errcheck // hash.Hash never fails
	} else {
		e.h.Write([]byte(s)) //nolint:errcheck // hash.Hash never fails
	}
}

// Bytes writes the length of p followed by p.
func (e *Encoder) Bytes(p []byte) {
	e.Len(len(p))
	e.h.Write(p) //nolint:errcheck // hash.Hash never fails
}

// Len writes a sequence length prefix.
func (e *Encoder) Len(n int) { e.Uint64(uint64(n)) }

// Nil writes the marker of a nil pointer or interface.
func (e *Encoder) Nil() { e.Uint8(0) }

// Present writes the marker that precedes a non-nil element.
func (e *Encoder) Present() { e.Uint8(1) }

// Time writes t as Unix nanoseconds. The location is not encoded, so the
// same instant in two zones encodes the same.
func (e *Encoder) Time(t time.Time) { e.Int64(t.UnixNano()) }

// Duration writes d as int64 nanoseconds.
func (e *Encoder) Duration(d time.Duration) { e.Int64(int64(d)) }

// Value lets v write its own fields.
func (e *Encoder) Value(v Hashable) { v.HashTo(e) }

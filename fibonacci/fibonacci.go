// Package fibonacci spreads the digest of another hasher over the full word by
// multiplying it with 2^w divided by the golden ratio.
//
// Weak recurrences such as djb2 put most of their entropy in the low bits.
// After the multiply the high bits depend on every input bit, which suits
// tables indexed by the top bits of the digest.
package fibonacci

import (
	"encoding/binary"
	"hash"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/mix"
)

// Hash64 wraps a 64-bit hasher.
type Hash64 struct {
	hashers.Hash[uint64]
}

// Hash32 wraps a 32-bit hasher.
type Hash32 struct {
	hashers.Hash[uint32]
}

// Compile-time interface assertions.
var _ hash.Hash64 = (*Hash64)(nil)
var _ hash.Hash32 = (*Hash32)(nil)
var _ hashers.Hash[uint64] = (*Hash64)(nil)
var _ hashers.Hash[uint32] = (*Hash32)(nil)

// Wrap64 returns h with its digest multiplied by [mix.Fibonacci64]. Writes go
// to h unchanged.
func Wrap64(h hashers.Hash[uint64]) *Hash64 { return &Hash64{h} }

// Wrap32 returns h with its digest multiplied by [mix.Fibonacci32].
func Wrap32(h hashers.Hash[uint32]) *Hash32 { return &Hash32{h} }

// Builder64 wraps every hasher created by b.
func Builder64(b hashers.Builder[uint64]) hashers.Builder[uint64] {
	return hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
		return Wrap64(b.New(seed))
	})
}

// Builder32 wraps every hasher created by b.
func Builder32(b hashers.Builder[uint32]) hashers.Builder[uint32] {
	return hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
		return Wrap32(b.New(seed))
	})
}

// Digest returns the spread digest.
func (h *Hash64) Digest() uint64 { return mix.Fib64(h.Hash.Digest()) }

// Sum64 is Digest.
func (h *Hash64) Sum64() uint64 { return h.Digest() }

// Sum appends the big-endian spread digest to b.
func (h *Hash64) Sum(b []byte) []byte { return binary.BigEndian.AppendUint64(b, h.Digest()) }

// Size returns 8.
func (h *Hash64) Size() int { return 8 }

// Digest returns the spread digest.
func (h *Hash32) Digest() uint32 { return mix.Fib32(h.Hash.Digest()) }

// Sum32 is Digest.
func (h *Hash32) Sum32() uint32 { return h.Digest() }

// Sum appends the big-endian spread digest to b.
func (h *Hash32) Sum(b []byte) []byte { return binary.BigEndian.AppendUint32(b, h.Digest()) }

// Size returns 4.
func (h *Hash32) Size() int { return 4 }

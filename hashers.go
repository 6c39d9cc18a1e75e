package hashers

import (
	"hash"
	"io"
	"math/bits"
)

// Digest is the set of digest widths produced by the algorithms.
type Digest interface {
	~uint32 | ~uint64
}

// Hash is the capability set shared by every streaming hasher.
//
// Digest returns the current digest without modifying the state.
type Hash[D Digest] interface {
	hash.Hash
	Digest() D
}

// Builder creates a fresh hasher for every digest.
type Builder[D Digest] interface {
	New(seed Seed) Hash[D]
}

// BuilderFunc adapts a constructor into a [Builder].
type BuilderFunc[D Digest] func(seed Seed) Hash[D]

// New calls f(seed).
func (f BuilderFunc[D]) New(seed Seed) Hash[D] { return f(seed) }

// Seed is a two-word seed. Algorithms that take a single word use
// [Seed.Fold64] or [Seed.Fold32]. A Seed with Hi == 0 and Lo < 1<<32 reaches
// every algorithm unchanged.
type Seed struct {
	Lo uint64 `json:"lo"`
	Hi uint64 `json:"hi"`
}

// Seed64 returns a single-word seed.
func Seed64(v uint64) Seed { return Seed{Lo: v} }

// Fold64 folds the seed into one 64-bit word.
func (s Seed) Fold64() uint64 {
	return s.Lo ^ bits.RotateLeft64(s.Hi, 32)
}

// Fold32 folds the seed into one 32-bit word.
func (s Seed) Fold32() uint32 {
	v := s.Fold64()
	return uint32(v) ^ uint32(v>>32)
}

// IsZero reports whether both words are zero.
func (s Seed) IsZero() bool { return s.Lo == 0 && s.Hi == 0 }

// Sum returns the digest of p using a fresh hasher from b.
func Sum[D Digest](b Builder[D], seed Seed, p []byte) D {
	h := b.New(seed)
	h.Write(p) //nolint:errcheck // hash.Hash never fails
	return h.Digest()
}

// SumString is like [Sum] but takes a string.
func SumString[D Digest](b Builder[D], seed Seed, s string) D {
	h := b.New(seed)
	io.WriteString(h, s) //nolint:errcheck // hash.Hash never fails
	return h.Digest()
}

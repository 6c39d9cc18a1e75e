package jenkins

import (
	"encoding/binary"
	"hash"

	"go.dw1.io/hashers"
)

// Compile-time interface assertions.
var _ hash.Hash32 = (*OAAT)(nil)
var _ hashers.Hash[uint32] = (*OAAT)(nil)

// BuilderOAAT creates one-at-a-time hashers seeded with [hashers.Seed.Fold32].
var BuilderOAAT hashers.Builder[uint32] = hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
	return NewOAATWithSeed(seed.Fold32())
})

// OAAT is Jenkins' one-at-a-time hash.
type OAAT struct {
	seed uint32
	h    uint32
}

// NewOAAT returns a one-at-a-time hasher with seed 0.
func NewOAAT() *OAAT { return &OAAT{} }

// NewOAATWithSeed returns a one-at-a-time hasher whose state starts at seed.
func NewOAATWithSeed(seed uint32) *OAAT { return &OAAT{seed: seed, h: seed} }

// SumOAAT returns the one-at-a-time hash of data with seed 0.
func SumOAAT(data []byte) uint32 { return oaatFinish(oaatUpdate(0, data)) }

// Write adds p to the running hash. It never fails.
func (o *OAAT) Write(p []byte) (int, error) {
	o.h = oaatUpdate(o.h, p)
	return len(p), nil
}

// Sum appends the big-endian digest to b.
func (o *OAAT) Sum(b []byte) []byte { return binary.BigEndian.AppendUint32(b, o.Sum32()) }

// Sum32 returns the digest of the data written so far.
func (o *OAAT) Sum32() uint32 { return oaatFinish(o.h) }

// Digest is Sum32.
func (o *OAAT) Digest() uint32 { return o.Sum32() }

// Reset restores the seeded initial state.
func (o *OAAT) Reset() { o.h = o.seed }

// Size returns the digest size in bytes.
func (o *OAAT) Size() int { return 4 }

// BlockSize returns 1; every byte is folded on write.
func (o *OAAT) BlockSize() int { return 1 }

func oaatUpdate(h uint32, p []byte) uint32 {
	for _, b := range p {
		h += uint32(b)
		h += h << 10
		h ^= h >> 6
	}
	return h
}

func oaatFinish(h uint32) uint32 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

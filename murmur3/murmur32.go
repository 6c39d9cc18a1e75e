package murmur3

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/internal/stream"
	"go.dw1.io/hashers/mix"
)

// Compile-time interface assertions.
var _ hash.Hash32 = (*Hash32)(nil)
var _ hashers.Hash[uint32] = (*Hash32)(nil)

const (
	c1_32 uint32 = 0xcc9e2d51
	c2_32 uint32 = 0x1b873593
)

// Builder32 creates x86_32 hashers seeded with [hashers.Seed.Fold32].
var Builder32 hashers.Builder[uint32] = hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
	return New32WithSeed(seed.Fold32())
})

// Hash32 is a streaming MurmurHash3 x86_32 hasher.
type Hash32 struct {
	d    stream.Digest
	l    lanes32
	seed uint32
}

type lanes32 struct{ h1 uint32 }

func (l *lanes32) BlockSize() int { return 4 }

func (l *lanes32) Blocks(p []byte) []byte { return blocks32(&l.h1, p) }

// New32 returns a 32-bit hasher with seed 0.
func New32() *Hash32 { return New32WithSeed(0) }

// New32WithSeed returns a 32-bit hasher seeded with seed.
func New32WithSeed(seed uint32) *Hash32 {
	h := &Hash32{seed: seed, l: lanes32{h1: seed}}
	h.d.Init(&h.l)
	return h
}

// Sum32 returns the x86_32 hash of data with seed 0.
func Sum32(data []byte) uint32 { return Sum32WithSeed(data, 0) }

// Sum32WithSeed returns the x86_32 hash of data with the provided seed.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	h1 := seed
	tail := blocks32(&h1, data)
	return finish32(h1, tail, uint64(len(data)))
}

// BlockSize returns the number of bytes folded at a time.
func (h *Hash32) BlockSize() int { return 4 }

// Write adds p to the running hash. It never fails.
func (h *Hash32) Write(p []byte) (int, error) { return h.d.Write(p) }

// WriteString adds s to the running hash. It never fails.
func (h *Hash32) WriteString(s string) (int, error) { return h.d.WriteString(s) }

// Sum appends the big-endian digest to b.
func (h *Hash32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.Sum32())
}

// Sum32 returns the digest of the data written so far.
func (h *Hash32) Sum32() uint32 { return finish32(h.l.h1, h.d.Tail(), h.d.Len()) }

// Digest is Sum32.
func (h *Hash32) Digest() uint32 { return h.Sum32() }

// Reset restores the seeded initial state.
func (h *Hash32) Reset() {
	h.l.h1 = h.seed
	h.d.Reset()
}

// Size returns the digest size in bytes.
func (h *Hash32) Size() int { return 4 }

func blocks32(h *uint32, p []byte) []byte {
	h1 := *h
	for len(p) >= 4 {
		k1 := binary.LittleEndian.Uint32(p)
		p = p[4:]

		k1 *= c1_32
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2_32

		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}
	*h = h1
	return p
}

func finish32(h1 uint32, tail []byte, length uint64) uint32 {
	var k1 uint32
	switch len(tail) & 3 {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1_32
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2_32
		h1 ^= k1
	}

	h1 ^= uint32(length)
	return mix.Fmix32(h1)
}

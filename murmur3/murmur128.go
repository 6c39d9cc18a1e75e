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
var _ hash.Hash64 = (*Hash128)(nil)
var _ hashers.Hash[uint64] = (*Hash128)(nil)

const (
	c1_128 uint64 = 0x87c37b91114253d5
	c2_128 uint64 = 0x4cf5ad432745937f
)

// Builder128 creates x64_128 hashers seeded with [hashers.Seed.Fold32].
// Their digest is the first half of the 128-bit result.
var Builder128 hashers.Builder[uint64] = hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
	return New128WithSeed(seed.Fold32())
})

// Hash128 is a streaming MurmurHash3 x64_128 hasher.
type Hash128 struct {
	d    stream.Digest
	l    lanes128
	seed uint32
}

type lanes128 struct{ h1, h2 uint64 }

func (l *lanes128) BlockSize() int { return 16 }

func (l *lanes128) Blocks(p []byte) []byte { return blocks128(&l.h1, &l.h2, p) }

// New128 returns a 128-bit hasher with seed 0.
func New128() *Hash128 { return New128WithSeed(0) }

// New128WithSeed returns a 128-bit hasher seeded with seed. Both lanes start
// from the same 32-bit seed.
func New128WithSeed(seed uint32) *Hash128 {
	h := &Hash128{seed: seed}
	h.l = lanes128{h1: uint64(seed), h2: uint64(seed)}
	h.d.Init(&h.l)
	return h
}

// Sum128 returns the x64_128 hash of data with seed 0.
func Sum128(data []byte) (uint64, uint64) { return Sum128WithSeed(data, 0) }

// Sum128WithSeed returns the x64_128 hash of data with the provided seed.
func Sum128WithSeed(data []byte, seed uint32) (uint64, uint64) {
	h1, h2 := uint64(seed), uint64(seed)
	tail := blocks128(&h1, &h2, data)
	return finish128(h1, h2, tail, uint64(len(data)))
}

// Sum64 returns the first half of the x64_128 hash of data with seed 0.
func Sum64(data []byte) uint64 {
	h1, _ := Sum128(data)
	return h1
}

// BlockSize returns the number of bytes folded at a time.
func (h *Hash128) BlockSize() int { return 16 }

// Write adds p to the running hash. It never fails.
func (h *Hash128) Write(p []byte) (int, error) { return h.d.Write(p) }

// WriteString adds s to the running hash. It never fails.
func (h *Hash128) WriteString(s string) (int, error) { return h.d.WriteString(s) }

// Sum appends the big-endian first half of the digest to b.
func (h *Hash128) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Sum128 returns both halves of the digest of the data written so far.
func (h *Hash128) Sum128() (uint64, uint64) {
	return finish128(h.l.h1, h.l.h2, h.d.Tail(), h.d.Len())
}

// Sum64 returns the first half of the digest.
func (h *Hash128) Sum64() uint64 {
	h1, _ := h.Sum128()
	return h1
}

// Digest is Sum64.
func (h *Hash128) Digest() uint64 { return h.Sum64() }

// Reset restores the seeded initial state.
func (h *Hash128) Reset() {
	h.l = lanes128{h1: uint64(h.seed), h2: uint64(h.seed)}
	h.d.Reset()
}

// Size returns the size of Sum's output in bytes.
func (h *Hash128) Size() int { return 8 }

func blocks128(ph1, ph2 *uint64, p []byte) []byte {
	h1, h2 := *ph1, *ph2
	for len(p) >= 16 {
		k1 := binary.LittleEndian.Uint64(p)
		k2 := binary.LittleEndian.Uint64(p[8:])
		p = p[16:]

		k1 *= c1_128
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2_128
		h1 ^= k1

		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2_128
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1_128
		h2 ^= k2

		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}
	*ph1, *ph2 = h1, h2
	return p
}

func finish128(h1, h2 uint64, tail []byte, length uint64) (uint64, uint64) {
	var k1, k2 uint64
	switch len(tail) & 15 {
	case 15:
		k2 ^= uint64(tail[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(tail[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(tail[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(tail[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(tail[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(tail[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(tail[8])
		k2 *= c2_128
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1_128
		h2 ^= k2
		fallthrough
	case 8:
		k1 ^= uint64(tail[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(tail[0])
		k1 *= c1_128
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2_128
		h1 ^= k1
	}

	h1 ^= length
	h2 ^= length

	h1 += h2
	h2 += h1

	h1 = mix.Fmix64(h1)
	h2 = mix.Fmix64(h2)

	h1 += h2
	h2 += h1

	return h1, h2
}

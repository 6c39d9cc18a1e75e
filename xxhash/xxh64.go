package xxhash

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/internal/stream"
	"go.dw1.io/hashers/mix"
)

// Compile-time interface assertions.
var _ hash.Hash64 = (*XXH64)(nil)
var _ hashers.Hash[uint64] = (*XXH64)(nil)

// Builder64 creates XXH64 hashers seeded with [hashers.Seed.Fold64].
var Builder64 hashers.Builder[uint64] = hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
	return New64WithSeed(seed.Fold64())
})

// XXH64 is a streaming XXH64 hasher with four 64-bit lanes over 32-byte
// stripes.
type XXH64 struct {
	d    stream.Digest
	l    lanes
	seed uint64
}

type lanes struct{ v1, v2, v3, v4 uint64 }

func newLanes(seed uint64) lanes {
	return lanes{
		v1: seed + mix.Prime64_1 + mix.Prime64_2,
		v2: seed + mix.Prime64_2,
		v3: seed,
		v4: seed - mix.Prime64_1,
	}
}

func (l *lanes) BlockSize() int { return 32 }

func (l *lanes) Blocks(p []byte) []byte {
	v1, v2, v3, v4 := l.v1, l.v2, l.v3, l.v4
	for len(p) >= 32 {
		v1 = mix.Round64(v1, binary.LittleEndian.Uint64(p[0:]))
		v2 = mix.Round64(v2, binary.LittleEndian.Uint64(p[8:]))
		v3 = mix.Round64(v3, binary.LittleEndian.Uint64(p[16:]))
		v4 = mix.Round64(v4, binary.LittleEndian.Uint64(p[24:]))
		p = p[32:]
	}
	l.v1, l.v2, l.v3, l.v4 = v1, v2, v3, v4
	return p
}

// New64 returns an XXH64 hasher with seed 0.
func New64() *XXH64 { return New64WithSeed(0) }

// New64WithSeed returns an XXH64 hasher seeded with seed.
func New64WithSeed(seed uint64) *XXH64 {
	h := &XXH64{seed: seed, l: newLanes(seed)}
	h.d.Init(&h.l)
	return h
}

// Sum64 returns the XXH64 of data with seed 0.
func Sum64(data []byte) uint64 { return Sum64WithSeed(data, 0) }

// Sum64WithSeed returns the XXH64 of data with the provided seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	l := newLanes(seed)
	tail := l.Blocks(data)
	return finish64(&l, seed, tail, uint64(len(data)))
}

// BlockSize returns the stripe size.
func (h *XXH64) BlockSize() int { return 32 }

// Write adds p to the running hash. It never fails.
func (h *XXH64) Write(p []byte) (int, error) { return h.d.Write(p) }

// WriteString adds s to the running hash. It never fails.
func (h *XXH64) WriteString(s string) (int, error) { return h.d.WriteString(s) }

// Sum appends the big-endian digest to b.
func (h *XXH64) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Sum64 returns the digest of the data written so far.
func (h *XXH64) Sum64() uint64 {
	return finish64(&h.l, h.seed, h.d.Tail(), h.d.Len())
}

// Digest is Sum64.
func (h *XXH64) Digest() uint64 { return h.Sum64() }

// Reset restores the seeded initial state.
func (h *XXH64) Reset() {
	h.l = newLanes(h.seed)
	h.d.Reset()
}

// Size returns the digest size in bytes.
func (h *XXH64) Size() int { return 8 }

// finish64 converges the lanes, folds the length and the tail, and
// avalanches. It only reads l.
func finish64(l *lanes, seed uint64, tail []byte, length uint64) uint64 {
	var h uint64
	if length >= 32 {
		h = bits.RotateLeft64(l.v1, 1) + bits.RotateLeft64(l.v2, 7) +
			bits.RotateLeft64(l.v3, 12) + bits.RotateLeft64(l.v4, 18)
		h = mix.MergeRound64(h, l.v1)
		h = mix.MergeRound64(h, l.v2)
		h = mix.MergeRound64(h, l.v3)
		h = mix.MergeRound64(h, l.v4)
	} else {
		h = seed + mix.Prime64_5
	}

	h += length

	p := tail
	for ; len(p) >= 8; p = p[8:] {
		k1 := mix.Round64(0, binary.LittleEndian.Uint64(p))
		h ^= k1
		h = bits.RotateLeft64(h, 27)*mix.Prime64_1 + mix.Prime64_4
	}
	if len(p) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(p)) * mix.Prime64_1
		h = bits.RotateLeft64(h, 23)*mix.Prime64_2 + mix.Prime64_3
		p = p[4:]
	}
	for _, b := range p {
		h ^= uint64(b) * mix.Prime64_5
		h = bits.RotateLeft64(h, 11) * mix.Prime64_1
	}

	return mix.Avalanche64(h)
}

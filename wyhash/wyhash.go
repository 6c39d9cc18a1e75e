package wyhash

import (
	"encoding/binary"
	"hash"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/mix"
)

// Compile-time interface assertions.
var _ hash.Hash64 = (*Hash64)(nil)
var _ hash.Hash32 = (*Hash32)(nil)
var _ hashers.Hash[uint64] = (*Hash64)(nil)
var _ hashers.Hash[uint32] = (*Hash32)(nil)

// wyhash secrets from the reference implementation.
// These are fixed so the outputs are deterministic.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)

	k0_32 = uint32(0x78bd642f)
)

// Builder64 creates 64-bit hashers seeded with [hashers.Seed.Fold64].
var Builder64 hashers.Builder[uint64] = hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
	return New64WithSeed(seed.Fold64())
})

// Builder32 creates 32-bit hashers seeded with [hashers.Seed.Fold32].
var Builder32 hashers.Builder[uint32] = hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
	return New32WithSeed(seed.Fold32())
})

// Hash64 is a streaming 64-bit wyhash hasher.
type Hash64 struct {
	seed uint64
	buf  []byte
}

// Hash32 is a streaming hasher using the 32-bit wyhash mix.
type Hash32 struct {
	seed uint32
	buf  []byte
}

// New64 returns a 64-bit wyhash hasher with seed 0.
func New64() *Hash64 { return &Hash64{} }

// New64WithSeed returns a 64-bit wyhash hasher seeded with seed.
func New64WithSeed(seed uint64) *Hash64 { return &Hash64{seed: seed} }

// New32 returns a 32-bit wyhash hasher with seed 0.
func New32() *Hash32 { return &Hash32{} }

// New32WithSeed returns a 32-bit wyhash hasher seeded with seed.
func New32WithSeed(seed uint32) *Hash32 { return &Hash32{seed: seed} }

// Sum64 returns the wyhash-64 of data with seed 0.
func Sum64(data []byte) uint64 { return sum64(data, 0) }

// Sum64WithSeed returns the wyhash-64 of data with the provided seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 { return sum64(data, seed) }

// Sum32 returns the wyhash-32 of data with seed 0.
func Sum32(data []byte) uint32 { return sum32(data, 0) }

// Sum32WithSeed returns the wyhash-32 of data with the provided seed.
func Sum32WithSeed(data []byte, seed uint32) uint32 { return sum32(data, seed) }

// Write appends p to the buffered input.
func (h *Hash64) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffered input.
func (h *Hash64) WriteString(s string) (int, error) {
	h.buf = append(h.buf, s...)
	return len(s), nil
}

// Sum appends the big-endian digest to b.
func (h *Hash64) Sum(b []byte) []byte { return binary.BigEndian.AppendUint64(b, h.Sum64()) }

// Sum64 computes the 64-bit hash of the buffered input.
func (h *Hash64) Sum64() uint64 { return sum64(h.buf, h.seed) }

// Digest is Sum64.
func (h *Hash64) Digest() uint64 { return h.Sum64() }

// Reset discards the buffered input.
func (h *Hash64) Reset() { h.buf = h.buf[:0] }

// Size returns the hash size in bytes.
func (h *Hash64) Size() int { return 8 }

// BlockSize returns the long-input stripe size.
func (h *Hash64) BlockSize() int { return 48 }

// Write appends p to the buffered input.
func (h *Hash32) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffered input.
func (h *Hash32) WriteString(s string) (int, error) {
	h.buf = append(h.buf, s...)
	return len(s), nil
}

// Sum appends the big-endian digest to b.
func (h *Hash32) Sum(b []byte) []byte { return binary.BigEndian.AppendUint32(b, h.Sum32()) }

// Sum32 computes the 32-bit hash of the buffered input.
func (h *Hash32) Sum32() uint32 { return sum32(h.buf, h.seed) }

// Digest is Sum32.
func (h *Hash32) Digest() uint32 { return h.Sum32() }

// Reset discards the buffered input.
func (h *Hash32) Reset() { h.buf = h.buf[:0] }

// Size returns the hash size in bytes.
func (h *Hash32) Size() int { return 4 }

// BlockSize returns the pair size folded per round.
func (h *Hash32) BlockSize() int { return 8 }

// sum64 is the 64-bit wyhash routine derived from the Go runtime fallback.
func sum64(b []byte, seed uint64) uint64 {
	var a, c uint64
	s := len(b)
	seed ^= k0

	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(b[0])
		a |= uint64(b[s>>1]) << 8
		a |= uint64(b[s-1]) << 16
	case s == 4:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = a
	case s < 8:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = uint64(binary.LittleEndian.Uint32(b[s-4:]))
	case s == 8:
		a = binary.LittleEndian.Uint64(b)
		c = a
	case s <= 16:
		a = binary.LittleEndian.Uint64(b)
		c = binary.LittleEndian.Uint64(b[s-8:])
	default:
		l := s
		i := 0
		if l > 48 {
			seed1, seed2 := seed, seed
			for ; l > 48; l -= 48 {
				seed = mix.Wymix(binary.LittleEndian.Uint64(b[i:])^k1, binary.LittleEndian.Uint64(b[i+8:])^seed)
				seed1 = mix.Wymix(binary.LittleEndian.Uint64(b[i+16:])^k2, binary.LittleEndian.Uint64(b[i+24:])^seed1)
				seed2 = mix.Wymix(binary.LittleEndian.Uint64(b[i+32:])^k3, binary.LittleEndian.Uint64(b[i+40:])^seed2)
				i += 48
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix.Wymix(binary.LittleEndian.Uint64(b[i:])^k1, binary.LittleEndian.Uint64(b[i+8:])^seed)
			i += 16
		}
		a = binary.LittleEndian.Uint64(b[i+l-16:])
		c = binary.LittleEndian.Uint64(b[i+l-8:])
	}

	return mix.Wymix(k4^uint64(s), mix.Wymix(a^k1, c^seed))
}

// sum32 mirrors the 32-bit wyhash fallback used by the Go runtime.
func sum32(b []byte, seed uint32) uint32 {
	s := len(b)
	a, c := mix.Wymix32(seed, uint32(s)^k0_32)
	if s == 0 {
		return a ^ c
	}

	i := 0
	for ; s > 8; s -= 8 {
		a ^= binary.LittleEndian.Uint32(b[i:])
		c ^= binary.LittleEndian.Uint32(b[i+4:])
		a, c = mix.Wymix32(a, c)
		i += 8
	}

	if s >= 4 {
		a ^= binary.LittleEndian.Uint32(b[i:])
		c ^= binary.LittleEndian.Uint32(b[i+s-4:])
	} else {
		t := uint32(b[i])
		t |= uint32(b[i+s>>1]) << 8
		t |= uint32(b[i+s-1]) << 16
		c ^= t
	}

	a, c = mix.Wymix32(a, c)
	a, c = mix.Wymix32(a, c)
	return a ^ c
}

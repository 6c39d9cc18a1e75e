package jenkins

import (
	"encoding/binary"
	"hash"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/mix"
)

// Compile-time interface assertions.
var _ hash.Hash64 = (*Lookup3)(nil)
var _ hashers.Hash[uint64] = (*Lookup3)(nil)

// BuilderLookup3 creates lookup3 hashers. The low half of
// [hashers.Seed.Fold64] is the primary seed and the high half the secondary.
var BuilderLookup3 hashers.Builder[uint64] = hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
	v := seed.Fold64()
	return NewLookup3WithSeed(uint32(v), uint32(v>>32))
})

// Lookup3 is lookup3's hashlittle2. Its digest packs the primary result in the
// low 32 bits and the secondary result in the high 32 bits.
//
// The initial state depends on the total length, so the input is buffered
// and hashed when a digest is requested.
type Lookup3 struct {
	pc, pb uint32
	buf    []byte
}

// NewLookup3 returns a lookup3 hasher with zero seeds.
func NewLookup3() *Lookup3 { return &Lookup3{} }

// NewLookup3WithSeed returns a lookup3 hasher with primary seed pc and
// secondary seed pb.
func NewLookup3WithSeed(pc, pb uint32) *Lookup3 { return &Lookup3{pc: pc, pb: pb} }

// SumLookup3 returns the packed hashlittle2 of data with zero seeds.
func SumLookup3(data []byte) uint64 { return SumLookup3WithSeed(data, 0, 0) }

// SumLookup3WithSeed returns the packed hashlittle2 of data.
func SumLookup3WithSeed(data []byte, pc, pb uint32) uint64 {
	c, b := HashLittle2(data, pc, pb)
	return uint64(c) | uint64(b)<<32
}

// Write appends p to the buffered input.
func (l *Lookup3) Write(p []byte) (int, error) {
	l.buf = append(l.buf, p...)
	return len(p), nil
}

// Sum appends the big-endian digest to b.
func (l *Lookup3) Sum(b []byte) []byte { return binary.BigEndian.AppendUint64(b, l.Sum64()) }

// Sum64 hashes the buffered input.
func (l *Lookup3) Sum64() uint64 { return SumLookup3WithSeed(l.buf, l.pc, l.pb) }

// Digest is Sum64.
func (l *Lookup3) Digest() uint64 { return l.Sum64() }

// Reset discards the buffered input.
func (l *Lookup3) Reset() { l.buf = l.buf[:0] }

// Size returns the digest size in bytes.
func (l *Lookup3) Size() int { return 8 }

// BlockSize returns the lookup3 block size.
func (l *Lookup3) BlockSize() int { return 12 }

// HashLittle2 returns the two 32-bit lookup3 results (c, b) of k.
func HashLittle2(k []byte, pc, pb uint32) (c, b uint32) {
	a := 0xdeadbeef + uint32(len(k)) + pc
	b, c = a, a
	c += pb

	for len(k) > 12 {
		a += binary.LittleEndian.Uint32(k[0:])
		b += binary.LittleEndian.Uint32(k[4:])
		c += binary.LittleEndian.Uint32(k[8:])
		a, b, c = mix.Lookup3Mix(a, b, c)
		k = k[12:]
	}

	if len(k) == 0 {
		return c, b
	}

	var tail [12]byte
	copy(tail[:], k)
	a += binary.LittleEndian.Uint32(tail[0:])
	b += binary.LittleEndian.Uint32(tail[4:])
	c += binary.LittleEndian.Uint32(tail[8:])
	_, b, c = mix.Lookup3Final(a, b, c)

	return c, b
}

package oz

import (
	"encoding/binary"
	"hash"

	"go.dw1.io/hashers"
)

// Compile-time interface assertions.
var (
	_ hash.Hash32          = (*DJB2)(nil)
	_ hash.Hash32          = (*SDBM)(nil)
	_ hash.Hash32          = (*LoseLose)(nil)
	_ hashers.Hash[uint32] = (*DJB2)(nil)
	_ hashers.Hash[uint32] = (*SDBM)(nil)
	_ hashers.Hash[uint32] = (*LoseLose)(nil)
)

// djb2Init is Bernstein's starting value.
const djb2Init uint32 = 5381

// Builders seeded with [hashers.Seed.Fold32].
var (
	BuilderDJB2 hashers.Builder[uint32] = hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
		return NewDJB2WithSeed(seed.Fold32())
	})
	BuilderSDBM hashers.Builder[uint32] = hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
		return NewSDBMWithSeed(seed.Fold32())
	})
	BuilderLoseLose hashers.Builder[uint32] = hashers.BuilderFunc[uint32](func(seed hashers.Seed) hashers.Hash[uint32] {
		return NewLoseLoseWithSeed(seed.Fold32())
	})
)

// state is the running value shared by the recurrences below.
type state struct {
	init uint32
	h    uint32
}

// Sum32 returns the current value. The recurrences have no finalizer.
func (s *state) Sum32() uint32 { return s.h }

// Digest is Sum32.
func (s *state) Digest() uint32 { return s.h }

// Reset restores the seeded starting value.
func (s *state) Reset() { s.h = s.init }

// Size returns the digest size in bytes.
func (s *state) Size() int { return 4 }

// BlockSize returns 1; every byte is folded on write.
func (s *state) BlockSize() int { return 1 }

func (s *state) sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, s.h)
}

// DJB2 is Bernstein's h = h*33 ^ c.
type DJB2 struct{ state }

// NewDJB2 returns a djb2 hasher starting at 5381.
func NewDJB2() *DJB2 { return NewDJB2WithSeed(0) }

// NewDJB2WithSeed returns a djb2 hasher starting at 5381 ^ seed.
func NewDJB2WithSeed(seed uint32) *DJB2 {
	return &DJB2{state{init: djb2Init ^ seed, h: djb2Init ^ seed}}
}

// SumDJB2 returns the djb2 hash of data.
func SumDJB2(data []byte) uint32 { return djb2(djb2Init, data) }

// Write folds p into the running hash. It never fails.
func (d *DJB2) Write(p []byte) (int, error) {
	d.h = djb2(d.h, p)
	return len(p), nil
}

// Sum appends the big-endian digest to b.
func (d *DJB2) Sum(b []byte) []byte { return d.sum(b) }

func djb2(h uint32, p []byte) uint32 {
	for _, c := range p {
		h = (h<<5 + h) ^ uint32(c)
	}
	return h
}

// SDBM is the recurrence from the sdbm database library,
// h = c + (h << 6) + (h << 16) - h.
type SDBM struct{ state }

// NewSDBM returns an sdbm hasher starting at 0.
func NewSDBM() *SDBM { return NewSDBMWithSeed(0) }

// NewSDBMWithSeed returns an sdbm hasher starting at seed.
func NewSDBMWithSeed(seed uint32) *SDBM { return &SDBM{state{init: seed, h: seed}} }

// SumSDBM returns the sdbm hash of data.
func SumSDBM(data []byte) uint32 { return sdbm(0, data) }

// Write folds p into the running hash. It never fails.
func (s *SDBM) Write(p []byte) (int, error) {
	s.h = sdbm(s.h, p)
	return len(p), nil
}

// Sum appends the big-endian digest to b.
func (s *SDBM) Sum(b []byte) []byte { return s.sum(b) }

func sdbm(h uint32, p []byte) uint32 {
	for _, c := range p {
		h = uint32(c) + h<<6 + h<<16 - h
	}
	return h
}

// LoseLose sums the bytes. It is the first-edition K&R hash.
type LoseLose struct{ state }

// NewLoseLose returns a lose-lose hasher starting at 0.
func NewLoseLose() *LoseLose { return NewLoseLoseWithSeed(0) }

// NewLoseLoseWithSeed returns a lose-lose hasher starting at seed.
func NewLoseLoseWithSeed(seed uint32) *LoseLose { return &LoseLose{state{init: seed, h: seed}} }

// SumLoseLose returns the lose-lose hash of data.
func SumLoseLose(data []byte) uint32 { return loselose(0, data) }

// Write folds p into the running hash. It never fails.
func (l *LoseLose) Write(p []byte) (int, error) {
	l.h = loselose(l.h, p)
	return len(p), nil
}

// Sum appends the big-endian digest to b.
func (l *LoseLose) Sum(b []byte) []byte { return l.sum(b) }

func loselose(h uint32, p []byte) uint32 {
	for _, c := range p {
		h += uint32(c)
	}
	return h
}

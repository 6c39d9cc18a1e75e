package jenkins

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"go.dw1.io/hashers"
)

// Compile-time interface assertions.
var _ hash.Hash64 = (*Spooky)(nil)
var _ hashers.Hash[uint64] = (*Spooky)(nil)

// BuilderSpooky creates SpookyHash V2 hashers seeded with both seed words.
var BuilderSpooky hashers.Builder[uint64] = hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
	return NewSpookyWithSeed(seed.Lo, seed.Hi)
})

const (
	// scConst is odd, non-zero and an irregular mix of ones and zeros.
	scConst uint64 = 0xdeadbeefdeadbeef

	numVars   = 12
	blockSize = numVars * 8
	bufSize   = 2 * blockSize
)

// Spooky is a streaming SpookyHash V2 hasher. Messages shorter than 192 bytes
// take the short path, which is decided when the digest is requested.
type Spooky struct {
	seed1, seed2 uint64

	state  [numVars]uint64
	data   [bufSize]byte
	length uint64
	rem    int
}

// NewSpooky returns a SpookyHash V2 hasher with zero seeds.
func NewSpooky() *Spooky { return NewSpookyWithSeed(0, 0) }

// NewSpookyWithSeed returns a SpookyHash V2 hasher with two seed words.
func NewSpookyWithSeed(seed1, seed2 uint64) *Spooky {
	return &Spooky{seed1: seed1, seed2: seed2}
}

// SumSpooky returns the first 64 bits of the SpookyHash V2 of data with zero
// seeds.
func SumSpooky(data []byte) uint64 {
	h1, _ := SpookyHash128(data, 0, 0)
	return h1
}

// SumSpookyWithSeed returns the first 64 bits of the SpookyHash V2 of data.
func SumSpookyWithSeed(data []byte, seed1, seed2 uint64) uint64 {
	h1, _ := SpookyHash128(data, seed1, seed2)
	return h1
}

// SpookyHash128 returns the 128-bit SpookyHash V2 of data.
func SpookyHash128(data []byte, seed1, seed2 uint64) (uint64, uint64) {
	if len(data) < bufSize {
		return spookyShort(data, seed1, seed2)
	}

	h := spookyState(seed1, seed2)
	for len(data) >= blockSize {
		spookyMix(data, &h)
		data = data[blockSize:]
	}

	return spookyLast(data, &h)
}

// Write adds p to the running hash. It never fails.
func (s *Spooky) Write(p []byte) (int, error) {
	n := len(p)
	if s.rem+n < bufSize {
		copy(s.data[s.rem:], p)
		s.length += uint64(n)
		s.rem += n
		return n, nil
	}

	var h [numVars]uint64
	if s.length < bufSize {
		h = spookyState(s.seed1, s.seed2)
	} else {
		h = s.state
	}
	s.length += uint64(n)

	if s.rem > 0 {
		prefix := bufSize - s.rem
		copy(s.data[s.rem:], p[:prefix])
		spookyMix(s.data[:blockSize], &h)
		spookyMix(s.data[blockSize:], &h)
		p = p[prefix:]
	}

	for len(p) >= blockSize {
		spookyMix(p, &h)
		p = p[blockSize:]
	}

	s.rem = copy(s.data[:], p)
	s.state = h

	return n, nil
}

// Sum appends the big-endian first 64 bits of the digest to b.
func (s *Spooky) Sum(b []byte) []byte { return binary.BigEndian.AppendUint64(b, s.Sum64()) }

// Sum128 returns the 128-bit digest of the data written so far.
func (s *Spooky) Sum128() (uint64, uint64) {
	if s.length < bufSize {
		return spookyShort(s.data[:s.length], s.seed1, s.seed2)
	}

	h := s.state
	data := s.data[:s.rem]
	if len(data) >= blockSize {
		spookyMix(data, &h)
		data = data[blockSize:]
	}

	return spookyLast(data, &h)
}

// Sum64 returns the first 64 bits of the digest.
func (s *Spooky) Sum64() uint64 {
	h1, _ := s.Sum128()
	return h1
}

// Digest is Sum64.
func (s *Spooky) Digest() uint64 { return s.Sum64() }

// Reset restores the seeded initial state.
func (s *Spooky) Reset() {
	s.length = 0
	s.rem = 0
}

// Size returns the size of Sum's output in bytes.
func (s *Spooky) Size() int { return 8 }

// BlockSize returns the long-message block size.
func (s *Spooky) BlockSize() int { return blockSize }

func spookyState(seed1, seed2 uint64) [numVars]uint64 {
	return [numVars]uint64{
		seed1, seed2, scConst,
		seed1, seed2, scConst,
		seed1, seed2, scConst,
		seed1, seed2, scConst,
	}
}

var mixRot = [numVars]int{11, 32, 43, 31, 17, 28, 39, 57, 55, 54, 22, 46}

// spookyMix folds one 96-byte block. The state is fully overwritten every
// block.
func spookyMix(p []byte, s *[numVars]uint64) {
	_ = p[blockSize-1]
	for i := 0; i < numVars; i++ {
		s[i] += binary.LittleEndian.Uint64(p[8*i:])
		s[(i+2)%numVars] ^= s[(i+10)%numVars]
		s[(i+11)%numVars] ^= s[i]
		s[i] = bits.RotateLeft64(s[i], mixRot[i])
		s[(i+11)%numVars] += s[(i+1)%numVars]
	}
}

var endRot = [numVars]int{44, 15, 34, 21, 38, 33, 10, 13, 38, 53, 42, 54}

func spookyEndPartial(h *[numVars]uint64) {
	for i := 0; i < numVars; i++ {
		a, b, c := (i+11)%numVars, (i+1)%numVars, (i+2)%numVars
		h[a] += h[b]
		h[c] ^= h[a]
		h[b] = bits.RotateLeft64(h[b], endRot[i])
	}
}

// spookyLast pads the final partial block with zeros, stores its length in
// the last byte, and runs three end rounds.
func spookyLast(tail []byte, h *[numVars]uint64) (uint64, uint64) {
	var last [blockSize]byte
	copy(last[:], tail)
	last[blockSize-1] = byte(len(tail))

	for i := 0; i < numVars; i++ {
		h[i] += binary.LittleEndian.Uint64(last[8*i:])
	}
	spookyEndPartial(h)
	spookyEndPartial(h)
	spookyEndPartial(h)

	return h[0], h[1]
}

func shortMix(h0, h1, h2, h3 uint64) (uint64, uint64, uint64, uint64) {
	h2 = bits.RotateLeft64(h2, 50)
	h2 += h3
	h0 ^= h2
	h3 = bits.RotateLeft64(h3, 52)
	h3 += h0
	h1 ^= h3
	h0 = bits.RotateLeft64(h0, 30)
	h0 += h1
	h2 ^= h0
	h1 = bits.RotateLeft64(h1, 41)
	h1 += h2
	h3 ^= h1
	h2 = bits.RotateLeft64(h2, 54)
	h2 += h3
	h0 ^= h2
	h3 = bits.RotateLeft64(h3, 48)
	h3 += h0
	h1 ^= h3
	h0 = bits.RotateLeft64(h0, 38)
	h0 += h1
	h2 ^= h0
	h1 = bits.RotateLeft64(h1, 37)
	h1 += h2
	h3 ^= h1
	h2 = bits.RotateLeft64(h2, 62)
	h2 += h3
	h0 ^= h2
	h3 = bits.RotateLeft64(h3, 34)
	h3 += h0
	h1 ^= h3
	h0 = bits.RotateLeft64(h0, 5)
	h0 += h1
	h2 ^= h0
	h1 = bits.RotateLeft64(h1, 36)
	h1 += h2
	h3 ^= h1
	return h0, h1, h2, h3
}

func shortEnd(h0, h1, h2, h3 uint64) (uint64, uint64, uint64, uint64) {
	h3 ^= h2
	h2 = bits.RotateLeft64(h2, 15)
	h3 += h2
	h0 ^= h3
	h3 = bits.RotateLeft64(h3, 52)
	h0 += h3
	h1 ^= h0
	h0 = bits.RotateLeft64(h0, 26)
	h1 += h0
	h2 ^= h1
	h1 = bits.RotateLeft64(h1, 51)
	h2 += h1
	h3 ^= h2
	h2 = bits.RotateLeft64(h2, 28)
	h3 += h2
	h0 ^= h3
	h3 = bits.RotateLeft64(h3, 9)
	h0 += h3
	h1 ^= h0
	h0 = bits.RotateLeft64(h0, 47)
	h1 += h0
	h2 ^= h1
	h1 = bits.RotateLeft64(h1, 54)
	h2 += h1
	h3 ^= h2
	h2 = bits.RotateLeft64(h2, 32)
	h3 += h2
	h0 ^= h3
	h3 = bits.RotateLeft64(h3, 25)
	h0 += h3
	h1 ^= h0
	h0 = bits.RotateLeft64(h0, 63)
	h1 += h0
	return h0, h1, h2, h3
}

// spookyShort hashes messages shorter than 192 bytes.
func spookyShort(p []byte, seed1, seed2 uint64) (uint64, uint64) {
	length := len(p)
	a, b := seed1, seed2
	c, d := scConst, scConst

	rem := length % 32
	if length >= 16 {
		for ; len(p) >= 32; p = p[32:] {
			c += binary.LittleEndian.Uint64(p[0:])
			d += binary.LittleEndian.Uint64(p[8:])
			a, b, c, d = shortMix(a, b, c, d)
			a += binary.LittleEndian.Uint64(p[16:])
			b += binary.LittleEndian.Uint64(p[24:])
		}

		if rem >= 16 {
			c += binary.LittleEndian.Uint64(p[0:])
			d += binary.LittleEndian.Uint64(p[8:])
			a, b, c, d = shortMix(a, b, c, d)
			p = p[16:]
			rem -= 16
		}
	}

	d += uint64(length) << 56
	switch {
	case rem >= 8:
		c += binary.LittleEndian.Uint64(p)
		d += partial64(p[8:rem])
	case rem > 0:
		c += partial64(p[:rem])
	default:
		c += scConst
		d += scConst
	}

	a, b, _, _ = shortEnd(a, b, c, d)
	return a, b
}

// partial64 reads up to 8 bytes as a little-endian word.
func partial64(p []byte) uint64 {
	var v uint64
	for i, b := range p {
		v |= uint64(b) << (8 * i)
	}
	return v
}

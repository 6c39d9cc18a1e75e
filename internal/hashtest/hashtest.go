// Package hashtest checks the properties every streaming hasher must have.
package hashtest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
	"testing"

	"go.dw1.io/hashers"
)

// Lengths are the input sizes exercised by [Run]. They cover the block and
// short-path boundaries of every algorithm.
var Lengths = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 11, 12, 13, 15, 16, 17, 31, 32, 33, 47, 48, 49, 63, 64, 65, 95, 96, 97, 191, 192, 193, 255, 300, 777, 1024}

type options struct {
	avalanche bool
	zeroBlind bool
	trials    int
}

// Option configures [Run].
type Option func(*options)

// WithAvalanche enables the single-bit avalanche check. Legacy byte
// recurrences do not pass it.
func WithAvalanche() Option {
	return func(o *options) {
		o.avalanche = true
	}
}

// WithoutZeroRuns skips the length check on runs of zero bytes. With a zero
// seed, sdbm, lose-lose and one-at-a-time map every all-zero input to 0.
func WithoutZeroRuns() Option {
	return func(o *options) {
		o.zeroBlind = true
	}
}

// WithTrials sets the number of random splits per input length.
func WithTrials(n int) Option {
	return func(o *options) {
		o.trials = n
	}
}

// Run checks determinism, chunking invariance, zero-length writes,
// non-destructive digests, Reset, seed and length sensitivity, and Sum
// encoding for b.
func Run[D hashers.Digest](t *testing.T, b hashers.Builder[D], opts ...Option) {
	t.Helper()

	o := &options{trials: 8}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	t.Run("Deterministic", func(t *testing.T) { deterministic(t, b) })
	t.Run("ChunkingInvariant", func(t *testing.T) { chunking(t, b, o.trials) })
	t.Run("ZeroLengthWrite", func(t *testing.T) { zeroLength(t, b) })
	t.Run("DigestIsNonDestructive", func(t *testing.T) { nonDestructive(t, b) })
	t.Run("Reset", func(t *testing.T) { reset(t, b) })
	t.Run("SeedSensitive", func(t *testing.T) { seedSensitive(t, b) })
	t.Run("LengthSensitive", func(t *testing.T) { lengthSensitive(t, b, !o.zeroBlind) })
	t.Run("SumAppendsDigest", func(t *testing.T) { sumAppends(t, b) })

	if o.avalanche {
		t.Run("Avalanche", func(t *testing.T) { avalanche(t, b) })
	}
}

// Input returns n deterministic pseudo-random bytes.
func Input(n int) []byte {
	r := rand.New(rand.NewPCG(uint64(n), 0x9e3779b97f4a7c15))
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(r.Uint32())
	}
	return p
}

func oneShot[D hashers.Digest](b hashers.Builder[D], seed hashers.Seed, p []byte) D {
	return hashers.Sum(b, seed, p)
}

func deterministic[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	seed := hashers.Seed{Lo: 0x0123456789abcdef, Hi: 0xfedcba9876543210}
	for _, n := range Lengths {
		p := Input(n)
		if x, y := oneShot(b, seed, p), oneShot(b, seed, p); x != y {
			t.Fatalf("len %d: %#x != %#x", n, x, y)
		}
	}
}

func chunking[D hashers.Digest](t *testing.T, b hashers.Builder[D], trials int) {
	r := rand.New(rand.NewPCG(1, 2))
	seed := hashers.Seed64(42)

	for _, n := range Lengths {
		p := Input(n)
		want := oneShot(b, seed, p)

		for trial := 0; trial < trials; trial++ {
			h := b.New(seed)
			for rest := p; len(rest) > 0; {
				k := r.IntN(len(rest) + 1)
				if trial == 0 {
					k = 1
				}
				if _, err := h.Write(rest[:k]); err != nil {
					t.Fatalf("len %d: write: %v", n, err)
				}
				rest = rest[k:]
			}
			if got := h.Digest(); got != want {
				t.Fatalf("len %d trial %d: chunked %#x, one-shot %#x", n, trial, got, want)
			}
		}
	}
}

func zeroLength[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	p := Input(100)
	want := oneShot(b, hashers.Seed{}, p)

	h := b.New(hashers.Seed{})
	h.Write(nil)
	h.Write(p[:37])
	h.Write([]byte{})
	h.Write(p[37:])
	h.Write(nil)
	if got := h.Digest(); got != want {
		t.Fatalf("got %#x want %#x", got, want)
	}

	if got, empty := b.New(hashers.Seed{}).Digest(), oneShot(b, hashers.Seed{}, nil); got != empty {
		t.Fatalf("fresh hasher %#x, empty input %#x", got, empty)
	}
}

func nonDestructive[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	p := Input(300)
	h := b.New(hashers.Seed64(7))

	h.Write(p[:150])
	first := h.Digest()
	if again := h.Digest(); again != first {
		t.Fatalf("repeated digest changed: %#x then %#x", first, again)
	}
	h.Sum(nil)
	if first != oneShot(b, hashers.Seed64(7), p[:150]) {
		t.Fatalf("prefix digest mismatch")
	}

	h.Write(p[150:])
	if got, want := h.Digest(), oneShot(b, hashers.Seed64(7), p); got != want {
		t.Fatalf("write after digest: got %#x want %#x", got, want)
	}
}

func reset[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	seed := hashers.Seed{Lo: 3, Hi: 5}
	h := b.New(seed)
	h.Write(Input(500))
	h.Reset()

	if got, want := h.Digest(), oneShot(b, seed, nil); got != want {
		t.Fatalf("empty after reset: got %#x want %#x", got, want)
	}

	p := Input(64)
	h.Write(p)
	if got, want := h.Digest(), oneShot(b, seed, p); got != want {
		t.Fatalf("after reset: got %#x want %#x", got, want)
	}
}

func seedSensitive[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	for _, p := range [][]byte{[]byte("abc"), Input(300)} {
		x := oneShot(b, hashers.Seed64(1), p)
		y := oneShot(b, hashers.Seed64(2), p)
		if x == y {
			t.Fatalf("len %d: seeds 1 and 2 both give %#x", len(p), x)
		}
	}
}

func lengthSensitive[D hashers.Digest](t *testing.T, b hashers.Builder[D], zeroRuns bool) {
	inputs := [][]byte{[]byte("a"), []byte("abc"), []byte("hello, world"), Input(100)}
	if zeroRuns {
		inputs = append(inputs, []byte{0}, make([]byte, 12))
	}
	for _, p := range inputs {
		twice := append(bytes.Clone(p), p...)
		if x, y := oneShot(b, hashers.Seed{}, p), oneShot(b, hashers.Seed{}, twice); x == y {
			t.Fatalf("%q: hash(b) == hash(b||b) == %#x", p, x)
		}
	}
}

func sumAppends[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	h := b.New(hashers.Seed{})
	h.Write([]byte("abc"))

	prefix := []byte{0xaa, 0xbb}
	out := h.Sum(prefix)
	if len(out) != len(prefix)+h.Size() {
		t.Fatalf("sum length: got %d want %d", len(out), len(prefix)+h.Size())
	}
	if !bytes.Equal(out[:2], prefix) {
		t.Fatalf("sum prefix clobbered: %x", out)
	}

	var want uint64
	switch h.Size() {
	case 4:
		want = uint64(binary.BigEndian.Uint32(out[2:]))
	case 8:
		want = binary.BigEndian.Uint64(out[2:])
	default:
		t.Fatalf("unexpected size %d", h.Size())
	}
	if uint64(h.Digest()) != want {
		t.Fatalf("sum bytes %x do not encode digest %#x", out[2:], h.Digest())
	}
}

func avalanche[D hashers.Digest](t *testing.T, b hashers.Builder[D]) {
	const (
		inputs = 64
		size   = 16
	)

	width := 8 * b.New(hashers.Seed{}).Size()
	var flips, total int
	for i := 0; i < inputs; i++ {
		p := Input(size + i)[:size]
		base := uint64(oneShot(b, hashers.Seed{}, p))
		for bit := 0; bit < size*8; bit++ {
			p[bit/8] ^= 1 << (bit % 8)
			flips += bits.OnesCount64(base ^ uint64(oneShot(b, hashers.Seed{}, p)))
			total += width
			p[bit/8] ^= 1 << (bit % 8)
		}
	}

	ratio := float64(flips) / float64(total)
	if ratio < 0.4 || ratio > 0.6 {
		t.Fatalf("avalanche ratio %.4f outside [0.4, 0.6]", ratio)
	}
}

package algorithm

import (
	"errors"
	"fmt"
	"hash"
	"slices"
	"strings"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/fibonacci"
	"go.dw1.io/hashers/internal/regexp"
	"go.dw1.io/hashers/jenkins"
	"go.dw1.io/hashers/murmur3"
	"go.dw1.io/hashers/oz"
	"go.dw1.io/hashers/wyhash"
	"go.dw1.io/hashers/xxhash"
)

// ErrUnknownAlgorithm indicates a name that is not registered.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// ErrInvalidPattern indicates a selection pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid algorithm pattern")

// Name identifies an algorithm.
type Name string

// Registered names.
const (
	Murmur3x32 Name = "murmur3-32"
	Murmur3x64 Name = "murmur3-64"
	XXH64      Name = "xxh64"
	XXH3       Name = "xxh3"
	Spooky     Name = "spooky"
	Lookup3    Name = "lookup3"
	Wyhash64   Name = "wyhash64"
	Wyhash32   Name = "wyhash32"
	OAAT       Name = "oaat"
	DJB2       Name = "djb2"
	SDBM       Name = "sdbm"
	LoseLose   Name = "loselose"
)

// FibPrefix marks the Fibonacci-spread form of a name.
const FibPrefix = "fib-"

// Fib returns the Fibonacci-spread form of n.
func Fib(n Name) Name { return FibPrefix + n }

// Hasher is the 64-bit view of a registered algorithm.
type Hasher interface {
	hash.Hash64
	Digest() uint64
}

// Algorithm describes a registered hasher.
type Algorithm struct {
	Name Name
	// Bits is the natural digest width, 32 or 64.
	Bits int
	// Avalanche reports whether a single-bit input change flips about half
	// of the digest bits. The legacy byte recurrences do not.
	Avalanche bool
	// ZeroRunBlind reports that, under a zero seed, every run of zero bytes
	// hashes to 0 regardless of its length.
	ZeroRunBlind bool
	// New returns a fresh hasher for seed.
	New func(seed hashers.Seed) Hasher
}

// Builder adapts a to [hashers.Builder].
func (a Algorithm) Builder() hashers.Builder[uint64] {
	return hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
		return a.New(seed)
	})
}

// Sum returns the digest of p.
func (a Algorithm) Sum(seed hashers.Seed, p []byte) uint64 {
	return hashers.Sum(a.Builder(), seed, p)
}

// widened zero-extends a 32-bit digest.
type widened struct {
	hashers.Hash[uint32]
}

func (w widened) Sum64() uint64  { return uint64(w.Hash.Digest()) }
func (w widened) Digest() uint64 { return w.Sum64() }

func from64(b hashers.Builder[uint64]) func(hashers.Seed) Hasher {
	return func(seed hashers.Seed) Hasher {
		return b.New(seed).(Hasher)
	}
}

func from32(b hashers.Builder[uint32]) func(hashers.Seed) Hasher {
	return func(seed hashers.Seed) Hasher {
		return widened{b.New(seed)}
	}
}

func spread(a Algorithm) Algorithm {
	return Algorithm{
		Name:         Fib(a.Name),
		Bits:         64,
		Avalanche:    a.Avalanche,
		ZeroRunBlind: a.ZeroRunBlind,
		New: func(seed hashers.Seed) Hasher {
			return fibonacci.Wrap64(a.New(seed))
		},
	}
}

var registry = func() map[Name]Algorithm {
	base := []Algorithm{
		{Name: Murmur3x32, Bits: 32, Avalanche: true, New: from32(murmur3.Builder32)},
		{Name: Murmur3x64, Bits: 64, Avalanche: true, New: from64(murmur3.Builder128)},
		{Name: XXH64, Bits: 64, Avalanche: true, New: from64(xxhash.Builder64)},
		{Name: XXH3, Bits: 64, Avalanche: true, New: from64(xxhash.Builder3)},
		{Name: Spooky, Bits: 64, Avalanche: true, New: from64(jenkins.BuilderSpooky)},
		{Name: Lookup3, Bits: 64, Avalanche: true, New: from64(jenkins.BuilderLookup3)},
		{Name: Wyhash64, Bits: 64, Avalanche: true, New: from64(wyhash.Builder64)},
		{Name: Wyhash32, Bits: 32, Avalanche: true, New: from32(wyhash.Builder32)},
		{Name: OAAT, Bits: 32, ZeroRunBlind: true, New: from32(jenkins.BuilderOAAT)},
		{Name: DJB2, Bits: 32, New: from32(oz.BuilderDJB2)},
		{Name: SDBM, Bits: 32, ZeroRunBlind: true, New: from32(oz.BuilderSDBM)},
		{Name: LoseLose, Bits: 32, ZeroRunBlind: true, New: from32(oz.BuilderLoseLose)},
	}

	m := make(map[Name]Algorithm, 2*len(base))
	for _, a := range base {
		m[a.Name] = a
		f := spread(a)
		m[f.Name] = f
	}
	return m
}()

// Lookup returns the algorithm registered under name. Names are matched
// case-insensitively.
func Lookup(name Name) (Algorithm, error) {
	a, ok := registry[Name(strings.ToLower(strings.TrimSpace(string(name))))]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Names returns every registered name in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Select returns the algorithms whose names match pattern, sorted by name.
// RE2 syntax is compiled with coregex; PCRE-only syntax such as
// "^(?!fib-)" falls back to regexp2.
func Select(pattern string) ([]Algorithm, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	all := make([]string, 0, len(registry))
	for _, n := range Names() {
		all = append(all, string(n))
	}

	matched := re.Filter(all)
	out := make([]Algorithm, 0, len(matched))
	for _, n := range matched {
		out = append(out, registry[Name(n)])
	}
	return out, nil
}

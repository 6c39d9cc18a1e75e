package xxhash

import (
	"hash"

	"github.com/zeebo/xxh3"

	"go.dw1.io/hashers"
)

// Compile-time interface assertions.
var _ hash.Hash64 = (*XXH3)(nil)
var _ hashers.Hash[uint64] = (*XXH3)(nil)

// Builder3 creates XXH3 hashers seeded with [hashers.Seed.Fold64].
var Builder3 hashers.Builder[uint64] = hashers.BuilderFunc[uint64](func(seed hashers.Seed) hashers.Hash[uint64] {
	return New3WithSeed(seed.Fold64())
})

// XXH3 is a streaming 64-bit XXH3 hasher. It wraps [xxh3.Hasher], whose Sum64
// already leaves the state untouched.
type XXH3 struct {
	*xxh3.Hasher
}

// New3 returns an XXH3 hasher with seed 0.
func New3() *XXH3 { return &XXH3{Hasher: xxh3.New()} }

// New3WithSeed returns an XXH3 hasher seeded with seed.
func New3WithSeed(seed uint64) *XXH3 {
	return &XXH3{Hasher: xxh3.NewSeed(seed)}
}

// Sum3 returns the XXH3 of data with seed 0.
func Sum3(data []byte) uint64 { return xxh3.Hash(data) }

// Sum3WithSeed returns the XXH3 of data with the provided seed.
func Sum3WithSeed(data []byte, seed uint64) uint64 { return xxh3.HashSeed(data, seed) }

// Digest is Sum64.
func (h *XXH3) Digest() uint64 { return h.Sum64() }

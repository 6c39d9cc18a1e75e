// Package hashers is a collection of interchangeable non-cryptographic hash
// functions for hash tables.
//
// Every algorithm lives in its own package (murmur3, xxhash, jenkins, oz,
// wyhash, fibonacci) and exposes streaming hashers that satisfy [hash.Hash]
// plus [hash.Hash32] or [hash.Hash64] for their natural digest width. All of
// them also satisfy [Hash], so callers can be generic over the algorithm:
//
//	func bucket[D hashers.Digest](b hashers.Builder[D], key []byte, n D) D {
//		return hashers.Sum(b, hashers.Seed{}, key) % n
//	}
//
// A hasher is owned by one computation. Writes never fail, and reading the
// digest does not change the state: more data may be written afterwards, and
// Reset restores the seeded initial state.
//
// None of these functions resist hash flooding. Do not use them where an
// attacker controls the keys and the table relies on the digest for
// worst-case bounds.
package hashers

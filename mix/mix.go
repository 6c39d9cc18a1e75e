// Package mix holds the stateless bit-mixing primitives shared by the hash
// algorithms. Every function is total and wraps on overflow.
package mix

import "math/bits"

// Rotl32 rotates x left by k bits.
func Rotl32(x uint32, k int) uint32 { return bits.RotateLeft32(x, k) }

// Rotl64 rotates x left by k bits.
func Rotl64(x uint64, k int) uint64 { return bits.RotateLeft64(x, k) }

// Fmix32 is the MurmurHash3 32-bit finalizer. It forces every input bit to
// affect every output bit.
func Fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Fmix64 is the MurmurHash3 64-bit finalizer.
func Fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// xxHash64 primes.
const (
	Prime64_1 uint64 = 11400714785074694791
	Prime64_2 uint64 = 14029467366897019727
	Prime64_3 uint64 = 1609587929392839161
	Prime64_4 uint64 = 9650029242287828579
	Prime64_5 uint64 = 2870177450012600261
)

// Round64 folds one 8-byte word into an xxHash64 lane.
func Round64(acc, input uint64) uint64 {
	acc += input * Prime64_2
	acc = bits.RotateLeft64(acc, 31)
	acc *= Prime64_1
	return acc
}

// MergeRound64 merges a lane into the converged xxHash64 accumulator.
func MergeRound64(acc, val uint64) uint64 {
	val = Round64(0, val)
	acc ^= val
	acc = acc*Prime64_1 + Prime64_4
	return acc
}

// Avalanche64 is the xxHash64 finalizer.
func Avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= Prime64_2
	h ^= h >> 29
	h *= Prime64_3
	h ^= h >> 32
	return h
}

// Mum returns the 128-bit product of a and b.
func Mum(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Wymix multiplies a and b and folds the halves of the product.
func Wymix(a, b uint64) uint64 {
	lo, hi := Mum(a, b)
	return hi ^ lo
}

// wyhash 32-bit pair secrets.
const (
	wyk1_32 = uint32(0xa0b428db)
	wyk2_32 = uint32(0x9c88c6e3)
)

// Wymix32 is the 32-bit wyhash pair mix.
func Wymix32(a, b uint32) (uint32, uint32) {
	v := uint64(a^wyk1_32) * uint64(b^wyk2_32)
	return uint32(v), uint32(v >> 32)
}

// Lookup3Mix is the reversible mix of Bob Jenkins' lookup3.
func Lookup3Mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= bits.RotateLeft32(c, 4)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 6)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 8)
	b += a
	a -= c
	a ^= bits.RotateLeft32(c, 16)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 19)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 4)
	b += a
	return a, b, c
}

// Lookup3Final is the final mixing of three lookup3 words into c (and b).
func Lookup3Final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return a, b, c
}

// Fibonacci multipliers: 2^w divided by the golden ratio, rounded to odd.
const (
	Fibonacci64 uint64 = 11400714819323198485
	Fibonacci32 uint32 = 2654435769
)

// Fib64 spreads h over the full 64-bit range.
func Fib64(h uint64) uint64 { return h * Fibonacci64 }

// Fib32 spreads h over the full 32-bit range.
func Fib32(h uint32) uint32 { return h * Fibonacci32 }

// Package murmur3 implements Austin Appleby's MurmurHash3.
//
// [Hash32] is the x86_32 variant and [Hash128] the x64_128 variant; the
// latter reports the first 64-bit half through [hash.Hash64] and both halves
// through Sum128. Both stream in fixed blocks, so only the unfinished block is
// buffered between writes.
package murmur3

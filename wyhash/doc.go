// Package wyhash provides a Go implementation of the wyhash non-cryptographic
// hash.
//
// It offers streaming hashers that satisfy [hash.Hash64] and [hash.Hash32],
// plus convenience helpers for one-shot sums. wyhash reads the final 16 bytes
// of the input twice when the input is long, so the hashers buffer their input
// and mix it when a digest is requested.
package wyhash

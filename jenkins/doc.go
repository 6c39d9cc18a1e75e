// Package jenkins provides Bob Jenkins' hash functions: one-at-a-time,
// lookup3 (hashlittle2) and SpookyHash V2.
//
// [OAAT] folds one byte at a time and is kept for comparison; it does not
// avalanche well, and with a zero seed every run of zero bytes hashes to 0.
// [Lookup3] needs the total length before mixing starts, so it buffers its
// input until a digest is requested. [Spooky] streams in 96-byte blocks and
// switches to a short-message path below 192 bytes.
package jenkins

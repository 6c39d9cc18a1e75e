// Package algorithm names every hasher in the module and builds them from a
// [Config].
//
// There is no package-level default hasher. Callers start from
// [DefaultConfig], load one with [ParseConfig] or [LoadConfig], or fill a
// Config themselves, and pass it to [New].
//
// All algorithms are exposed as 64-bit hashers. A 32-bit digest is
// zero-extended; [Algorithm.Bits] records the natural width. Each name also
// has a "fib-" form whose digest is multiplied by 2^64/phi.
package algorithm

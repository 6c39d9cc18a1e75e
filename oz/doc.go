// Package oz provides the classic byte-at-a-time string hashes collected by
// Ozan Yigit: djb2, sdbm and lose-lose.
//
// They are weak by modern standards. None of them folds the input length or
// mixes the final state, so they fail avalanche checks, and lose-lose is
// invariant under byte permutation. With a zero seed, sdbm and lose-lose map
// every run of zero bytes to 0 whatever its length. They are kept as
// baselines for the distribution measurements in package stats.
package oz

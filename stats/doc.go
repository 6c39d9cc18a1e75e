// Package stats measures how well a hash function spreads its inputs.
//
// [Chi2] buckets the low bits of each digest and compares the counts with a
// uniform spread. [KolmogorovSmirnov] compares the sorted digests with the
// uniform distribution over the full word. [Avalanche] flips single input
// bits and records how often each output bit changes. The sample generators
// produce the input shapes that hash tables see in practice: random bytes,
// alphanumeric keys, sequential identifiers and dictionary words.
package stats

// Package xxhash provides Yann Collet's xxHash family.
//
// [XXH64] is implemented here on the shared block buffer. [XXH3] adapts
// github.com/zeebo/xxh3 to the same hasher interface.
package xxhash

// Package cast converts loosely typed configuration values to integers.
//
// Integer inputs are range-checked with [safemath]. Strings, such as seed
// words written as "0xdeadbeef", are parsed by [cast] at 64 bits and then
// range-checked, so a value that does not fit the target type is an error
// rather than a silent truncation.
package cast

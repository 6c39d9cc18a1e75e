// Package regexp compiles patterns with the fastest engine that can run them.
//
// Patterns are compiled with coregex, an accelerated RE2-compatible engine.
// Patterns that use PCRE-only constructs, such as lookarounds, atomic groups
// or backreferences, fall back to [regexp2].
package regexp

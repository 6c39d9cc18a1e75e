// Package json encodes and decodes JSON with sonic on the platforms sonic's
// JIT supports, and with encoding/json elsewhere.
package json

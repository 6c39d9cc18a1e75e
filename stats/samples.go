package stats

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"go.dw1.io/hashers/internal/file"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Uniform returns n random byte strings of the given size.
func Uniform(rng *rand.Rand, n, size int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		p := make([]byte, size)
		fill(rng, p)
		out[i] = p
	}
	return out
}

// Alphanumeric returns n random strings of the given size drawn from
// [a-zA-Z0-9].
func Alphanumeric(rng *rand.Rand, n, size int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		p := make([]byte, size)
		for j := range p {
			p[j] = alphanumeric[rng.IntN(len(alphanumeric))]
		}
		out[i] = p
	}
	return out
}

// Generated returns the sequential keys "a0", "a1", ... zero-padded to width
// digits.
func Generated(n, width int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = fmt.Appendf(nil, "a%0*d", width, i)
	}
	return out
}

// Words returns the non-empty lines of the file at path.
func Words(path string) ([][]byte, error) {
	data, err := file.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out [][]byte
	for line := range bytes.Lines(data) {
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s has no words", ErrInvalidArgument, path)
	}

	return out, nil
}

func fill(rng *rand.Rand, p []byte) {
	for len(p) >= 8 {
		v := rng.Uint64()
		for i := 0; i < 8; i++ {
			p[i] = byte(v >> (8 * i))
		}
		p = p[8:]
	}
	if len(p) > 0 {
		v := rng.Uint64()
		for i := range p {
			p[i] = byte(v >> (8 * i))
		}
	}
}

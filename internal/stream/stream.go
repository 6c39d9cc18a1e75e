// Package stream implements the block buffering shared by the streaming
// hashers.
//
// A [Digest] sits in front of a [Mixer]: it keeps the bytes that do not yet
// fill a block and the running total length, and hands whole blocks to the
// mixer in input order. Every block is folded exactly once, so the lane state
// does not depend on how the input was split across writes.
package stream

// MaxBlockSize is the largest block a [Mixer] may declare.
const MaxBlockSize = 64

// Mixer folds whole blocks into lane state.
type Mixer interface {
	// BlockSize is the number of bytes folded at a time. It must be in
	// [1, MaxBlockSize] and must not change.
	BlockSize() int

	// Blocks folds every whole block at the front of p and returns the
	// remaining tail, which is shorter than one block.
	Blocks(p []byte) (tail []byte)
}

// Digest buffers the tail for a [Mixer] and counts the bytes written.
type Digest struct {
	m     Mixer
	total uint64
	n     int
	buf   [MaxBlockSize]byte
}

// Init binds m and clears the buffered state.
func (d *Digest) Init(m Mixer) {
	d.m = m
	d.Reset()
}

// Write buffers or folds p. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil
	}

	d.total += uint64(n)

	if d.n > 0 {
		bs := d.m.BlockSize()
		free := bs - d.n
		if len(p) < free {
			d.n += copy(d.buf[d.n:], p)
			return n, nil
		}

		copy(d.buf[d.n:bs], p[:free])
		d.m.Blocks(d.buf[:bs])
		d.n = 0
		p = p[free:]
	}

	tail := d.m.Blocks(p)
	d.n = copy(d.buf[:], tail)

	return n, nil
}

// WriteString is like Write but takes a string.
func (d *Digest) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// Tail returns the buffered bytes that have not been folded. The slice
// aliases internal state and is valid until the next Write or Reset.
func (d *Digest) Tail() []byte { return d.buf[:d.n] }

// Len returns the total number of bytes written since the last Reset.
func (d *Digest) Len() uint64 { return d.total }

// Reset discards the tail and the length. The mixer's lanes are reset by the
// owner.
func (d *Digest) Reset() {
	d.total = 0
	d.n = 0
}

package stream

import (
	"bytes"
	"testing"
)

// recorder is a Mixer that remembers every block it folds.
type recorder struct {
	size   int
	blocks [][]byte
}

func (r *recorder) BlockSize() int { return r.size }

func (r *recorder) Blocks(p []byte) []byte {
	for len(p) >= r.size {
		r.blocks = append(r.blocks, bytes.Clone(p[:r.size]))
		p = p[r.size:]
	}
	return p
}

func ones(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 1
	}
	return s
}

func TestDigestFoldsBlocksInOrder(t *testing.T) {
	data := []byte("abcdefghijklmnopqrstuvwxyz0123456789")

	tests := []struct {
		name   string
		size   int
		chunks []int
	}{
		{name: "single", size: 4, chunks: []int{36}},
		{name: "bytewise", size: 4, chunks: ones(36)},
		{name: "uneven", size: 16, chunks: []int{3, 0, 17, 5, 11}},
		{name: "exact", size: 12, chunks: []int{12, 12, 12}},
		{name: "max", size: MaxBlockSize, chunks: []int{7, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Digest
			r := &recorder{size: tt.size}
			d.Init(r)

			off := 0
			for _, c := range tt.chunks {
				n, err := d.Write(data[off : off+c])
				if err != nil || n != c {
					t.Fatalf("write: n=%d err=%v", n, err)
				}
				off += c
			}

			want := &recorder{size: tt.size}
			tail := want.Blocks(data)

			if len(r.blocks) != len(want.blocks) {
				t.Fatalf("blocks: got %d want %d", len(r.blocks), len(want.blocks))
			}
			for i := range r.blocks {
				if !bytes.Equal(r.blocks[i], want.blocks[i]) {
					t.Fatalf("block %d: got %q want %q", i, r.blocks[i], want.blocks[i])
				}
			}
			if !bytes.Equal(d.Tail(), tail) {
				t.Fatalf("tail: got %q want %q", d.Tail(), tail)
			}
			if d.Len() != uint64(len(data)) {
				t.Fatalf("len: got %d want %d", d.Len(), len(data))
			}
		})
	}
}

func TestDigestReset(t *testing.T) {
	var d Digest
	d.Init(&recorder{size: 8})

	if _, err := d.WriteString("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	d.Reset()

	if d.Len() != 0 || len(d.Tail()) != 0 {
		t.Fatalf("reset: len=%d tail=%q", d.Len(), d.Tail())
	}
}

func TestDigestZeroLengthWrite(t *testing.T) {
	var d Digest
	r := &recorder{size: 4}
	d.Init(r)

	d.Write([]byte("ab"))
	if n, err := d.Write(nil); n != 0 || err != nil {
		t.Fatalf("empty write: n=%d err=%v", n, err)
	}
	if string(d.Tail()) != "ab" || d.Len() != 2 || len(r.blocks) != 0 {
		t.Fatalf("state changed: tail=%q len=%d blocks=%d", d.Tail(), d.Len(), len(r.blocks))
	}
}

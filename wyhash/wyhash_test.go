package wyhash_test

import (
	"encoding/binary"
	"testing"

	"go.dw1.io/hashers/internal/hashtest"
	"go.dw1.io/hashers/wyhash"
)

func TestHash64StreamingMatchesOneShot(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		seed uint64
	}{
		{name: "empty", data: nil, seed: 0},
		{name: "small", data: []byte("abc"), seed: 1},
		{name: "medium", data: []byte("hello wyhash"), seed: 123456789},
		{name: "repeated", data: bytesOf(128, 0x5a), seed: ^uint64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := wyhash.Sum64WithSeed(tt.data, tt.seed)

			h := wyhash.New64WithSeed(tt.seed)
			n := len(tt.data)
			if _, err := h.Write(tt.data[:n/3]); err != nil {
				t.Fatalf("write chunk 1: %v", err)
			}
			if _, err := h.Write(tt.data[n/3 : n*2/3]); err != nil {
				t.Fatalf("write chunk 2: %v", err)
			}
			if _, err := h.WriteString(string(tt.data[n*2/3:])); err != nil {
				t.Fatalf("write chunk 3: %v", err)
			}
			if got := h.Sum64(); got != expected {
				t.Fatalf("streamed sum64 mismatch: got %d want %d", got, expected)
			}

			h.Reset()
			if _, err := h.Write(tt.data); err != nil {
				t.Fatalf("write full reset: %v", err)
			}
			if got := h.Digest(); got != expected {
				t.Fatalf("reset sum64 mismatch: got %d want %d", got, expected)
			}

			prefix := []byte{0xaa, 0xbb}
			out := h.Sum(prefix)
			want := append(prefix, u64(expected)...)
			if string(out) != string(want) {
				t.Fatalf("sum64 append mismatch: got %x want %x", out, want)
			}
		})
	}
}

func TestHash32StreamingMatchesOneShot(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		seed uint32
	}{
		{name: "empty", data: nil, seed: 0},
		{name: "small", data: []byte("abc"), seed: 1},
		{name: "medium", data: []byte("hello wyhash"), seed: 123456789},
		{name: "repeated", data: bytesOf(128, 0xa5), seed: ^uint32(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := wyhash.Sum32WithSeed(tt.data, tt.seed)

			h := wyhash.New32WithSeed(tt.seed)
			n := len(tt.data)
			if _, err := h.Write(tt.data[:n/2]); err != nil {
				t.Fatalf("write chunk 1: %v", err)
			}
			if _, err := h.Write(tt.data[n/2:]); err != nil {
				t.Fatalf("write chunk 2: %v", err)
			}
			if got := h.Sum32(); got != expected {
				t.Fatalf("streamed sum32 mismatch: got %d want %d", got, expected)
			}

			h.Reset()
			if _, err := h.Write(tt.data); err != nil {
				t.Fatalf("write full reset: %v", err)
			}
			if got := h.Digest(); got != expected {
				t.Fatalf("reset sum32 mismatch: got %d want %d", got, expected)
			}

			prefix := []byte{0xaa}
			out := h.Sum(prefix)
			want := append(prefix, u32(expected)...)
			if string(out) != string(want) {
				t.Fatalf("sum32 append mismatch: got %x want %x", out, want)
			}
		})
	}
}

func TestGolden(t *testing.T) {
	counting := make([]byte, 1024)
	for i := range counting {
		counting[i] = byte(i)
	}

	if got := wyhash.Sum64([]byte("abc")); got != 0xe3ceb03c39a692f8 {
		t.Fatalf("sum64 abc: got %#x", got)
	}
	if got := wyhash.Sum32([]byte("abc")); got != 0xbee84411 {
		t.Fatalf("sum32 abc: got %#x", got)
	}
	if got := wyhash.Sum64(counting); got != 0x40f56cfdd179287b {
		t.Fatalf("sum64 counting: got %#x", got)
	}
	if got := wyhash.Sum32(counting); got != 0x12d81a5a {
		t.Fatalf("sum32 counting: got %#x", got)
	}
}

func TestHash64Properties(t *testing.T) {
	hashtest.Run(t, wyhash.Builder64, hashtest.WithAvalanche())
}

func TestHash32Properties(t *testing.T) {
	hashtest.Run(t, wyhash.Builder32, hashtest.WithAvalanche())
}

func BenchmarkSum64(b *testing.B) {
	data := hashtest.Input(1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		wyhash.Sum64(data)
	}
}

func BenchmarkSum32(b *testing.B) {
	data := hashtest.Input(1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		wyhash.Sum32(data)
	}
}

func bytesOf(n int, b byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}

func u64(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

func u32(v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return buf[:]
}

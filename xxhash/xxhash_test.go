package xxhash_test

import (
	"bytes"
	"strconv"
	"testing"

	cespare "github.com/cespare/xxhash/v2"

	"go.dw1.io/hashers/internal/hashtest"
	"go.dw1.io/hashers/xxhash"
)

func counting(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestXXH64Golden(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		seed uint64
		want uint64
	}{
		{name: "empty", data: nil, seed: 0, want: 0xef46db3751d8e999},
		{name: "abc", data: []byte("abc"), seed: 0, want: 0x44bc2cf5ad770999},
		{name: "counting-1024", data: counting(1024), seed: 0, want: 0x6f3914f18fe4df57},
		{name: "counting-1024-seed", data: counting(1024), seed: 42, want: 0x4cb9b11211d5b1a0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := xxhash.Sum64WithSeed(tt.data, tt.seed); got != tt.want {
				t.Fatalf("one-shot: got %#x want %#x", got, tt.want)
			}

			h := xxhash.New64WithSeed(tt.seed)
			n := len(tt.data)
			h.Write(tt.data[:n/3])
			h.Write(tt.data[n/3 : n*2/3])
			h.Write(tt.data[n*2/3:])
			if got := h.Sum64(); got != tt.want {
				t.Fatalf("streamed: got %#x want %#x", got, tt.want)
			}
		})
	}
}

func TestXXH64MatchesCespare(t *testing.T) {
	for _, n := range hashtest.Lengths {
		data := hashtest.Input(n)
		for _, seed := range []uint64{0, 1, ^uint64(0)} {
			ref := cespare.NewWithSeed(seed)
			ref.Write(data)

			h := xxhash.New64WithSeed(seed)
			for i := 0; i < n; i += 7 {
				h.Write(data[i:min(i+7, n)])
			}
			if got, want := h.Sum64(), ref.Sum64(); got != want {
				t.Fatalf("len %d seed %#x: got %#x want %#x", n, seed, got, want)
			}
		}
	}
}

func TestXXH3Golden(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{name: "empty", data: nil, want: 0x2d06800538d394c2},
		{name: "abc", data: []byte("abc"), want: 0x78af5f94892f3950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := xxhash.Sum3(tt.data); got != tt.want {
				t.Fatalf("one-shot: got %#x want %#x", got, tt.want)
			}

			h := xxhash.New3()
			for _, b := range tt.data {
				h.Write([]byte{b})
			}
			if got := h.Digest(); got != tt.want {
				t.Fatalf("streamed: got %#x want %#x", got, tt.want)
			}
		})
	}
}

func TestXXH3SeededStreamMatchesOneShot(t *testing.T) {
	data := hashtest.Input(777)
	h := xxhash.New3WithSeed(99)
	h.Write(data[:100])
	h.Write(data[100:])
	if got, want := h.Digest(), xxhash.Sum3WithSeed(data, 99); got != want {
		t.Fatalf("got %#x want %#x", got, want)
	}
}

func TestSumIsBigEndian(t *testing.T) {
	h := xxhash.New64()
	h.WriteString("abc")
	want := []byte{0x44, 0xbc, 0x2c, 0xf5, 0xad, 0x77, 0x09, 0x99}
	if got := h.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestXXH64Properties(t *testing.T) {
	hashtest.Run(t, xxhash.Builder64, hashtest.WithAvalanche())
}

func TestXXH3Properties(t *testing.T) {
	hashtest.Run(t, xxhash.Builder3, hashtest.WithAvalanche())
}

func BenchmarkXXH64(b *testing.B) {
	for _, n := range []int{4, 32, 1024} {
		data := hashtest.Input(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				xxhash.Sum64(data)
			}
		})
	}
}

func BenchmarkXXH3(b *testing.B) {
	for _, n := range []int{4, 32, 1024} {
		data := hashtest.Input(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				xxhash.Sum3(data)
			}
		})
	}
}

package mix_test

import (
	"testing"

	"go.dw1.io/hashers/mix"
)

func TestFinalizers(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{name: "fmix32-zero", got: uint64(mix.Fmix32(0)), want: 0},
		{name: "fmix32-one", got: uint64(mix.Fmix32(1)), want: 0x514e28b7},
		{name: "fmix64-zero", got: mix.Fmix64(0), want: 0},
		{name: "fmix64-one", got: mix.Fmix64(1), want: 0xb456bcfc34c2cb2c},
		{name: "avalanche64-one", got: mix.Avalanche64(1), want: 0x283a72a5b9ab93d3},
		{name: "round64", got: mix.Round64(0, 1), want: 0x7f0e345be3649cd2},
		{name: "mergeRound64", got: mix.MergeRound64(0, 1), want: 0x9d049a611f451521},
		{name: "wymix", got: mix.Wymix(0xa0761d6478bd642f, 0xe7037ed1a0b428db), want: 0x1ff5c2923a788d2c},
		{name: "fib64", got: mix.Fib64(177604), want: 5691520348410599700},
		{name: "fib32", got: uint64(mix.Fib32(177604)), want: 1325072036},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %#x want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestLookup3(t *testing.T) {
	a, b, c := mix.Lookup3Mix(1, 2, 3)
	if a != 0x877d02a0 || b != 0xcd175a8d || c != 0xe3fc5c22 {
		t.Fatalf("mix: got %#x %#x %#x", a, b, c)
	}

	a, b, c = mix.Lookup3Final(1, 2, 3)
	if a != 0xc0bbac72 || b != 0xd6302d23 || c != 0x36ff91db {
		t.Fatalf("final: got %#x %#x %#x", a, b, c)
	}
}

func TestWymix32(t *testing.T) {
	lo, hi := mix.Wymix32(1, 2)
	if lo != 0x21c0839a || hi != 0x6243a573 {
		t.Fatalf("got %#x %#x", lo, hi)
	}
}

func TestMum(t *testing.T) {
	lo, hi := mix.Mum(1<<63, 4)
	if lo != 0 || hi != 2 {
		t.Fatalf("got lo=%#x hi=%#x", lo, hi)
	}
}

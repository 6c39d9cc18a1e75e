package regexp

import (
	"slices"
	"testing"
)

func TestCompileEngineSelection(t *testing.T) {
	tests := []struct {
		pattern string
		pcre    bool
	}{
		{pattern: "^xxh"},
		{pattern: "murmur3-(32|64)"},
		{pattern: "(?P<family>[a-z]+)3"},
		{pattern: "^(?!fib-)", pcre: true},
		{pattern: "(?<=fib-)xxh", pcre: true},
		{pattern: `(\w)\1`, pcre: true},
		{pattern: "(?<family>[a-z]+)3", pcre: true},
		{pattern: `\Axxh`, pcre: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := re.pcre != nil; got != tt.pcre || (re.core != nil) == tt.pcre {
				t.Fatalf("pcre: got %v want %v", got, tt.pcre)
			}
		})
	}
}

func TestEscapedBackslashIsNotBackreference(t *testing.T) {
	if needsPCRE(`a\\1`) {
		t.Fatalf(`a\\1 is a literal backslash followed by 1`)
	}
}

func TestFilter(t *testing.T) {
	names := []string{"djb2", "fib-djb2", "fib-xxh64", "xxh3", "xxh64"}

	tests := []struct {
		pattern string
		want    []string
	}{
		{pattern: "^xxh", want: []string{"xxh3", "xxh64"}},
		{pattern: "^(?!fib-).*2$", want: []string{"djb2"}},
		{pattern: "(?<=fib-)xxh", want: []string{"fib-xxh64"}},
		{pattern: "^none$", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got := re.Filter(names)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	for _, pattern := range []string{"(", "(?<=x"} {
		if _, err := Compile(pattern); err == nil {
			t.Fatalf("%q: expected error", pattern)
		}
	}
}

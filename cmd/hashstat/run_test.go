package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"go.dw1.io/hashers/algorithm"
	"go.dw1.io/hashers/internal/json"
	"go.dw1.io/hashers/stats"
)

func testOptions() options {
	return options{
		Samples:  "generated",
		N:        2000,
		Size:     8,
		Bits:     6,
		Trials:   10,
		RandSeed: 1,
	}
}

func TestRunJSON(t *testing.T) {
	o := testOptions()
	o.Algos = "^(xxh64|djb2)$"
	o.JSON = true

	var out bytes.Buffer
	if err := run(o, &out, zaptest.NewLogger(t)); err != nil {
		t.Fatal(err)
	}

	var got []report
	if err := json.UnmarshalStrict(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reports", len(got))
	}
	if got[0].Algorithm != algorithm.DJB2 || got[1].Algorithm != algorithm.XXH64 {
		t.Fatalf("got %s and %s", got[0].Algorithm, got[1].Algorithm)
	}
	if got[0].Bits != 32 || got[0].Avalanche.Bits != 32 {
		t.Fatalf("djb2: got %+v", got[0])
	}
	if got[1].Chi2.Buckets != 64 || got[1].KS.Samples != 2000 {
		t.Fatalf("xxh64: got %+v", got[1])
	}
}

func TestRunTable(t *testing.T) {
	o := testOptions()
	o.Samples = "alphanumeric"

	var out bytes.Buffer
	if err := run(o, &out, zaptest.NewLogger(t)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(lines[0], "ALGORITHM") || !strings.Contains(lines[1], string(algorithm.XXH64)) {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunBaselines(t *testing.T) {
	o := testOptions()
	o.Algos = "^xxh64$"
	o.Baselines = true
	o.JSON = true

	var out bytes.Buffer
	if err := run(o, &out, zaptest.NewLogger(t)); err != nil {
		t.Fatal(err)
	}

	var got []report
	if err := json.UnmarshalStrict(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}

	want := []algorithm.Name{"null", "passthrough", "fib-null", "fib-passthrough", algorithm.XXH64}
	if len(got) != len(want) {
		t.Fatalf("got %d reports", len(got))
	}
	for i, r := range got {
		if r.Algorithm != want[i] || r.Baseline != (i < 4) || r.Bits != 64 {
			t.Fatalf("report %d: got %s baseline=%v bits=%d", i, r.Algorithm, r.Baseline, r.Bits)
		}
	}

	// Every key collides under null, so it must score far worse than xxh64.
	if got[0].Chi2.Normalized < 100*max(got[4].Chi2.Normalized, 1) {
		t.Fatalf("null chi2 %f vs xxh64 %f", got[0].Chi2.Normalized, got[4].Chi2.Normalized)
	}
	if got[0].KS.D != 1 || got[0].Avalanche.Mean != 0 {
		t.Fatalf("null: ks %f avalanche %f", got[0].KS.D, got[0].Avalanche.Mean)
	}
}

func TestRunConfigAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hasher.json")
	if err := os.WriteFile(path, []byte(`{"algorithm": "wyhash32", "seed": "0x10"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := testOptions()
	o.Config = path
	algs, seed, err := selectAlgorithms(o)
	if err != nil {
		t.Fatal(err)
	}
	if len(algs) != 1 || algs[0].Name != algorithm.Wyhash32 || seed.Lo != 0x10 {
		t.Fatalf("got %v %+v", algs, seed)
	}

	o.Seed = "42"
	if _, seed, err = selectAlgorithms(o); err != nil || seed.Lo != 42 {
		t.Fatalf("override: got %+v, %v", seed, err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*options)
		want error
	}{
		{name: "no match", edit: func(o *options) { o.Algos = "^nothing$" }, want: errNoAlgorithms},
		{name: "bad pattern", edit: func(o *options) { o.Algos = "(" }, want: algorithm.ErrInvalidPattern},
		{name: "bad seed", edit: func(o *options) { o.Seed = "-1" }},
		{name: "bad samples", edit: func(o *options) { o.Samples = "none" }, want: stats.ErrInvalidArgument},
		{name: "bad bits", edit: func(o *options) { o.Bits = 40 }, want: stats.ErrInvalidArgument},
		{name: "missing config", edit: func(o *options) { o.Config = filepath.Join(t.TempDir(), "missing") }, want: algorithm.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions()
			tt.edit(&o)
			err := run(o, &bytes.Buffer{}, zaptest.NewLogger(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v want %v", err, tt.want)
			}
		})
	}
}

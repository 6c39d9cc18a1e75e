package stats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/algorithm"
	"go.dw1.io/hashers/mix"
)

// ErrInvalidArgument indicates an out-of-range parameter or an empty sample.
var ErrInvalidArgument = errors.New("invalid argument")

// Func is a one-shot 64-bit hash.
type Func func(p []byte) uint64

// FuncOf returns a's one-shot hash with the given seed.
func FuncOf(a algorithm.Algorithm, seed hashers.Seed) Func {
	b := a.Builder()
	return func(p []byte) uint64 {
		return hashers.Sum(b, seed, p)
	}
}

// Null maps every input to zero. It is the worst possible hash.
func Null([]byte) uint64 { return 0 }

// Passthrough returns the first eight bytes of p, little-endian.
func Passthrough(p []byte) uint64 {
	var buf [8]byte
	copy(buf[:], p)
	return binary.LittleEndian.Uint64(buf[:])
}

// Spread returns fn with its digest multiplied by [mix.Fibonacci64], the
// one-shot form of the registry's fib- wrappers.
func Spread(fn Func) Func {
	return func(p []byte) uint64 { return mix.Fib64(fn(p)) }
}

// Baseline is a reference hash measured next to the registered algorithms.
// Its digests are 64 bits wide.
type Baseline struct {
	Name string
	Fn   Func
}

// Baselines returns [Null], [Passthrough] and their [Spread] forms.
func Baselines() []Baseline {
	return []Baseline{
		{Name: "null", Fn: Null},
		{Name: "passthrough", Fn: Passthrough},
		{Name: "fib-null", Fn: Spread(Null)},
		{Name: "fib-passthrough", Fn: Spread(Passthrough)},
	}
}

// Chi2Result is the outcome of a chi-squared bucket test.
type Chi2Result struct {
	Buckets int `json:"buckets"`
	Samples int `json:"samples"`
	// Statistic is the chi-squared statistic.
	Statistic float64 `json:"statistic"`
	// Normalized is (Statistic - Buckets) / sqrt(Buckets). Values near zero
	// indicate a uniform spread; large positive values indicate clustering.
	Normalized float64 `json:"normalized"`
	// PValue is the probability of a statistic at least this large under a
	// uniform spread, with Buckets-1 degrees of freedom.
	PValue float64 `json:"p_value"`
}

// MaxMaskBits bounds the bucket count of [Chi2].
const MaxMaskBits = 24

// Chi2 hashes every sample, counts the low maskBits bits of each digest into
// 2^maskBits buckets and tests the counts against a uniform spread.
func Chi2(samples [][]byte, fn Func, maskBits int) (Chi2Result, error) {
	if maskBits < 1 || maskBits > MaxMaskBits {
		return Chi2Result{}, fmt.Errorf("%w: mask bits %d outside [1, %d]", ErrInvalidArgument, maskBits, MaxMaskBits)
	}
	if len(samples) == 0 {
		return Chi2Result{}, fmt.Errorf("%w: no samples", ErrInvalidArgument)
	}

	buckets := 1 << maskBits
	mask := uint64(buckets - 1)

	obs := make([]float64, buckets)
	for _, s := range samples {
		obs[fn(s)&mask]++
	}

	exp := make([]float64, buckets)
	expected := float64(len(samples)) / float64(buckets)
	for i := range exp {
		exp[i] = expected
	}

	chi2 := stat.ChiSquare(obs, exp)
	k := float64(buckets)

	return Chi2Result{
		Buckets:    buckets,
		Samples:    len(samples),
		Statistic:  chi2,
		Normalized: (chi2 - k) / math.Sqrt(k),
		PValue:     distuv.ChiSquared{K: k - 1}.Survival(chi2),
	}, nil
}

// KSResult is the outcome of a one-sample Kolmogorov-Smirnov test.
type KSResult struct {
	Samples int `json:"samples"`
	Bits    int `json:"bits"`
	// D is the largest distance between the empirical distribution of the
	// digests and the uniform distribution on [0, 2^Bits).
	D float64 `json:"d"`
	// PValue is the asymptotic probability of a distance at least D.
	PValue float64 `json:"p_value"`
}

// KolmogorovSmirnov hashes every sample and compares the sorted digests with
// the uniform distribution over bits-wide words. Pass the digest's natural
// width; a zero-extended 32-bit digest measured against 64 bits looks
// maximally skewed.
func KolmogorovSmirnov(samples [][]byte, fn Func, bits int) (KSResult, error) {
	if len(samples) == 0 {
		return KSResult{}, fmt.Errorf("%w: no samples", ErrInvalidArgument)
	}
	if bits < 1 || bits > 64 {
		return KSResult{}, fmt.Errorf("%w: bits %d outside [1, 64]", ErrInvalidArgument, bits)
	}

	digests := make([]uint64, len(samples))
	for i, s := range samples {
		digests[i] = fn(s)
	}
	slices.Sort(digests)

	uniform := distuv.Uniform{Min: 0, Max: math.Exp2(float64(bits))}
	n := float64(len(digests))

	var d float64
	for i, x := range digests {
		f := uniform.CDF(float64(x))
		d = max(d, f-float64(i)/n, float64(i+1)/n-f)
	}

	return KSResult{Samples: len(digests), Bits: bits, D: d, PValue: ksPValue(d, n)}, nil
}

// ksPValue evaluates the Kolmogorov distribution tail with Stephens'
// small-sample correction.
func ksPValue(d, n float64) float64 {
	sq := math.Sqrt(n)
	lambda := (sq + 0.12 + 0.11/sq) * d
	if lambda < 1e-3 {
		return 1
	}

	var sum float64
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}

	return math.Min(1, math.Max(0, 2*sum))
}

// AvalancheResult is the outcome of a single-bit flip test.
type AvalancheResult struct {
	Trials    int `json:"trials"`
	InputBits int `json:"input_bits"`
	Bits      int `json:"bits"`
	// Mean is the average probability that an output bit flips.
	Mean float64 `json:"mean"`
	// StdDev is the spread of the per-pair flip probabilities.
	StdDev float64 `json:"std_dev"`
	// WorstBias is max |2p - 1| over every (input bit, output bit) pair.
	// Zero is ideal and one means the output bit ignores the input bit.
	WorstBias float64 `json:"worst_bias"`
}

// Avalanche flips each bit of random inputs and records, for every pair of
// input and output bits, how often the output bit changes.
func Avalanche(fn Func, opts ...Option) (AvalancheResult, error) {
	o := newOptions(opts)
	if o.size < 1 || o.trials < 1 || (o.bits != 32 && o.bits != 64) {
		return AvalancheResult{}, fmt.Errorf("%w: size %d, trials %d, bits %d", ErrInvalidArgument, o.size, o.trials, o.bits)
	}

	inBits := o.size * 8
	flips := make([]float64, inBits*o.bits)
	rng := o.rand()
	p := make([]byte, o.size)

	for trial := 0; trial < o.trials; trial++ {
		fill(rng, p)
		base := fn(p)
		for i := 0; i < inBits; i++ {
			p[i/8] ^= 1 << (i % 8)
			diff := base ^ fn(p)
			p[i/8] ^= 1 << (i % 8)

			row := flips[i*o.bits : (i+1)*o.bits]
			for j := range row {
				row[j] += float64(diff >> j & 1)
			}
		}
	}

	var worst float64
	for i := range flips {
		flips[i] /= float64(o.trials)
		worst = max(worst, math.Abs(2*flips[i]-1))
	}
	mean, std := stat.MeanStdDev(flips, nil)

	return AvalancheResult{
		Trials:    o.trials,
		InputBits: inBits,
		Bits:      o.bits,
		Mean:      mean,
		StdDev:    std,
		WorstBias: worst,
	}, nil
}

// Throughput hashes size-byte inputs for at least d and returns bytes per
// second.
func Throughput(fn Func, size int, d time.Duration) (float64, error) {
	if size < 1 || d <= 0 {
		return 0, fmt.Errorf("%w: size %d, duration %s", ErrInvalidArgument, size, d)
	}

	p := make([]byte, size)
	var sink uint64
	var n int
	start := time.Now()
	for time.Since(start) < d {
		for i := 0; i < 1024; i++ {
			p[0] = byte(i)
			sink += fn(p)
		}
		n += 1024
	}
	elapsed := time.Since(start)
	_ = sink

	return float64(n*size) / elapsed.Seconds(), nil
}

// Command hashstat reports how evenly the registered hash algorithms spread
// a sample of keys.
//
// Every selected algorithm runs a chi-squared bucket test, a
// Kolmogorov-Smirnov test and a single-bit avalanche test, and optionally a
// throughput measurement:
//
//	hashstat -algos '^(?!fib-)' -samples words -words /usr/share/dict/words
//
// With -baselines the null and passthrough hashes are reported first, so the
// registered algorithms can be read against the worst cases.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.dw1.io/hashers/internal/gctune"
)

var (
	algos      = flag.String("algos", "", "regular expression selecting algorithms by name")
	configFile = flag.String("config", "", "JSON hasher config naming a single algorithm and seed")
	seed       = flag.String("seed", "", "seed word, decimal or 0x-prefixed")
	samples    = flag.String("samples", "generated", "sample set: uniform, alphanumeric, generated or words")
	wordsFile  = flag.String("words", "/usr/share/dict/words", "word list used by -samples words")
	numSamples = flag.Int("n", 100000, "number of samples")
	size       = flag.Int("size", 16, "sample and avalanche input size in bytes")
	maskBits   = flag.Int("bits", 16, "low digest bits bucketed by the chi-squared test")
	trials     = flag.Int("trials", 1000, "avalanche trials")
	throughput = flag.Duration("throughput", 0, "time spent measuring throughput per algorithm, 0 skips it")
	randSeed   = flag.Uint64("rand", 1, "seed for generated samples and avalanche inputs")
	baselines  = flag.Bool("baselines", false, "also measure the null and passthrough baselines and their fib- forms")
	heapTarget = flag.Uint64("heap", 0, "live heap target in bytes for GC tuning, 0 leaves GOGC alone")
	jsonOut    = flag.Bool("json", false, "print results as JSON")
	verbose    = flag.Bool("v", false, "log every measurement")
)

func main() {
	flag.Parse()
	os.Exit(hashstat())
}

// hashstat returns the exit code. Deferred cleanup runs before main exits.
func hashstat() int {
	logger, err := newLogger(*verbose)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	defer logger.Sync()

	tuner := gctune.Enable(*heapTarget)
	defer tuner.Stop()

	opts := options{
		Algos:      *algos,
		Config:     *configFile,
		Seed:       *seed,
		Samples:    *samples,
		Words:      *wordsFile,
		N:          *numSamples,
		Size:       *size,
		Bits:       *maskBits,
		Trials:     *trials,
		Throughput: *throughput,
		RandSeed:   *randSeed,
		Baselines:  *baselines,
		JSON:       *jsonOut,
	}

	err = run(opts, os.Stdout, logger)
	if tuner != nil {
		logger.Debug("gc tuning", zap.Uint64("heap_target", *heapTarget), zap.Uint32("gogc", tuner.GCPercent()))
	}
	if err != nil {
		logger.Error("hashstat failed", zap.Error(err))
		return 1
	}

	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

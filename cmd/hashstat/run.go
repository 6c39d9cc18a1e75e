package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/algorithm"
	"go.dw1.io/hashers/internal/json"
	"go.dw1.io/hashers/stats"
)

var errNoAlgorithms = errors.New("no algorithm matches")

type options struct {
	Algos      string
	Config     string
	Seed       string
	Samples    string
	Words      string
	N          int
	Size       int
	Bits       int
	Trials     int
	Throughput time.Duration
	RandSeed   uint64
	Baselines  bool
	JSON       bool
}

type report struct {
	Algorithm  algorithm.Name        `json:"algorithm"`
	Baseline   bool                  `json:"baseline,omitempty"`
	Bits       int                   `json:"bits"`
	Chi2       stats.Chi2Result      `json:"chi2"`
	KS         stats.KSResult        `json:"ks"`
	Avalanche  stats.AvalancheResult `json:"avalanche"`
	Throughput float64               `json:"throughput_bps,omitempty"`
}

func run(o options, w io.Writer, logger *zap.Logger) error {
	algs, seed, err := selectAlgorithms(o)
	if err != nil {
		return err
	}

	keys, err := loadSamples(o)
	if err != nil {
		return err
	}
	logger.Info("loaded samples",
		zap.String("set", o.Samples),
		zap.Int("count", len(keys)),
		zap.Int("algorithms", len(algs)),
	)

	var baselines []stats.Baseline
	if o.Baselines {
		baselines = stats.Baselines()
	}

	reports := make([]report, 0, len(baselines)+len(algs))
	for _, b := range baselines {
		r, err := measure(algorithm.Name(b.Name), 64, b.Fn, keys, o)
		if err != nil {
			return fmt.Errorf("%s: %w", b.Name, err)
		}
		r.Baseline = true
		logMeasured(logger, r)
		reports = append(reports, r)
	}
	for _, a := range algs {
		r, err := measure(a.Name, a.Bits, stats.FuncOf(a, seed), keys, o)
		if err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
		logMeasured(logger, r)
		reports = append(reports, r)
	}

	if o.JSON {
		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}

	return writeTable(w, reports)
}

func selectAlgorithms(o options) ([]algorithm.Algorithm, hashers.Seed, error) {
	cfg := algorithm.DefaultConfig()
	if o.Config != "" {
		var err error
		if cfg, err = algorithm.LoadConfig(o.Config); err != nil {
			return nil, hashers.Seed{}, err
		}
	}

	seed := cfg.Seed
	if o.Seed != "" {
		s, err := algorithm.ParseSeed(o.Seed)
		if err != nil {
			return nil, hashers.Seed{}, fmt.Errorf("seed: %w", err)
		}
		seed = s
	}

	if o.Algos == "" {
		a, err := cfg.Lookup()
		if err != nil {
			return nil, hashers.Seed{}, err
		}
		return []algorithm.Algorithm{a}, seed, nil
	}

	algs, err := algorithm.Select(o.Algos)
	if err != nil {
		return nil, hashers.Seed{}, err
	}
	if len(algs) == 0 {
		return nil, hashers.Seed{}, fmt.Errorf("%w: %q", errNoAlgorithms, o.Algos)
	}

	return algs, seed, nil
}

func loadSamples(o options) ([][]byte, error) {
	rng := rand.New(rand.NewPCG(o.RandSeed, o.RandSeed+1))

	switch o.Samples {
	case "uniform":
		return stats.Uniform(rng, o.N, o.Size), nil
	case "alphanumeric":
		return stats.Alphanumeric(rng, o.N, o.Size), nil
	case "generated":
		return stats.Generated(o.N, len(fmt.Sprint(o.N))), nil
	case "words":
		return stats.Words(o.Words)
	default:
		return nil, fmt.Errorf("%w: unknown sample set %q", stats.ErrInvalidArgument, o.Samples)
	}
}

// measure runs every test on fn, whose digests are bits wide.
func measure(name algorithm.Name, bits int, fn stats.Func, keys [][]byte, o options) (report, error) {
	r := report{Algorithm: name, Bits: bits}

	var err error
	if r.Chi2, err = stats.Chi2(keys, fn, o.Bits); err != nil {
		return report{}, err
	}
	if r.KS, err = stats.KolmogorovSmirnov(keys, fn, bits); err != nil {
		return report{}, err
	}

	r.Avalanche, err = stats.Avalanche(fn,
		stats.WithSize(o.Size),
		stats.WithTrials(o.Trials),
		stats.WithBits(bits),
		stats.WithSeed(o.RandSeed),
	)
	if err != nil {
		return report{}, err
	}

	if o.Throughput > 0 {
		if r.Throughput, err = stats.Throughput(fn, o.Size, o.Throughput); err != nil {
			return report{}, err
		}
	}

	return r, nil
}

func logMeasured(logger *zap.Logger, r report) {
	logger.Debug("measured",
		zap.String("algorithm", string(r.Algorithm)),
		zap.Bool("baseline", r.Baseline),
		zap.Float64("chi2", r.Chi2.Normalized),
		zap.Float64("ks", r.KS.D),
		zap.Float64("avalanche", r.Avalanche.Mean),
	)
}

func writeTable(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ALGORITHM\tBITS\tCHI2\tCHI2 P\tKS D\tKS P\tAVALANCHE\tBIAS\tMB/s\t")
	for _, r := range reports {
		mbps := "-"
		if r.Throughput > 0 {
			mbps = fmt.Sprintf("%.1f", r.Throughput/1e6)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.4f\t%.5f\t%.4f\t%.4f\t%.3f\t%s\t\n",
			r.Algorithm, r.Bits,
			r.Chi2.Normalized, r.Chi2.PValue,
			r.KS.D, r.KS.PValue,
			r.Avalanche.Mean, r.Avalanche.WorstBias,
			mbps,
		)
	}
	return tw.Flush()
}

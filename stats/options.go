package stats

import "math/rand/v2"

type options struct {
	size   int
	trials int
	bits   int
	seed   uint64
}

// Option configures [Avalanche].
type Option func(*options)

// WithSize sets the input length in bytes. The default is 16.
func WithSize(n int) Option {
	return func(o *options) { o.size = n }
}

// WithTrials sets the number of random inputs. The default is 1000.
func WithTrials(n int) Option {
	return func(o *options) { o.trials = n }
}

// WithBits sets how many low digest bits are examined, 32 or 64. The
// default is 64.
func WithBits(n int) Option {
	return func(o *options) { o.bits = n }
}

// WithSeed seeds the input generator so that runs are reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func newOptions(opts []Option) *options {
	o := &options{size: 16, trials: 1000, bits: 64, seed: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) rand() *rand.Rand {
	return rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
}

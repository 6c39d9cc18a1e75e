package algorithm

import (
	"errors"
	"fmt"

	"go.dw1.io/hashers"
	"go.dw1.io/hashers/internal/cast"
	"go.dw1.io/hashers/internal/file"
	"go.dw1.io/hashers/internal/json"
)

// ErrInvalidConfig indicates a configuration that cannot build a hasher.
//
// It wraps decoding, seed conversion and lookup failures.
var ErrInvalidConfig = errors.New("invalid hasher config")

// Config selects an algorithm and a seed.
type Config struct {
	Algorithm Name         `json:"algorithm"`
	Seed      hashers.Seed `json:"seed"`
}

// DefaultConfig returns XXH64 with a zero seed.
func DefaultConfig() Config {
	return Config{Algorithm: XXH64}
}

// Validate reports whether c names a registered algorithm.
func (c Config) Validate() error {
	if c.Algorithm == "" {
		return fmt.Errorf("%w: algorithm is required", ErrInvalidConfig)
	}
	if _, err := Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Lookup validates c and returns the algorithm it names.
func (c Config) Lookup() (Algorithm, error) {
	if err := c.Validate(); err != nil {
		return Algorithm{}, err
	}
	return Lookup(c.Algorithm)
}

// New returns a fresh hasher for cfg.
func New(cfg Config) (Hasher, error) {
	a, err := cfg.Lookup()
	if err != nil {
		return nil, err
	}
	return a.New(cfg.Seed), nil
}

type rawConfig struct {
	Algorithm *string `json:"algorithm"`
	Seed      any     `json:"seed"`
}

// ParseConfig decodes a JSON config. Fields that are absent keep their
// [DefaultConfig] values.
//
// The seed may be a number, a string such as "0xdeadbeef", or an object
// {"lo": ..., "hi": ...} whose words take the same forms. Negative and
// out-of-range words are rejected.
func ParseConfig(data []byte) (Config, error) {
	var raw rawConfig
	if err := json.UnmarshalStrict(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()
	if raw.Algorithm != nil {
		cfg.Algorithm = Name(*raw.Algorithm)
	}

	if raw.Seed != nil {
		seed, err := ParseSeed(raw.Seed)
		if err != nil {
			return Config{}, fmt.Errorf("%w: seed: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the JSON config at path.
func LoadConfig(path string) (Config, error) {
	data, err := file.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return ParseConfig(data)
}

// ParseSeed converts a seed word, or a map with "lo" and "hi" words, to a
// Seed.
func ParseSeed(v any) (hashers.Seed, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		w, err := seedWord(v)
		if err != nil {
			return hashers.Seed{}, err
		}
		return hashers.Seed64(w), nil
	}

	var seed hashers.Seed
	for k, w := range obj {
		n, err := seedWord(w)
		if err != nil {
			return hashers.Seed{}, fmt.Errorf("%s: %w", k, err)
		}
		switch k {
		case "lo":
			seed.Lo = n
		case "hi":
			seed.Hi = n
		default:
			return hashers.Seed{}, fmt.Errorf("unknown key %q", k)
		}
	}
	return seed, nil
}

func seedWord(v any) (uint64, error) {
	switch v.(type) {
	case bool, nil, []any, map[string]any:
		return 0, fmt.Errorf("unsupported seed word %T", v)
	}
	return cast.To[uint64](v)
}

// Package config assembles solver settings from a .env file, MATRIXCFR_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/timpalpant/matrixcfr"
	"github.com/timpalpant/matrixcfr/matrixgame"
)

const (
	EnvPrefix = "MATRIXCFR_"
	MaxRuns   = 100000
)

type Config struct {
	Algorithm     matrixgame.Algorithm `env:"ALGORITHM" envDefault:"cfr+"`
	Size          int                  `env:"SIZE" envDefault:"1000"`
	Epsilon       float64              `env:"EPSILON" envDefault:"0.0001"`
	Runs          int                  `env:"RUNS" envDefault:"1"`
	Seed          int64                `env:"SEED"`
	Workers       int                  `env:"WORKERS"`
	MaxIterations int                  `env:"MAX_ITERATIONS"`
	TraceEvery    int                  `env:"TRACE_EVERY" envDefault:"1"`
	ResultsDB     string               `env:"RESULTS_DB"`
	DebugAddr     string               `env:"DEBUG_ADDR"`
}

// Load reads the given .env files, skipping any that do not exist, and
// then the process environment, which takes precedence.
func Load(envFiles ...string) (*Config, error) {
	environment := make(map[string]string)
	for _, filename := range envFiles {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			continue
		}

		values, err := godotenv.Read(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %v", filename)
		}
		for k, v := range values {
			environment[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environment[k] = v
		}
	}

	cfg := &Config{}
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.Wrap(err, "error parsing environment")
	}

	return cfg, nil
}

// RegisterFlags binds flags to c, using its current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.TextVar(&c.Algorithm, "a", c.Algorithm,
		"Algorithm (0 = Fictitious play, 1 = CFR, 2 = CFR+)")
	fs.IntVar(&c.Size, "s", c.Size, "Matrix size")
	fs.Float64Var(&c.Epsilon, "e", c.Epsilon, "Epsilon")
	fs.IntVar(&c.Runs, "n", c.Runs, "Number of times to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = seed from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers,
		"Number of games to solve in parallel when n > 1 (0 = NumCPU)")
	fs.IntVar(&c.MaxIterations, "max_iter", c.MaxIterations,
		"Give up on a game after this many iterations (0 = no limit)")
	fs.IntVar(&c.TraceEvery, "trace_every", c.TraceEvery,
		"Print a trace line every this many iterations when n = 1")
	fs.StringVar(&c.ResultsDB, "results_db", c.ResultsDB,
		"SQLite database to record run summaries in (empty = disabled)")
	fs.StringVar(&c.DebugAddr, "debug_addr", c.DebugAddr,
		"Address to serve pprof and expvar on, e.g. localhost:4123 (empty = disabled)")
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Runs < 1 || c.Runs > MaxRuns {
		return errors.Errorf("number of runs %d outside [1, %d]", c.Runs, MaxRuns)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.TraceEvery < 1 {
		return errors.Errorf("trace_every must be at least 1, got %d", c.TraceEvery)
	}
	return nil
}

// ResolveSeed replaces a zero seed with one derived from the clock and
// returns the seed in use.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

func (c *Config) Params() matrixcfr.Params {
	return matrixcfr.Params{
		Algorithm:     c.Algorithm,
		Size:          c.Size,
		Epsilon:       c.Epsilon,
		MaxIterations: c.MaxIterations,
	}
}

func (c *Config) BatchParams() matrixcfr.BatchParams {
	return matrixcfr.BatchParams{
		Runs:    c.Runs,
		Seed:    c.Seed,
		Workers: c.Workers,
	}
}

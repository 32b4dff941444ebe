package matrixcfr

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/matrixcfr/matrixgame"
)

type BatchParams struct {
	// Number of independent random games to solve.
	Runs int
	// Seed for the master random source that seeds every run.
	Seed int64
	// Maximum number of games solved in parallel. Defaults to NumCPU.
	Workers int
}

// Summary aggregates the iteration counts needed to converge.
type Summary struct {
	Runs       int
	Min        int
	Max        int
	Mean       float64
	Iterations []int
	Elapsed    time.Duration
}

// RunMany solves batch.Runs random games to convergence and summarizes
// how many iterations each needed. Run i always gets the i'th seed drawn
// from the master source, so the summary does not depend on Workers.
// progress, if non-nil, is called serially after each completed run.
func RunMany(ctx context.Context, params Params, batch BatchParams, progress func(done, total int)) (Summary, error) {
	if err := params.Validate(); err != nil {
		return Summary{}, err
	}
	if batch.Runs < 1 {
		return Summary{}, errors.Errorf("number of runs must be at least 1, got %d", batch.Runs)
	}

	workers := batch.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	master := rand.New(rand.NewSource(batch.Seed))
	seeds := make([]int64, batch.Runs)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	glog.V(1).Infof("Solving %d games of size %d with %v in %d workers",
		batch.Runs, params.Size, params.Algorithm, workers)
	start := time.Now()
	iterations := make([]int, batch.Runs)
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			game, err := matrixgame.NewGame(params.Size, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			result, err := Solve(ctx, game, params, nil)
			if err != nil {
				return errors.Wrapf(err, "run %d (seed %d)", i, seed)
			}

			glog.V(2).Infof("Run %d converged after %d iterations (%v)",
				i, result.Iterations, result.Elapsed)
			iterations[i] = result.Iterations
			if progress != nil {
				mu.Lock()
				done++
				progress(done, batch.Runs)
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(iterations)
	summary.Elapsed = time.Since(start)
	return summary, nil
}

func summarize(iterations []int) Summary {
	s := Summary{
		Runs:       len(iterations),
		Iterations: iterations,
	}
	if len(iterations) == 0 {
		return s
	}

	s.Min, s.Max = iterations[0], iterations[0]
	total := 0
	for _, n := range iterations {
		if n < s.Min {
			s.Min = n
		}
		if n > s.Max {
			s.Max = n
		}
		total += n
	}

	s.Mean = float64(total) / float64(len(iterations))
	return s
}

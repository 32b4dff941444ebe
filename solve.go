// Package matrixcfr drives matrixgame solvers to convergence, either one
// game at a time with a per-iteration trace or as a batch of independent
// random games summarized by their iteration counts.
package matrixcfr

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/matrixcfr/matrixgame"
)

const (
	MinSize    = 1
	MaxSize    = 100000
	MinEpsilon = 1e-12
	MaxEpsilon = 1.0
)

// ErrMaxIterations is returned (wrapped) by Solve when the iteration
// limit is reached before the exploitability target.
var ErrMaxIterations = errors.New("iteration limit reached before convergence")

type Params struct {
	Algorithm matrixgame.Algorithm
	// Number of actions per player in randomly generated games.
	Size int
	// Stop once exploitability is at or below Epsilon.
	Epsilon float64
	// Give up after this many iterations. Zero means no limit.
	MaxIterations int
}

func (p Params) Validate() error {
	if !p.Algorithm.Valid() {
		return errors.Errorf("invalid algorithm: %v", p.Algorithm)
	}
	if p.Size < MinSize || p.Size > MaxSize {
		return errors.Errorf("matrix size %d outside [%d, %d]", p.Size, MinSize, MaxSize)
	}
	if p.Epsilon < MinEpsilon || p.Epsilon > MaxEpsilon {
		return errors.Errorf("epsilon %g outside [%g, %g]", p.Epsilon, MinEpsilon, MaxEpsilon)
	}
	if p.MaxIterations < 0 {
		return errors.Errorf("max iterations must be non-negative, got %d", p.MaxIterations)
	}
	return nil
}

// TracePoint is reported after every iteration of Solve.
type TracePoint struct {
	Iteration      int
	Elapsed        time.Duration
	Exploitability float64
}

type Result struct {
	Iterations     int
	Exploitability float64
	Elapsed        time.Duration
}

// Solve iterates game until its exploitability drops to params.Epsilon.
// At least one iteration is always run. If trace is non-nil it is called
// after each iteration.
func Solve(ctx context.Context, game *matrixgame.Game, params Params, trace func(TracePoint)) (Result, error) {
	start := time.Now()
	var result Result
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		game.Iteration(params.Algorithm)
		iterationsRun.Add(1)
		result = Result{
			Iterations:     game.IterationCount(),
			Exploitability: game.Exploitability(),
			Elapsed:        time.Since(start),
		}

		glog.V(3).Infof("[%v] iteration %d: exploitability %v",
			params.Algorithm, result.Iterations, result.Exploitability)
		if trace != nil {
			trace(TracePoint{
				Iteration:      result.Iterations,
				Elapsed:        result.Elapsed,
				Exploitability: result.Exploitability,
			})
		}

		if result.Exploitability <= params.Epsilon {
			gamesSolved.Add(1)
			return result, nil
		}

		if params.MaxIterations > 0 && result.Iterations >= params.MaxIterations {
			gamesUnconverged.Add(1)
			return result, errors.Wrapf(ErrMaxIterations, "exploitability %g > %g after %d iterations",
				result.Exploitability, params.Epsilon, result.Iterations)
		}
	}
}

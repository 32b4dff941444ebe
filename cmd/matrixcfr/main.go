// Approximates the Nash equilibrium of random zero-sum matrix games with
// fictitious play, CFR or CFR+ and reports how quickly each converges.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/timpalpant/matrixcfr"
	"github.com/timpalpant/matrixcfr/internal/config"
	"github.com/timpalpant/matrixcfr/internal/debugserver"
	"github.com/timpalpant/matrixcfr/internal/results"
	"github.com/timpalpant/matrixcfr/matrixgame"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	if err := cfg.Validate(); err != nil {
		glog.Exit(err)
	}
	seed := cfg.ResolveSeed()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.DebugAddr != "" {
		go func() {
			if err := debugserver.Serve(ctx, cfg.DebugAddr); err != nil {
				glog.Error(err)
			}
		}()
	}

	fmt.Printf("Algorithm: %v\n", cfg.Algorithm)
	fmt.Printf("Matrix size: %d\n", cfg.Size)
	fmt.Printf("Epsilon: %f\n", cfg.Epsilon)
	fmt.Printf("N: %d\n", cfg.Runs)
	glog.V(1).Infof("Random seed: %d", seed)

	var summary matrixcfr.Summary
	if cfg.Runs > 1 {
		summary, err = runMany(ctx, cfg)
	} else {
		summary, err = runOne(ctx, cfg, seed)
	}
	if err != nil {
		glog.Exit(err)
	}

	if cfg.ResultsDB != "" {
		if err := recordRun(ctx, cfg, summary); err != nil {
			glog.Exit(err)
		}
	}
}

func runMany(ctx context.Context, cfg *config.Config) (matrixcfr.Summary, error) {
	summary, err := matrixcfr.RunMany(ctx, cfg.Params(), cfg.BatchParams(), func(done, total int) {
		fmt.Printf("\r%d/%d", done, total)
	})
	if err != nil {
		fmt.Println()
		return summary, err
	}

	fmt.Printf("\rmin %d | max %d | avg %.1f\n", summary.Min, summary.Max, summary.Mean)
	return summary, nil
}

func runOne(ctx context.Context, cfg *config.Config, seed int64) (matrixcfr.Summary, error) {
	fmt.Println("init")
	game, err := matrixgame.NewGame(cfg.Size, rand.New(rand.NewSource(seed)))
	if err != nil {
		return matrixcfr.Summary{}, err
	}

	fmt.Println("start")
	result, err := matrixcfr.Solve(ctx, game, cfg.Params(), func(p matrixcfr.TracePoint) {
		if p.Iteration%cfg.TraceEvery == 0 {
			fmt.Printf("i=%d t=%.2f e=%.6f\n", p.Iteration, p.Elapsed.Seconds(), p.Exploitability)
		}
	})
	if err != nil {
		return matrixcfr.Summary{}, err
	}
	if result.Iterations%cfg.TraceEvery != 0 {
		fmt.Printf("i=%d t=%.2f e=%.6f\n", result.Iterations, result.Elapsed.Seconds(), result.Exploitability)
	}

	glog.Infof("Converged after %d iterations (%v)", result.Iterations, result.Elapsed)
	return matrixcfr.Summary{
		Runs:       1,
		Min:        result.Iterations,
		Max:        result.Iterations,
		Mean:       float64(result.Iterations),
		Iterations: []int{result.Iterations},
		Elapsed:    result.Elapsed,
	}, nil
}

func recordRun(ctx context.Context, cfg *config.Config, summary matrixcfr.Summary) error {
	store, err := results.Open(cfg.ResultsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.RecordRun(ctx, results.NewRunRecord(cfg.Params(), cfg.Seed, summary))
	if err != nil {
		return err
	}

	glog.Infof("Recorded run %d in %v", id, cfg.ResultsDB)
	return nil
}

package matrixcfr

import (
	"context"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/matrixcfr/matrixgame"
)

func TestRunMany_IndependentOfWorkers(t *testing.T) {
	params := Params{Algorithm: matrixgame.CFRPlus, Size: 4, Epsilon: 1e-3}
	serial, err := RunMany(context.Background(), params, BatchParams{Runs: 8, Seed: 17, Workers: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}

	parallel, err := RunMany(context.Background(), params, BatchParams{Runs: 8, Seed: 17, Workers: 4}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(serial.Iterations, parallel.Iterations) {
		t.Errorf("serial %v != parallel %v", serial.Iterations, parallel.Iterations)
	}
	t.Logf("min %d | max %d | avg %.1f", serial.Min, serial.Max, serial.Mean)
}

func TestRunMany_Progress(t *testing.T) {
	params := Params{Algorithm: matrixgame.CFR, Size: 3, Epsilon: 1e-2}
	var calls []int
	summary, err := RunMany(context.Background(), params, BatchParams{Runs: 5, Seed: 2, Workers: 3},
		func(done, total int) {
			if total != 5 {
				t.Errorf("progress total %d, expected 5", total)
			}
			calls = append(calls, done)
		})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(calls, []int{1, 2, 3, 4, 5}) {
		t.Errorf("unexpected progress calls: %v", calls)
	}
	if summary.Runs != 5 || len(summary.Iterations) != 5 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	for i, n := range summary.Iterations {
		if n < 1 {
			t.Errorf("run %d reported %d iterations", i, n)
		}
	}
}

func TestRunMany_InvalidParams(t *testing.T) {
	params := Params{Algorithm: matrixgame.CFR, Size: 3, Epsilon: 1e-2}
	if _, err := RunMany(context.Background(), params, BatchParams{Runs: 0}, nil); err == nil {
		t.Error("expected error for zero runs")
	}

	params.Size = 0
	if _, err := RunMany(context.Background(), params, BatchParams{Runs: 1}, nil); err == nil {
		t.Error("expected error for size 0")
	}
}

func TestRunMany_PropagatesRunErrors(t *testing.T) {
	params := Params{Algorithm: matrixgame.FictitiousPlay, Size: 5, Epsilon: 1e-12, MaxIterations: 3}
	_, err := RunMany(context.Background(), params, BatchParams{Runs: 4, Seed: 1, Workers: 2}, nil)
	if errors.Cause(err) != ErrMaxIterations {
		t.Errorf("expected ErrMaxIterations, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	testCases := []struct {
		iterations []int
		min, max   int
		mean       float64
	}{
		{[]int{5}, 5, 5, 5},
		{[]int{3, 9, 6}, 3, 9, 6},
		{[]int{10, 1, 2, 3}, 1, 10, 4},
	}

	for _, tc := range testCases {
		s := summarize(tc.iterations)
		if s.Min != tc.min || s.Max != tc.max || s.Mean != tc.mean {
			t.Errorf("%v: got min %d max %d mean %v", tc.iterations, s.Min, s.Max, s.Mean)
		}
	}
}

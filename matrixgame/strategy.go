package matrixgame

import (
	"gonum.org/v1/gonum/floats"
)

// StrategyAccumulator holds a player's cumulative, unnormalized action
// weights. Entries only ever increase.
type StrategyAccumulator []float64

// AverageStrategy normalizes the accumulated weights into a distribution.
// Before any weight has been added it is uniform.
func (s StrategyAccumulator) AverageStrategy() []float64 {
	return s.averageStrategyInto(make([]float64, len(s)))
}

func (s StrategyAccumulator) averageStrategyInto(dst []float64) []float64 {
	total := floats.Sum(s)
	if total > 0 {
		copy(dst, s)
		vecDiv(dst, total)
		return dst
	}

	return uniformInto(dst)
}

// RegretAccumulator holds a player's cumulative counterfactual regret for
// each action. Entries may be negative under plain CFR.
type RegretAccumulator []float64

// CurrentStrategy is the regret-matching distribution: each action is
// played in proportion to its positive regret, or uniformly when no
// action has positive regret.
func (r RegretAccumulator) CurrentStrategy() []float64 {
	return r.currentStrategyInto(make([]float64, len(r)))
}

func (r RegretAccumulator) currentStrategyInto(dst []float64) []float64 {
	copy(dst, r)
	makePositive(dst)
	total := floats.Sum(dst)
	if total > 0 {
		vecDiv(dst, total)
		return dst
	}

	return uniformInto(dst)
}

func uniformDist(n int) []float64 {
	return uniformInto(make([]float64, n))
}

func uniformInto(dst []float64) []float64 {
	clear(dst)
	floats.AddConst(1.0/float64(len(dst)), dst)
	return dst
}

func makePositive(v []float64) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}

func vecDiv(v []float64, c float64) {
	for i := range v {
		v[i] /= c
	}
}

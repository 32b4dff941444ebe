package matrixgame

import (
	"gonum.org/v1/gonum/floats"
)

// cfrUpdate performs one vanilla CFR step for player: regrets accumulate
// unclamped and the current strategy is added to the average with weight 1.
func cfrUpdate(table *PayoffTable, profile *Profile, player Player, iter int) {
	sp, cfu, ev := counterfactualUtilities(table, profile, player)
	defer freeFloatSlice(sp)
	defer freeFloatSlice(cfu)

	regrets := profile.Regret[player]
	for a := range regrets {
		regrets[a] += cfu[a] - ev
	}

	floats.Add(profile.Strategy[player], sp)
}

// cfrPlusUpdate performs one CFR+ step for player: regrets are floored at
// zero and the current strategy is averaged with weight iter².
func cfrPlusUpdate(table *PayoffTable, profile *Profile, player Player, iter int) {
	sp, cfu, ev := counterfactualUtilities(table, profile, player)
	defer freeFloatSlice(sp)
	defer freeFloatSlice(cfu)

	regrets := profile.Regret[player]
	for a := range regrets {
		regrets[a] = max(0, regrets[a]+cfu[a]-ev)
	}

	t := float64(iter)
	strategy := profile.Strategy[player]
	for a := range strategy {
		strategy[a] += sp[a] * t * t
	}
}

// counterfactualUtilities returns player's current strategy, the utility
// of each action against the opponent's current strategy, and the
// expected utility of the current strategy. Both current strategies are
// read from the profile as it is now, so an opponent already updated
// this iteration is seen post-update. Callers free sp and cfu.
func counterfactualUtilities(table *PayoffTable, profile *Profile, player Player) (sp, cfu []float64, ev float64) {
	n := table.Size()
	sp = profile.Regret[player].currentStrategyInto(allocFloatSlice(n))
	so := profile.Regret[player.Opponent()].currentStrategyInto(allocFloatSlice(n))
	defer freeFloatSlice(so)

	cfu = table.ExpectedPayoffs(player, so, allocFloatSlice(n))
	ev = floats.Dot(sp, cfu)
	return sp, cfu, ev
}

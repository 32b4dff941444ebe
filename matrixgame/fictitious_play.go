package matrixgame

// fictitiousPlayUpdate adds one unit of weight to player's best response
// against the opponent's empirical average strategy. Regrets are unused.
func fictitiousPlayUpdate(table *PayoffTable, profile *Profile, player Player, iter int) {
	q := allocFloatSlice(table.Size())
	defer freeFloatSlice(q)
	profile.Strategy[player.Opponent()].averageStrategyInto(q)

	_, br := BestResponse(table, player, q)
	profile.Strategy[player][br] += 1
}

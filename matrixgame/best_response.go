package matrixgame

import (
	"gonum.org/v1/gonum/floats"
)

// BestResponse returns the value and action of player's best response to
// the opponent distribution q. Ties go to the lowest action index.
func BestResponse(table *PayoffTable, player Player, q []float64) (float64, int) {
	utils := allocFloatSlice(table.Size())
	defer freeFloatSlice(utils)

	table.ExpectedPayoffs(player, q, utils)
	best := floats.MaxIdx(utils)
	return utils[best], best
}

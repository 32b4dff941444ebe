package matrixcfr

import (
	"expvar"
)

var (
	iterationsRun    = expvar.NewInt("iterations_run")
	gamesSolved      = expvar.NewInt("games/solved")
	gamesUnconverged = expvar.NewInt("games/unconverged")
)

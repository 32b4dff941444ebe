// Package matrixgame approximates Nash equilibria of two-player zero-sum
// matrix games by self-play with Fictitious Play, CFR and CFR+.
package matrixgame

import (
	"fmt"
)

type Player int

const (
	Player0 Player = iota
	Player1
)

func (p Player) Opponent() Player {
	return 1 - p
}

// Game is one matrix game being solved. It is not safe for concurrent
// use, but distinct Games share no mutable state.
type Game struct {
	table     *PayoffTable
	profile   *Profile
	iteration int
}

// NewGame creates a game with a random size×size payoff table.
func NewGame(size int, rng Source) (*Game, error) {
	table, err := NewRandomPayoffTable(size, rng)
	if err != nil {
		return nil, err
	}

	return NewGameFromTable(table), nil
}

func NewGameFromTable(table *PayoffTable) *Game {
	return &Game{
		table:   table,
		profile: NewProfile(table.Size()),
	}
}

// Iteration advances the iteration counter and updates player 0 and then
// player 1 with the given algorithm. Player 1's update observes player 0's
// state from this same iteration.
func (g *Game) Iteration(alg Algorithm) {
	update := alg.update()
	if update == nil {
		panic(fmt.Errorf("unknown algorithm: %v", alg))
	}

	g.iteration++
	update(g.table, g.profile, Player0, g.iteration)
	update(g.table, g.profile, Player1, g.iteration)
}

func (g *Game) IterationCount() int {
	return g.iteration
}

// Exploitability is the mean of both players' best-response values
// against the opponent's average strategy. It is zero exactly at an
// equilibrium of the average strategy profile.
func (g *Game) Exploitability() float64 {
	return (g.BestResponseValue(Player0) + g.BestResponseValue(Player1)) / 2
}

// BestResponseValue is the most player can earn against the opponent's
// average strategy.
func (g *Game) BestResponseValue(player Player) float64 {
	q := allocFloatSlice(g.table.Size())
	defer freeFloatSlice(q)
	g.profile.Strategy[player.Opponent()].averageStrategyInto(q)

	value, _ := BestResponse(g.table, player, q)
	return value
}

func (g *Game) AverageStrategy(player Player) []float64 {
	return g.profile.Strategy[player].AverageStrategy()
}

func (g *Game) CurrentStrategy(player Player) []float64 {
	return g.profile.Regret[player].CurrentStrategy()
}

// StrategySum returns a copy of player's strategy accumulator.
func (g *Game) StrategySum(player Player) []float64 {
	return append([]float64(nil), g.profile.Strategy[player]...)
}

// RegretSum returns a copy of player's regret accumulator.
func (g *Game) RegretSum(player Player) []float64 {
	return append([]float64(nil), g.profile.Regret[player]...)
}

func (g *Game) Table() *PayoffTable {
	return g.table
}

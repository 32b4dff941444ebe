package matrixgame

import (
	"github.com/pkg/errors"
)

// Source is the random source used to generate payoff tables.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// PayoffTable is a square zero-sum payoff matrix. Entry (a, b) is
// player 0's payoff when player 0 plays a and player 1 plays b.
// It is never modified after construction.
type PayoffTable struct {
	size    int
	entries []float64
}

// NewRandomPayoffTable draws each entry uniformly from [-1, 1),
// row by row.
func NewRandomPayoffTable(size int, rng Source) (*PayoffTable, error) {
	if size < 1 {
		return nil, errors.Errorf("matrix size must be at least 1, got %d", size)
	}

	entries := make([]float64, size*size)
	for i := range entries {
		entries[i] = 2*rng.Float64() - 1
	}

	return &PayoffTable{size: size, entries: entries}, nil
}

// NewPayoffTable builds a table from explicit rows of player 0 payoffs.
func NewPayoffTable(rows [][]float64) (*PayoffTable, error) {
	size := len(rows)
	if size == 0 {
		return nil, errors.New("payoff table must have at least one row")
	}

	entries := make([]float64, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return nil, errors.Errorf("payoff table must be square: row %d has %d entries, want %d",
				i, len(row), size)
		}
		entries = append(entries, row...)
	}

	return &PayoffTable{size: size, entries: entries}, nil
}

// Size is the number of actions available to each player.
func (t *PayoffTable) Size() int {
	return t.size
}

// Payoff returns the payoff to player when it plays own and its
// opponent plays opp. Player 1's payoff is the negated mirror entry.
func (t *PayoffTable) Payoff(player Player, own, opp int) float64 {
	if player == Player0 {
		return t.entries[own*t.size+opp]
	}

	return -t.entries[opp*t.size+own]
}

// ExpectedPayoffs fills dst with the expected payoff of each of player's
// actions against the opponent distribution q, and returns dst.
func (t *PayoffTable) ExpectedPayoffs(player Player, q []float64, dst []float64) []float64 {
	for a := 0; a < t.size; a++ {
		sum := 0.0
		for b, p := range q {
			sum += p * t.Payoff(player, a, b)
		}
		dst[a] = sum
	}

	return dst
}

// Rows returns a copy of the table as player 0 payoff rows.
func (t *PayoffTable) Rows() [][]float64 {
	rows := make([][]float64, t.size)
	for i := range rows {
		rows[i] = make([]float64, t.size)
		copy(rows[i], t.entries[i*t.size:(i+1)*t.size])
	}
	return rows
}

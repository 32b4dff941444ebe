package matrixgame

import (
	"math/rand"
	"testing"
)

func TestNewRandomPayoffTable(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	table, err := NewRandomPayoffTable(16, rng)
	if err != nil {
		t.Fatal(err)
	}

	if table.Size() != 16 {
		t.Errorf("table has size %d, expected %d", table.Size(), 16)
	}

	for a, row := range table.Rows() {
		for b, v := range row {
			if v < -1 || v > 1 {
				t.Errorf("entry (%d, %d) = %v is outside [-1, 1]", a, b, v)
			}
		}
	}
}

func TestNewRandomPayoffTable_Deterministic(t *testing.T) {
	t1, _ := NewRandomPayoffTable(8, rand.New(rand.NewSource(7)))
	t2, _ := NewRandomPayoffTable(8, rand.New(rand.NewSource(7)))
	r1, r2 := t1.Rows(), t2.Rows()
	for a := range r1 {
		for b := range r1[a] {
			if r1[a][b] != r2[a][b] {
				t.Fatalf("entry (%d, %d) differs: %v != %v", a, b, r1[a][b], r2[a][b])
			}
		}
	}
}

func TestNewRandomPayoffTable_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewRandomPayoffTable(size, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("expected error for size %d", size)
		}
	}
}

func TestNewPayoffTable_NotSquare(t *testing.T) {
	testCases := [][][]float64{
		nil,
		{{1, 2}},
		{{1, 2}, {3}},
	}

	for _, rows := range testCases {
		if _, err := NewPayoffTable(rows); err == nil {
			t.Errorf("expected error for rows %v", rows)
		}
	}
}

func TestPayoff_ZeroSumMirror(t *testing.T) {
	table, err := NewPayoffTable([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		t.Fatal(err)
	}

	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			p0 := table.Payoff(Player0, a, b)
			p1 := table.Payoff(Player1, b, a)
			if p0+p1 != 0 {
				t.Errorf("payoffs for (%d, %d) do not sum to zero: %v, %v", a, b, p0, p1)
			}
		}
	}

	// Player 1 playing 0 against player 0's 2 reads row 2, column 0.
	if v, want := table.Payoff(Player1, 0, 2), -table.Rows()[2][0]; v != want || v != -7 {
		t.Errorf("player 1 payoff for (own=0, opp=2) = %v, expected %v", v, want)
	}
}

func TestExpectedPayoffs(t *testing.T) {
	table, _ := NewPayoffTable([][]float64{
		{1, -1},
		{-1, 1},
	})

	utils := table.ExpectedPayoffs(Player0, []float64{0.75, 0.25}, make([]float64, 2))
	expected := []float64{0.5, -0.5}
	for i := range expected {
		if utils[i] != expected[i] {
			t.Errorf("utility of action %d = %v, expected %v", i, utils[i], expected[i])
		}
	}
}

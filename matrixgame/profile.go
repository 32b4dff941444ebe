package matrixgame

// Profile is the learning state of both players: the accumulators that
// the average and current strategies are derived from.
type Profile struct {
	Strategy [2]StrategyAccumulator
	Regret   [2]RegretAccumulator
}

// NewProfile returns zeroed accumulators for a game with size actions.
func NewProfile(size int) *Profile {
	p := &Profile{}
	for player := range p.Strategy {
		p.Strategy[player] = make(StrategyAccumulator, size)
		p.Regret[player] = make(RegretAccumulator, size)
	}
	return p
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	c := &Profile{}
	for player := range p.Strategy {
		c.Strategy[player] = append(StrategyAccumulator(nil), p.Strategy[player]...)
		c.Regret[player] = append(RegretAccumulator(nil), p.Regret[player]...)
	}
	return c
}

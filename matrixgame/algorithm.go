package matrixgame

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm selects the per-player update applied on each iteration.
type Algorithm int

const (
	FictitiousPlay Algorithm = iota
	CFR
	CFRPlus
)

var algorithmNames = [...]string{
	FictitiousPlay: "Fictitious play",
	CFR:            "CFR",
	CFRPlus:        "CFR+",
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// Valid reports whether a is one of the known algorithms.
func (a Algorithm) Valid() bool {
	return a >= FictitiousPlay && a <= CFRPlus
}

// ParseAlgorithm accepts either the numeric id (0, 1, 2) or a name such
// as "fp", "cfr" or "cfr+".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "fp", "fictitious", "fictitious-play", "fictitious play":
		return FictitiousPlay, nil
	case "1", "cfr":
		return CFR, nil
	case "2", "cfr+", "cfrplus", "cfr-plus":
		return CFRPlus, nil
	}

	return 0, errors.Errorf("unknown algorithm %q (want 0=fp, 1=cfr or 2=cfr+)", s)
}

// MarshalText and UnmarshalText let Algorithm be read directly from
// flags and environment variables.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.Errorf("invalid algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

type updateFunc func(table *PayoffTable, profile *Profile, player Player, iter int)

func (a Algorithm) update() updateFunc {
	switch a {
	case FictitiousPlay:
		return fictitiousPlayUpdate
	case CFR:
		return cfrUpdate
	case CFRPlus:
		return cfrPlusUpdate
	}

	return nil
}

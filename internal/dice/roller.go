// Package dice implements the randomizer used for menu picks and ability score rolls
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/character-creator/internal/dice Roller

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/character-creator/internal/errors"
)

const (
	// Standard ability score dice notation
	AbilityScoreNotation = "4d6"

	abilityDiceCount = 4
	abilityDiceFaces = 6
)

// AbilityRoll is a single 4d6-drop-lowest result
type AbilityRoll struct {
	// Kept dice, highest first
	Dice    []int
	Dropped int
	Total   int
}

// Roller produces the random values the creator needs
type Roller interface {
	// RollDice rolls count dice with faces sides, each uniform in [1, faces]
	RollDice(count, faces int) ([]int, error)

	// Roll4d6DropLowest rolls four d6, drops the single lowest and sums the rest
	Roll4d6DropLowest() (*AbilityRoll, error)

	// Pick returns a uniform value in [1, n]
	Pick(n int) (int, error)
}

// Config holds the dependencies for the roller
type Config struct {
	// Source is the rpg-toolkit roller, usually dice.DefaultRoller
	Source dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type roller struct {
	source dice.Roller
}

// NewRoller creates a Roller on top of an rpg-toolkit roller
func NewRoller(cfg *Config) (Roller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &roller{source: cfg.Source}, nil
}

// NewDefaultRoller returns a Roller backed by the toolkit's default roller
func NewDefaultRoller() Roller {
	return &roller{source: dice.DefaultRoller}
}

// RollDice rolls count dice with the given number of faces
func (r *roller) RollDice(count, faces int) ([]int, error) {
	if count <= 0 || faces <= 0 {
		return nil, errors.InvalidArgumentf("dice count and faces must be positive: %dd%d", count, faces)
	}

	values, err := r.source.RollN(count, faces)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, faces)
	}
	if len(values) != count {
		return nil, errors.Internalf("expected %d dice for %dd%d, got %d", count, count, faces, len(values))
	}
	for _, v := range values {
		if v < 1 || v > faces {
			return nil, errors.Internalf("die value %d outside 1..%d", v, faces)
		}
	}

	return values, nil
}

// Roll4d6DropLowest rolls one ability score
func (r *roller) Roll4d6DropLowest() (*AbilityRoll, error) {
	values, err := r.RollDice(abilityDiceCount, abilityDiceFaces)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability score")
	}

	return DropLowest(values), nil
}

// Pick returns a value in [1, n]
func (r *roller) Pick(n int) (int, error) {
	values, err := r.RollDice(1, n)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// DropLowest discards the single lowest die and totals the rest
func DropLowest(values []int) *AbilityRoll {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	result := &AbilityRoll{}
	if len(sorted) == 0 {
		return result
	}

	result.Dice = sorted[:len(sorted)-1]
	result.Dropped = sorted[len(sorted)-1]
	for _, v := range result.Dice {
		result.Total += v
	}
	return result
}

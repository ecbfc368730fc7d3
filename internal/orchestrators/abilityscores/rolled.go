package abilityscores

import (
	"sort"

	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

// RolledScoreCount is how many 4d6-drop-lowest rolls a character gets
const RolledScoreCount = 6

// rollScores rolls six ability scores sorted highest first. Equal totals stay
// separate entries.
func (o *Orchestrator) rollScores() ([]*dice.AbilityRoll, error) {
	rolls := make([]*dice.AbilityRoll, 0, RolledScoreCount)
	for i := 0; i < RolledScoreCount; i++ {
		roll, err := o.roller.Roll4d6DropLowest()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ability scores")
		}
		rolls = append(rolls, roll)
	}

	sort.SliceStable(rolls, func(i, j int) bool {
		return rolls[i].Total > rolls[j].Total
	})

	return rolls, nil
}

func totals(rolls []*dice.AbilityRoll) []int {
	out := make([]int, len(rolls))
	for i, r := range rolls {
		out[i] = r.Total
	}
	return out
}

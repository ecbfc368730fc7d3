package abilityscores

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
	"github.com/KirkDiggler/character-creator/internal/prompt"
)

// PointBuyRaiseCost returns the points needed to raise a score by one
func PointBuyRaiseCost(current int) (int, error) {
	if current < dnd5e.PointBuyBaseScore {
		return 0, errors.OutOfRangef("score %d is below the point buy minimum of %d", current, dnd5e.PointBuyBaseScore)
	}
	cost, ok := dnd5e.PointBuyCost[current+1]
	if !ok {
		return 0, errors.OutOfRangef("score %d is already at the point buy maximum of %d", current, dnd5e.PointBuyMaxScore)
	}
	return cost, nil
}

// PointBuySpent returns the total cost of a point buy score set
func PointBuySpent(scores dnd5e.AbilityScores) (int, error) {
	total := 0
	for _, s := range scores.Ordered() {
		if s.Score < dnd5e.PointBuyBaseScore || s.Score > dnd5e.PointBuyMaxScore {
			return 0, errors.OutOfRangef("%s score %d is outside %d..%d",
				s.Ability, s.Score, dnd5e.PointBuyBaseScore, dnd5e.PointBuyMaxScore)
		}
		for v := dnd5e.PointBuyBaseScore + 1; v <= s.Score; v++ {
			total += dnd5e.PointBuyCost[v]
		}
	}
	return total, nil
}

// pointBuy runs the purchase loop until the user is done or the budget is gone.
// Rejected commands are reported and the loop asks again.
func (o *Orchestrator) pointBuy(ctx context.Context) (dnd5e.AbilityScores, int, error) {
	scores := dnd5e.NewAbilityScores(dnd5e.PointBuyBaseScore)
	remaining := dnd5e.PointBuyBudget

	o.prompter.Say(fmt.Sprintf("You have %d points to spend. Every ability starts at %d and can be raised to %d.",
		dnd5e.PointBuyBudget, dnd5e.PointBuyBaseScore, dnd5e.PointBuyMaxScore))

	for remaining > 0 {
		cmd, err := o.prompter.PointBuyCommand(ctx, scores.Clone(), remaining)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to read point buy command")
		}

		if cmd.Action == prompt.ActionDone {
			break
		}

		if !cmd.Ability.Valid() {
			return nil, 0, errors.Internalf("point buy command has unknown ability %q", cmd.Ability)
		}

		current := scores[cmd.Ability]
		switch cmd.Action {
		case prompt.ActionRaise:
			cost, err := PointBuyRaiseCost(current)
			if err != nil {
				o.prompter.Say(fmt.Sprintf("%s is already at the maximum of %d.", cmd.Ability, dnd5e.PointBuyMaxScore))
				continue
			}
			if cost > remaining {
				o.prompter.Say(fmt.Sprintf("Raising %s to %d costs %d points, you have %d left.",
					cmd.Ability, current+1, cost, remaining))
				continue
			}
			scores[cmd.Ability] = current + 1
			remaining -= cost

		case prompt.ActionLower:
			if current <= dnd5e.PointBuyBaseScore {
				o.prompter.Say(fmt.Sprintf("%s cannot go below %d.", cmd.Ability, dnd5e.PointBuyBaseScore))
				continue
			}
			scores[cmd.Ability] = current - 1
			remaining += dnd5e.PointBuyCost[current]

		default:
			return nil, 0, errors.Internalf("unsupported point buy action %q", cmd.Action)
		}

		slog.Debug("Point buy step",
			"ability", cmd.Ability,
			"action", cmd.Action,
			"score", scores[cmd.Ability],
			"remaining", remaining)
	}

	return scores, dnd5e.PointBuyBudget - remaining, nil
}

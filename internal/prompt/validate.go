package prompt

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

// RandomSelection is returned by ParseMenuSelection when the user asks for a random pick
const RandomSelection = 0

// Action is what a point buy command asks for
type Action string

// Point buy actions
const (
	ActionRaise Action = "raise"
	ActionLower Action = "lower"
	ActionDone  Action = "done"
)

// PointBuyCommand is one parsed point buy instruction. Ability is empty for ActionDone.
type PointBuyCommand struct {
	Action  Action
	Ability dnd5e.Ability
}

// ParseMenuSelection validates a numbered menu answer. It returns the 1-based
// selection, or RandomSelection when allowRandom is set and the user entered 0.
func ParseMenuSelection(input string, optionCount int, allowRandom bool) (int, error) {
	if optionCount <= 0 {
		return 0, errors.Internalf("menu has no options")
	}

	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.InvalidArgumentf("selection %q is not a number", trimmed).
			WithMeta("input", input)
	}

	if n == RandomSelection && allowRandom {
		return RandomSelection, nil
	}
	if n < 1 || n > optionCount {
		return 0, errors.OutOfRangef("selection %d is outside 1..%d", n, optionCount).
			WithMeta("selection", n).
			WithMeta("option_count", optionCount)
	}

	return n, nil
}

// ParseAbilityChoice resolves an ability identifier against the abilities that
// are still unassigned
func ParseAbilityChoice(input string, available []dnd5e.Ability) (dnd5e.Ability, error) {
	ability, ok := dnd5e.ParseAbility(input)
	if !ok {
		return "", errors.InvalidArgumentf("unknown ability %q", strings.TrimSpace(input)).
			WithMeta("input", input)
	}

	for _, a := range available {
		if a == ability {
			return ability, nil
		}
	}

	return "", errors.FailedPreconditionf("ability %s is already assigned", ability).
		WithMeta("ability", string(ability))
}

// ParsePointBuyCommand reads "STR" or "+STR" as a raise, "-STR" as a lower
// and "done" to finish
func ParsePointBuyCommand(input string) (*PointBuyCommand, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.InvalidArgument("command is required")
	}

	if strings.EqualFold(trimmed, string(ActionDone)) {
		return &PointBuyCommand{Action: ActionDone}, nil
	}

	action := ActionRaise
	switch trimmed[0] {
	case '-':
		action = ActionLower
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}

	ability, ok := dnd5e.ParseAbility(trimmed)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown point buy command %q", strings.TrimSpace(input)).
			WithMeta("input", input)
	}

	return &PointBuyCommand{Action: action, Ability: ability}, nil
}

// FormatAbilities renders a list like [STR, DEX, CON]
func FormatAbilities(abilities []dnd5e.Ability) string {
	names := make([]string, len(abilities))
	for i, a := range abilities {
		names[i] = string(a)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

package dnd5e

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-creator/internal/errors"
)

// Ability is one of the six ability identifiers
type Ability string

var abilityOrder = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// AllAbilities returns the six abilities in canonical order STR, DEX, CON, INT, WIS, CHA.
// The returned slice is a fresh copy.
func AllAbilities() []Ability {
	out := make([]Ability, len(abilityOrder))
	copy(out, abilityOrder)
	return out
}

// ParseAbility resolves an identifier like "str" or " Dex " to an Ability
func ParseAbility(s string) (Ability, bool) {
	a := Ability(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := abilityNames[a]
	return a, ok
}

// Valid reports whether a is one of the six identifiers
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// Name returns the long form, e.g. "Strength"
func (a Ability) Name() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return string(a)
}

// AbilityModifier returns floor((score - 10) / 2). Division rounds toward
// negative infinity so 9 yields -1.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// FormatModifier renders a modifier with an explicit sign, e.g. "+2" or "-1"
func FormatModifier(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}

// AbilityScores maps each ability to its score
type AbilityScores map[Ability]int

// AbilityScore pairs an ability with a score for ordered output
type AbilityScore struct {
	Ability Ability
	Score   int
}

// NewAbilityScores returns a set with every ability at the given base score
func NewAbilityScores(base int) AbilityScores {
	scores := make(AbilityScores, len(abilityOrder))
	for _, a := range abilityOrder {
		scores[a] = base
	}
	return scores
}

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	out := make(AbilityScores, len(s))
	for a, v := range s {
		out[a] = v
	}
	return out
}

// Ordered returns the assigned scores in canonical order regardless of
// assignment order
func (s AbilityScores) Ordered() []AbilityScore {
	out := make([]AbilityScore, 0, len(s))
	for _, a := range abilityOrder {
		if v, ok := s[a]; ok {
			out = append(out, AbilityScore{Ability: a, Score: v})
		}
	}
	return out
}

// Modifiers returns the modifier for every assigned ability
func (s AbilityScores) Modifiers() map[Ability]int {
	out := make(map[Ability]int, len(s))
	for a, v := range s {
		out[a] = AbilityModifier(v)
	}
	return out
}

// Validate checks that exactly the six abilities are present and every score is positive
func (s AbilityScores) Validate() error {
	if len(s) != len(abilityOrder) {
		return errors.InvalidArgumentf("expected %d ability scores, got %d", len(abilityOrder), len(s))
	}
	for _, a := range abilityOrder {
		v, ok := s[a]
		if !ok {
			return errors.InvalidArgumentf("ability %s is not assigned", a).WithMeta("ability", string(a))
		}
		if v <= 0 {
			return errors.InvalidArgumentf("ability %s has non-positive score %d", a, v).WithMeta("ability", string(a))
		}
	}
	return nil
}

// GenerationMethod selects how ability scores are produced
type GenerationMethod string

// GenerationMethods returns the methods in menu order
func GenerationMethods() []GenerationMethod {
	return []GenerationMethod{GenerationRolled, GenerationPointBuy, GenerationStandardArray}
}

// ParseGenerationMethod resolves a method name; dashes and case are ignored
func ParseGenerationMethod(s string) (GenerationMethod, bool) {
	normalized := GenerationMethod(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, m := range GenerationMethods() {
		if m == normalized {
			return m, true
		}
	}
	return "", false
}

// Label returns the menu text for the method
func (m GenerationMethod) Label() string {
	switch m {
	case GenerationRolled:
		return "Rolling (recommended)"
	case GenerationPointBuy:
		return fmt.Sprintf("Points buy (%d pts)", PointBuyBudget)
	case GenerationStandardArray:
		return "Standard array"
	default:
		return string(m)
	}
}

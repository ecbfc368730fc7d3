// Package dnd5e implements the D&D 5e entities used by the character creator
package dnd5e

// Character is the assembled result of a creation session.
// NOTE: This is a data-only struct. Derived values are filled in by the
// character orchestrator when the character is assembled.
type Character struct {
	ID               string
	RaceID           string
	RaceName         string
	ClassID          string
	ClassName        string
	BackgroundID     string
	BackgroundName   string
	GenerationMethod GenerationMethod

	// RawScores are the scores as assigned, before racial bonuses
	RawScores     AbilityScores
	AbilityScores AbilityScores
	Modifiers     map[Ability]int

	Speed            int
	Traits           []string
	HitDie           int
	MaxHP            int
	SavingThrow      Ability
	PrimaryAbilities []Ability

	ArmorProficiencies  []string
	WeaponProficiencies []string
	SkillChoices        int
	Skills              []string
	ToolProficiencies   []string
	Equipment           []string

	CreatedAt int64
}

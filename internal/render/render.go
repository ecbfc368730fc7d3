// Package render prints catalog entries and finished characters as plain text
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
)

const none = "None"

// printer remembers the first write error so callers can check once
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func join(items []string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}

func joinAbilities(abilities []dnd5e.Ability) string {
	names := make([]string, len(abilities))
	for i, a := range abilities {
		names[i] = string(a)
	}
	return join(names)
}

// Bonuses renders ability bonuses in canonical order, e.g. "DEX +2"
func Bonuses(bonuses map[dnd5e.Ability]int) string {
	parts := make([]string, 0, len(bonuses))
	for _, a := range dnd5e.AllAbilities() {
		if b, ok := bonuses[a]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", a, dnd5e.FormatModifier(b)))
		}
	}
	return join(parts)
}

// Proficiencies renders class proficiencies as "Armor: ...; Weapons: ...; Skills: choose N"
func Proficiencies(p dnd5e.ProficiencyChoices) string {
	if p.IsEmpty() {
		return none
	}

	var parts []string
	if len(p.Armor) > 0 {
		parts = append(parts, "Armor: "+strings.Join(p.Armor, ", "))
	}
	if len(p.Weapons) > 0 {
		parts = append(parts, "Weapons: "+strings.Join(p.Weapons, ", "))
	}
	if p.SkillCount > 0 {
		parts = append(parts, fmt.Sprintf("Skills: choose %d", p.SkillCount))
	}
	return strings.Join(parts, "; ")
}

// Race prints a race entry
func Race(w io.Writer, race *dnd5e.Race) error {
	p := &printer{w: w}
	p.line("\n--- %s ---", race.Name)
	p.line("Speed: %d", race.Speed)
	p.line("Ability Bonuses: %s", Bonuses(race.AbilityBonuses))
	p.line("Traits: %s", join(race.Traits))
	return p.err
}

// Class prints a class entry
func Class(w io.Writer, class *dnd5e.Class) error {
	p := &printer{w: w}
	p.line("\n--- %s ---", class.Name)
	p.line("Hit Die: d%d", class.HitDie)
	p.line("Primary Abilities: %s", joinAbilities(class.PrimaryAbilities))
	p.line("Saving Throw: %s", class.SavingThrow)
	p.line("Proficiencies: %s", Proficiencies(class.Proficiencies))
	p.line("Starting Equipment: %s", join(class.StartingEquipment))
	return p.err
}

// Background prints a background entry. Missing tool proficiencies print as None.
func Background(w io.Writer, bg *dnd5e.Background) error {
	p := &printer{w: w}
	p.line("\n--- %s ---", bg.Name)
	p.line("Skills: %s", join(bg.Skills))
	p.line("Tool Proficiencies: %s", join(bg.ToolProficiencies))
	p.line("Equipment: %s", join(bg.Equipment))
	return p.err
}

// Scores prints one line per ability in canonical order with its modifier
func Scores(w io.Writer, scores dnd5e.AbilityScores) error {
	p := &printer{w: w}
	for _, s := range scores.Ordered() {
		p.line("%-13s %s %2d (%s)", s.Ability.Name(), s.Ability, s.Score,
			dnd5e.FormatModifier(dnd5e.AbilityModifier(s.Score)))
	}
	return p.err
}

// Character prints the finished character sheet
func Character(w io.Writer, c *dnd5e.Character) error {
	p := &printer{w: w}
	p.line("\n=== %s %s ===", c.RaceName, c.ClassName)
	p.line("ID: %s", c.ID)
	p.line("Background: %s", c.BackgroundName)
	p.line("Ability generation: %s", c.GenerationMethod.Label())
	p.line("")
	if p.err != nil {
		return p.err
	}
	if err := Scores(w, c.AbilityScores); err != nil {
		return err
	}
	p.line("")
	p.line("Hit Points: %d (d%d hit die)", c.MaxHP, c.HitDie)
	p.line("Speed: %d", c.Speed)
	p.line("Saving Throw: %s", c.SavingThrow)
	p.line("Primary Abilities: %s", joinAbilities(c.PrimaryAbilities))
	p.line("Traits: %s", join(c.Traits))
	p.line("Armor: %s", join(c.ArmorProficiencies))
	p.line("Weapons: %s", join(c.WeaponProficiencies))
	if c.SkillChoices > 0 {
		p.line("Class skills: choose %d", c.SkillChoices)
	}
	p.line("Skills: %s", join(c.Skills))
	p.line("Tool Proficiencies: %s", join(c.ToolProficiencies))
	p.line("Equipment: %s", join(c.Equipment))
	return p.err
}

package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

// Load-time bounds for class hit dice and race speed
const (
	minHitDie = 4
	maxHitDie = 12
	minSpeed  = 5
	maxSpeed  = 120
)

// document mirrors the YAML layout of catalog.yaml
type document struct {
	Races       []raceRecord       `yaml:"races"`
	Classes     []classRecord      `yaml:"classes"`
	Backgrounds []backgroundRecord `yaml:"backgrounds"`
}

type raceRecord struct {
	ID             string         `yaml:"id"`
	Name           string         `yaml:"name"`
	Speed          int            `yaml:"speed"`
	AbilityBonuses map[string]int `yaml:"ability_bonuses"`
	Traits         []string       `yaml:"traits"`
}

type proficiencyRecord struct {
	Armor   []string `yaml:"armor"`
	Weapons []string `yaml:"weapons"`
	Skills  int      `yaml:"skills"`
}

type classRecord struct {
	ID                string            `yaml:"id"`
	Name              string            `yaml:"name"`
	HitDie            int               `yaml:"hit_die"`
	PrimaryAbilities  []string          `yaml:"primary_abilities"`
	SavingThrow       string            `yaml:"saving_throw"`
	Proficiencies     proficiencyRecord `yaml:"proficiencies"`
	StartingEquipment []string          `yaml:"starting_equipment"`
}

type backgroundRecord struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Skills            []string `yaml:"skills"`
	ToolProficiencies []string `yaml:"tool_proficiencies"`
	Equipment         []string `yaml:"equipment"`
}

func abilityNames() []string {
	abilities := dnd5e.AllAbilities()
	names := make([]string, len(abilities))
	for i, a := range abilities {
		names[i] = string(a)
	}
	return names
}

func parseAbility(field, value string, vb *errors.ValidationBuilder) dnd5e.Ability {
	a, ok := dnd5e.ParseAbility(value)
	if !ok {
		errors.ValidateEnum(field, value, abilityNames(), vb)
	}
	return a
}

func (r raceRecord) toEntity(vb *errors.ValidationBuilder) *dnd5e.Race {
	field := fmt.Sprintf("races[%s]", r.ID)
	errors.ValidateRequired(field+".id", r.ID, vb)
	errors.ValidateRequired(field+".name", r.Name, vb)
	errors.ValidateRange(field+".speed", r.Speed, minSpeed, maxSpeed, vb)

	race := &dnd5e.Race{
		ID:             r.ID,
		Name:           r.Name,
		Speed:          r.Speed,
		AbilityBonuses: make(map[dnd5e.Ability]int, len(r.AbilityBonuses)),
		Traits:         append([]string(nil), r.Traits...),
	}
	for key, bonus := range r.AbilityBonuses {
		a := parseAbility(field+".ability_bonuses", key, vb)
		race.AbilityBonuses[a] = bonus
	}
	return race
}

func (c classRecord) toEntity(vb *errors.ValidationBuilder) *dnd5e.Class {
	field := fmt.Sprintf("classes[%s]", c.ID)
	errors.ValidateRequired(field+".id", c.ID, vb)
	errors.ValidateRequired(field+".name", c.Name, vb)
	errors.ValidateRange(field+".hit_die", c.HitDie, minHitDie, maxHitDie, vb)
	if len(c.PrimaryAbilities) == 0 {
		vb.RequiredField(field + ".primary_abilities")
	}

	class := &dnd5e.Class{
		ID:          c.ID,
		Name:        c.Name,
		HitDie:      c.HitDie,
		SavingThrow: parseAbility(field+".saving_throw", c.SavingThrow, vb),
		Proficiencies: dnd5e.ProficiencyChoices{
			Armor:      append([]string(nil), c.Proficiencies.Armor...),
			Weapons:    append([]string(nil), c.Proficiencies.Weapons...),
			SkillCount: c.Proficiencies.Skills,
		},
		StartingEquipment: append([]string(nil), c.StartingEquipment...),
	}
	for _, name := range c.PrimaryAbilities {
		class.PrimaryAbilities = append(class.PrimaryAbilities, parseAbility(field+".primary_abilities", name, vb))
	}
	return class
}

func (b backgroundRecord) toEntity(vb *errors.ValidationBuilder) *dnd5e.Background {
	field := fmt.Sprintf("backgrounds[%s]", b.ID)
	errors.ValidateRequired(field+".id", b.ID, vb)
	errors.ValidateRequired(field+".name", b.Name, vb)

	return &dnd5e.Background{
		ID:                b.ID,
		Name:              b.Name,
		Skills:            append([]string(nil), b.Skills...),
		ToolProficiencies: append([]string(nil), b.ToolProficiencies...),
		Equipment:         append([]string(nil), b.Equipment...),
	}
}

// keyOf normalises an ID or display name for lookups
func keyOf(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package dnd5e

// Race describes a playable race from the catalog
type Race struct {
	ID             string
	Name           string
	Speed          int
	AbilityBonuses map[Ability]int
	Traits         []string
}

// Clone returns a deep copy so catalog storage is never shared
func (r *Race) Clone() *Race {
	if r == nil {
		return nil
	}
	out := *r
	out.AbilityBonuses = make(map[Ability]int, len(r.AbilityBonuses))
	for a, b := range r.AbilityBonuses {
		out.AbilityBonuses[a] = b
	}
	out.Traits = cloneStrings(r.Traits)
	return &out
}

// ProficiencyChoices holds what a class grants or lets the player pick.
// A class fills whichever lists apply; Rogue only sets SkillCount.
type ProficiencyChoices struct {
	Armor      []string
	Weapons    []string
	SkillCount int
}

// IsEmpty reports whether no proficiencies are defined
func (p ProficiencyChoices) IsEmpty() bool {
	return len(p.Armor) == 0 && len(p.Weapons) == 0 && p.SkillCount == 0
}

// Class describes a playable class from the catalog
type Class struct {
	ID                string
	Name              string
	HitDie            int
	PrimaryAbilities  []Ability
	SavingThrow       Ability
	Proficiencies     ProficiencyChoices
	StartingEquipment []string
}

// Clone returns a deep copy
func (c *Class) Clone() *Class {
	if c == nil {
		return nil
	}
	out := *c
	out.PrimaryAbilities = make([]Ability, len(c.PrimaryAbilities))
	copy(out.PrimaryAbilities, c.PrimaryAbilities)
	out.Proficiencies = ProficiencyChoices{
		Armor:      cloneStrings(c.Proficiencies.Armor),
		Weapons:    cloneStrings(c.Proficiencies.Weapons),
		SkillCount: c.Proficiencies.SkillCount,
	}
	out.StartingEquipment = cloneStrings(c.StartingEquipment)
	return &out
}

// Background describes a character background from the catalog
type Background struct {
	ID                string
	Name              string
	Skills            []string
	ToolProficiencies []string
	Equipment         []string
}

// Clone returns a deep copy
func (b *Background) Clone() *Background {
	if b == nil {
		return nil
	}
	out := *b
	out.Skills = cloneStrings(b.Skills)
	out.ToolProficiencies = cloneStrings(b.ToolProficiencies)
	out.Equipment = cloneStrings(b.Equipment)
	return &out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestMenuOrder() {
	races := s.catalog.ListRaces()
	s.Require().Len(races, 4)
	s.Assert().Equal([]string{"Human", "Elf", "Dwarf", "Halfling"},
		[]string{races[0].Name, races[1].Name, races[2].Name, races[3].Name})

	classes := s.catalog.ListClasses()
	s.Require().Len(classes, 4)
	s.Assert().Equal([]string{dnd5e.ClassFighter, dnd5e.ClassWizard, dnd5e.ClassRogue, dnd5e.ClassCleric},
		[]string{classes[0].ID, classes[1].ID, classes[2].ID, classes[3].ID})

	backgrounds := s.catalog.ListBackgrounds()
	s.Require().Len(backgrounds, 4)
	s.Assert().Equal([]string{"Soldier", "Sage", "Criminal", "Folk Hero"},
		[]string{backgrounds[0].Name, backgrounds[1].Name, backgrounds[2].Name, backgrounds[3].Name})
}

func (s *CatalogTestSuite) TestRaceTables() {
	testCases := []struct {
		id      string
		speed   int
		bonuses map[dnd5e.Ability]int
		traits  []string
	}{
		{
			id:    dnd5e.RaceHuman,
			speed: 30,
			bonuses: map[dnd5e.Ability]int{
				dnd5e.AbilityStrength: 1, dnd5e.AbilityDexterity: 1, dnd5e.AbilityConstitution: 1,
				dnd5e.AbilityIntelligence: 1, dnd5e.AbilityWisdom: 1, dnd5e.AbilityCharisma: 1,
			},
			traits: []string{"Extra language"},
		},
		{
			id:      dnd5e.RaceElf,
			speed:   30,
			bonuses: map[dnd5e.Ability]int{dnd5e.AbilityDexterity: 2},
			traits:  []string{"Darkvision", "Keen Senses", "Fey Ancestry"},
		},
		{
			id:      dnd5e.RaceDwarf,
			speed:   25,
			bonuses: map[dnd5e.Ability]int{dnd5e.AbilityConstitution: 2},
			traits:  []string{"Darkvision", "Dwarven Resilience"},
		},
		{
			id:      dnd5e.RaceHalfling,
			speed:   25,
			bonuses: map[dnd5e.Ability]int{dnd5e.AbilityDexterity: 2},
			traits:  []string{"Lucky", "Brave"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.id, func() {
			race, err := s.catalog.GetRace(tc.id)
			s.Require().NoError(err)
			s.Assert().Equal(tc.speed, race.Speed)
			s.Assert().Equal(tc.bonuses, race.AbilityBonuses)
			s.Assert().Equal(tc.traits, race.Traits)
		})
	}
}

func (s *CatalogTestSuite) TestClassTables() {
	fighter, err := s.catalog.GetClass(dnd5e.ClassFighter)
	s.Require().NoError(err)
	s.Assert().Equal(10, fighter.HitDie)
	s.Assert().Equal([]dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution}, fighter.PrimaryAbilities)
	s.Assert().Equal(dnd5e.AbilityConstitution, fighter.SavingThrow)
	s.Assert().Equal([]string{"All armor", "Shields"}, fighter.Proficiencies.Armor)
	s.Assert().Equal([]string{"Simple", "Martial"}, fighter.Proficiencies.Weapons)

	rogue, err := s.catalog.GetClass("rogue")
	s.Require().NoError(err)
	s.Assert().Equal(8, rogue.HitDie)
	s.Assert().Equal(4, rogue.Proficiencies.SkillCount)
	s.Assert().Empty(rogue.Proficiencies.Armor)
	s.Assert().Equal([]string{"Leather armor", "Two daggers", "Thieves' tools"}, rogue.StartingEquipment)

	wizard, err := s.catalog.GetClass("Wizard")
	s.Require().NoError(err)
	s.Assert().Equal(6, wizard.HitDie)
	s.Assert().Equal(dnd5e.AbilityIntelligence, wizard.SavingThrow)
}

func (s *CatalogTestSuite) TestBackgroundTables() {
	sage, err := s.catalog.GetBackground(dnd5e.BackgroundSage)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Arcana", "History"}, sage.Skills)
	s.Assert().Empty(sage.ToolProficiencies)

	hero, err := s.catalog.GetBackground("folk hero")
	s.Require().NoError(err)
	s.Assert().Equal(dnd5e.BackgroundFolkHero, hero.ID)
	s.Assert().Equal([]string{"Land vehicles"}, hero.ToolProficiencies)
}

func (s *CatalogTestSuite) TestUnknownKeys() {
	_, err := s.catalog.GetRace("Gnome")
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.catalog.GetClass("CLASS_BARD")
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.catalog.GetBackground("")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestReturnedValuesAreCopies() {
	elf, err := s.catalog.GetRace(dnd5e.RaceElf)
	s.Require().NoError(err)
	elf.AbilityBonuses[dnd5e.AbilityDexterity] = 10
	elf.Traits = append(elf.Traits, "Flight")

	fresh, err := s.catalog.GetRace(dnd5e.RaceElf)
	s.Require().NoError(err)
	s.Assert().Equal(2, fresh.AbilityBonuses[dnd5e.AbilityDexterity])
	s.Assert().Len(fresh.Traits, 3)

	races := s.catalog.ListRaces()
	races[0].Name = "Changed"
	s.Assert().Equal("Human", s.catalog.ListRaces()[0].Name)
}

func (s *CatalogTestSuite) TestLoadRejectsInvalidDocuments() {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed yaml",
			doc:  "races: [",
		},
		{
			name: "empty sections",
			doc:  "races: []\nclasses: []\nbackgrounds: []\n",
		},
		{
			name: "unknown ability",
			doc: `
races:
  - {id: RACE_X, name: X, speed: 30, ability_bonuses: {LUK: 2}}
classes:
  - {id: CLASS_X, name: X, hit_die: 8, primary_abilities: [STR], saving_throw: STR}
backgrounds:
  - {id: BG_X, name: X}
`,
		},
		{
			name: "duplicate id",
			doc: `
races:
  - {id: RACE_X, name: X, speed: 30}
  - {id: RACE_X, name: Y, speed: 30}
classes:
  - {id: CLASS_X, name: X, hit_die: 8, primary_abilities: [STR], saving_throw: STR}
backgrounds:
  - {id: BG_X, name: X}
`,
		},
		{
			name: "non-positive hit die",
			doc: `
races:
  - {id: RACE_X, name: X, speed: 30}
classes:
  - {id: CLASS_X, name: X, hit_die: 0, primary_abilities: [STR], saving_throw: STR}
backgrounds:
  - {id: BG_X, name: X}
`,
		},
		{
			name: "hit die too large",
			doc: `
races:
  - {id: RACE_X, name: X, speed: 30}
classes:
  - {id: CLASS_X, name: X, hit_die: 20, primary_abilities: [STR], saving_throw: STR}
backgrounds:
  - {id: BG_X, name: X}
`,
		},
		{
			name: "missing speed",
			doc: `
races:
  - {id: RACE_X, name: X}
classes:
  - {id: CLASS_X, name: X, hit_die: 8, primary_abilities: [STR], saving_throw: STR}
backgrounds:
  - {id: BG_X, name: X}
`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := catalog.Load([]byte(tc.doc))
			s.Assert().Nil(c)
			s.Assert().True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *CatalogTestSuite) TestLoadMinimalDocument() {
	c, err := catalog.Load([]byte(`
races:
  - {id: RACE_X, name: Xeno, speed: 35, ability_bonuses: {int: 1}}
classes:
  - {id: CLASS_X, name: Bard, hit_die: 8, primary_abilities: [CHA], saving_throw: cha}
backgrounds:
  - {id: BG_X, name: Hermit}
`))
	s.Require().NoError(err)

	race, err := c.GetRace("xeno")
	s.Require().NoError(err)
	s.Assert().Equal(1, race.AbilityBonuses[dnd5e.AbilityIntelligence])

	class, err := c.GetClass("CLASS_X")
	s.Require().NoError(err)
	s.Assert().Equal(dnd5e.AbilityCharisma, class.SavingThrow)
}

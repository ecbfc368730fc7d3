package dnd5e

// Race constants
const (
	RaceHuman    = "RACE_HUMAN"
	RaceElf      = "RACE_ELF"
	RaceDwarf    = "RACE_DWARF"
	RaceHalfling = "RACE_HALFLING"
)

// Class constants
const (
	ClassFighter = "CLASS_FIGHTER"
	ClassWizard  = "CLASS_WIZARD"
	ClassRogue   = "CLASS_ROGUE"
	ClassCleric  = "CLASS_CLERIC"
)

// Background constants
const (
	BackgroundSoldier  = "BACKGROUND_SOLDIER"
	BackgroundSage     = "BACKGROUND_SAGE"
	BackgroundCriminal = "BACKGROUND_CRIMINAL"
	BackgroundFolkHero = "BACKGROUND_FOLK_HERO"
)

// Ability identifiers
const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Generation methods
const (
	GenerationRolled        GenerationMethod = "rolled"
	GenerationPointBuy      GenerationMethod = "point_buy"
	GenerationStandardArray GenerationMethod = "standard_array"
)

// Point buy rules
const (
	PointBuyBudget    = 27
	PointBuyBaseScore = 8
	PointBuyMaxScore  = 15
)

// StandardArray is the fixed list of scores handed out by the standard array method
var StandardArray = []int{15, 14, 13, 12, 10, 8}

// PointBuyCost maps a target score to the marginal cost of raising to it from
// the score one below
var PointBuyCost = map[int]int{
	9:  1,
	10: 1,
	11: 1,
	12: 1,
	13: 1,
	14: 2,
	15: 2,
}

package character_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/abilityscores"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/character"
	"github.com/KirkDiggler/character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/character-creator/internal/pkg/idgen"
	"github.com/KirkDiggler/character-creator/internal/prompt"
)

func newSession(t *testing.T, input string) (*character.Orchestrator, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	console, err := prompt.NewConsole(&prompt.Config{In: strings.NewReader(input), Out: out})
	require.NoError(t, err)

	cat, err := catalog.Default()
	require.NoError(t, err)

	roller := dice.NewDefaultRoller()
	bus := toolkitevents.NewBus()

	allocator, err := abilityscores.New(&abilityscores.Config{
		Catalog:  cat,
		Roller:   roller,
		Prompter: console,
		EventBus: bus,
	})
	require.NoError(t, err)

	o, err := character.New(&character.Config{
		Catalog:     cat,
		Prompter:    console,
		Roller:      roller,
		Allocator:   allocator,
		IDGenerator: idgen.NewSequential("char"),
		Clock:       clock.New(),
		EventBus:    bus,
	})
	require.NoError(t, err)

	return o, out
}

func TestChoose_RejectsBadInputThenAccepts(t *testing.T) {
	o, out := newSession(t, "abc\n9\n2\n")

	output, err := o.Choose(context.Background(), &character.ChooseInput{
		Category:    character.CategoryRace,
		Options:     raceNames,
		AllowRandom: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Elf", output.Option)

	transcript := out.String()
	assert.Equal(t, 2, strings.Count(transcript, "Invalid input, please pick a number between 1 and 4. "))
	assert.Contains(t, transcript, "You selected Elf!\n")
}

func TestChoose_RandomStaysInRange(t *testing.T) {
	input := strings.Repeat("0\n", 50)
	o, _ := newSession(t, input)

	for i := 0; i < 50; i++ {
		output, err := o.Choose(context.Background(), &character.ChooseInput{
			Category:    character.CategoryBackground,
			Options:     backgroundNames,
			AllowRandom: true,
		})
		require.NoError(t, err)
		assert.True(t, output.Random)
		assert.GreaterOrEqual(t, output.Selection, 1)
		assert.LessOrEqual(t, output.Selection, 4)
		assert.Equal(t, backgroundNames[output.Selection-1], output.Option)
	}
}

func TestCreate_FullStandardArraySession(t *testing.T) {
	input := strings.Join([]string{
		"2", // Elf
		"3", // Rogue
		"3", // Criminal
		"0", // method menu has no random option
		"3", // Standard array
		"dex", "con", "wis", "int", "cha", "str",
	}, "\n") + "\n"

	o, out := newSession(t, input)

	output, err := o.Create(context.Background(), &character.CreateInput{})
	require.NoError(t, err)

	c := output.Character
	assert.Equal(t, "char_1", c.ID)
	assert.Equal(t, "Elf", c.RaceName)
	assert.Equal(t, "Rogue", c.ClassName)
	assert.Equal(t, "Criminal", c.BackgroundName)
	assert.Equal(t, dnd5e.GenerationStandardArray, c.GenerationMethod)
	assert.Equal(t, 17, c.AbilityScores[dnd5e.AbilityDexterity])
	assert.Equal(t, 15, c.RawScores[dnd5e.AbilityDexterity])
	assert.Equal(t, 8, c.AbilityScores[dnd5e.AbilityStrength])
	assert.Equal(t, 4, c.SkillChoices)
	assert.Equal(t, 10, c.MaxHP)
	assert.NotZero(t, c.CreatedAt)

	transcript := out.String()
	assert.Contains(t, transcript, "Race: \n1. Human\n2. Elf\n3. Dwarf\n4. Halfling\n0. Random\nPick a number: ")
	assert.Contains(t, transcript, "How do you want to assign your stats?\n1. Rolling (recommended)\n2. Points buy (27 pts)\n3. Standard array\nPick a number: ")
	assert.Contains(t, transcript, "Invalid, please pick a number between 1 and 3\n")
	assert.NotContains(t, transcript, "Invalid input, please pick a number between 1 and 3")
	assert.Contains(t, transcript, "[STR: 8, DEX: 17, CON: 14, INT: 12, WIS: 13, CHA: 10]")
}

func TestCreate_InputEndsEarly(t *testing.T) {
	o, _ := newSession(t, "1\n")

	_, err := o.Create(context.Background(), &character.CreateInput{})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

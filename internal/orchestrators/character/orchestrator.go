// Package character implements the character creation orchestrator
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
	creatorevents "github.com/KirkDiggler/character-creator/internal/events"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/abilityscores"
	"github.com/KirkDiggler/character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/character-creator/internal/pkg/idgen"
	"github.com/KirkDiggler/character-creator/internal/prompt"
)

// Menu titles
const (
	CategoryRace       = "Race"
	CategoryClass      = "Class"
	CategoryBackground = "Background"

	methodMenuTitle = "How do you want to assign your stats?"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	Catalog     catalog.Repository
	Prompter    prompt.Prompter
	Roller      dice.Roller
	Allocator   abilityscores.Service
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// EventBus is optional; without it no events are published
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Prompter == nil {
		vb.RequiredField("Prompter")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Allocator == nil {
		vb.RequiredField("Allocator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	catalog   catalog.Repository
	prompter  prompt.Prompter
	roller    dice.Roller
	allocator abilityscores.Service
	idGen     idgen.Generator
	clock     clock.Clock
	eventBus  events.EventBus
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		catalog:   cfg.Catalog,
		prompter:  cfg.Prompter,
		roller:    cfg.Roller,
		allocator: cfg.Allocator,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		eventBus:  cfg.EventBus,
	}, nil
}

// Choose shows a numbered menu for one category. A random request is
// resolved with a uniform pick over the options.
func (o *Orchestrator) Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("category", input.Category, vb)
	if len(input.Options) == 0 {
		vb.RequiredField("options")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selection, err := o.prompter.SelectOption(ctx, input.Category+": ", input.Options, input.AllowRandom)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to choose %s", input.Category)
	}

	output := &ChooseOutput{}
	if selection == prompt.RandomSelection {
		selection, err = o.roller.Pick(len(input.Options))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to pick a random %s", input.Category)
		}
		output.Random = true
		o.prompter.Say(fmt.Sprintf("%d", selection))
	}

	if selection < 1 || selection > len(input.Options) {
		return nil, errors.Internalf("selection %d is outside 1..%d", selection, len(input.Options))
	}

	output.Selection = selection
	output.Option = input.Options[selection-1]
	o.prompter.Say(fmt.Sprintf("You selected %s!\n", output.Option))

	slog.Debug("Menu choice",
		"category", input.Category,
		"option", output.Option,
		"random", output.Random)

	return output, nil
}

// Assemble merges the catalog entries and scores into a character
func (o *Orchestrator) Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("raceID", input.RaceID, vb)
	errors.ValidateRequired("classID", input.ClassID, vb)
	errors.ValidateRequired("backgroundID", input.BackgroundID, vb)
	if err := input.Scores.Validate(); err != nil {
		vb.InvalidField("scores", errors.GetMessage(err))
	}
	if input.RawScores != nil {
		if err := input.RawScores.Validate(); err != nil {
			vb.InvalidField("rawScores", errors.GetMessage(err))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	race, err := o.catalog.GetRace(input.RaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get race")
	}
	class, err := o.catalog.GetClass(input.ClassID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get class")
	}
	background, err := o.catalog.GetBackground(input.BackgroundID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get background")
	}

	id := input.ID
	if id == "" {
		id = o.idGen.Generate()
	}

	raw := input.RawScores
	if raw == nil {
		raw = input.Scores
	}
	scores := input.Scores.Clone()

	equipment := make([]string, 0, len(class.StartingEquipment)+len(background.Equipment))
	equipment = append(equipment, class.StartingEquipment...)
	equipment = append(equipment, background.Equipment...)

	char := &dnd5e.Character{
		ID:                  id,
		RaceID:              race.ID,
		RaceName:            race.Name,
		ClassID:             class.ID,
		ClassName:           class.Name,
		BackgroundID:        background.ID,
		BackgroundName:      background.Name,
		GenerationMethod:    input.Method,
		RawScores:           raw.Clone(),
		AbilityScores:       scores,
		Modifiers:           scores.Modifiers(),
		Speed:               race.Speed,
		Traits:              race.Traits,
		HitDie:              class.HitDie,
		MaxHP:               MaxHitPoints(class.HitDie, scores[dnd5e.AbilityConstitution]),
		SavingThrow:         class.SavingThrow,
		PrimaryAbilities:    class.PrimaryAbilities,
		ArmorProficiencies:  class.Proficiencies.Armor,
		WeaponProficiencies: class.Proficiencies.Weapons,
		SkillChoices:        class.Proficiencies.SkillCount,
		Skills:              background.Skills,
		ToolProficiencies:   background.ToolProficiencies,
		Equipment:           equipment,
		CreatedAt:           o.clock.Now().Unix(),
	}

	slog.Info("Assembled character",
		"character_id", char.ID,
		"race", char.RaceName,
		"class", char.ClassName,
		"background", char.BackgroundName)

	return &AssembleOutput{Character: char}, nil
}

// Create runs race, class, background and method selection, then allocates
// scores and assembles the character
func (o *Orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		input = &CreateInput{}
	}

	sessionID := o.idGen.Generate()
	pub := creatorevents.NewPublisher(o.eventBus, sessionID)

	slog.Debug("Starting creation session", "session_id", sessionID)

	race, err := o.resolveRace(ctx, input.RaceID)
	if err != nil {
		return nil, err
	}
	class, err := o.resolveClass(ctx, input.ClassID)
	if err != nil {
		return nil, err
	}
	background, err := o.resolveBackground(ctx, input.BackgroundID)
	if err != nil {
		return nil, err
	}
	method, err := o.resolveMethod(ctx, input.Method)
	if err != nil {
		return nil, err
	}

	allocated, err := o.allocator.Allocate(ctx, &abilityscores.AllocateInput{
		SessionID: sessionID,
		RaceID:    race.ID,
		ClassID:   class.ID,
		Method:    method,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate ability scores")
	}

	assembled, err := o.Assemble(ctx, &AssembleInput{
		ID:           sessionID,
		RaceID:       race.ID,
		ClassID:      class.ID,
		BackgroundID: background.ID,
		Method:       method,
		RawScores:    allocated.RawScores,
		Scores:       allocated.Scores,
	})
	if err != nil {
		return nil, err
	}

	if err := pub.Publish(ctx, creatorevents.EventCharacterAssembled, map[string]any{
		creatorevents.KeyCharacterID: assembled.Character.ID,
		creatorevents.KeyRaceID:      race.ID,
		creatorevents.KeyClassID:     class.ID,
		creatorevents.KeyMethod:      string(method),
	}); err != nil {
		return nil, err
	}

	return &CreateOutput{Character: assembled.Character}, nil
}

// MaxHitPoints is the level 1 maximum: hit die plus CON modifier, never below 1
func MaxHitPoints(hitDie, constitution int) int {
	return max(1, hitDie+dnd5e.AbilityModifier(constitution))
}

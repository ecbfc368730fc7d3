// Package abilityscores implements ability score generation and assignment
package abilityscores

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
	creatorevents "github.com/KirkDiggler/character-creator/internal/events"
	"github.com/KirkDiggler/character-creator/internal/prompt"
)

// Config holds the dependencies for the ability score orchestrator
type Config struct {
	Catalog  catalog.Repository
	Roller   dice.Roller
	Prompter prompt.Prompter

	// EventBus is optional; without it no events are published
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Prompter == nil {
		vb.RequiredField("Prompter")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	catalog  catalog.Repository
	roller   dice.Roller
	prompter prompt.Prompter
	eventBus events.EventBus
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// New creates a new ability score orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		catalog:  cfg.Catalog,
		roller:   cfg.Roller,
		prompter: cfg.Prompter,
		eventBus: cfg.EventBus,
	}, nil
}

// Allocate generates scores with the requested method, lets the user assign
// them and applies the race's bonuses
func (o *Orchestrator) Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("raceID", input.RaceID, vb)
	errors.ValidateRequired("classID", input.ClassID, vb)
	errors.ValidateEnum("method", string(input.Method), methodNames(), vb)
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

	pub := creatorevents.NewPublisher(o.eventBus, input.SessionID)

	o.prompter.Say(fmt.Sprintf("As a %s, your primary abilities are %s.",
		class.Name, prompt.FormatAbilities(class.PrimaryAbilities)))

	output := &AllocateOutput{Method: input.Method}

	switch input.Method {
	case dnd5e.GenerationRolled:
		rolls, err := o.rollScores()
		if err != nil {
			return nil, err
		}
		output.Rolls = rolls
		output.Values = totals(rolls)
		o.prompter.Say(fmt.Sprintf("Your rolls are: %s", formatValues(output.Values)))

	case dnd5e.GenerationStandardArray:
		output.Values = StandardArrayValues()
		o.prompter.Say(fmt.Sprintf("Your scores are: %s", formatValues(output.Values)))

	case dnd5e.GenerationPointBuy:
		scores, spent, err := o.pointBuy(ctx)
		if err != nil {
			return nil, err
		}
		output.RawScores = scores
		output.PointsSpent = spent
		for _, s := range scores.Ordered() {
			output.Values = append(output.Values, s.Score)
		}
	}

	if err := pub.Publish(ctx, creatorevents.EventAbilityScoresGenerated, map[string]any{
		creatorevents.KeyMethod:  string(input.Method),
		creatorevents.KeyValues:  output.Values,
		creatorevents.KeyRaceID:  race.ID,
		creatorevents.KeyClassID: class.ID,
	}); err != nil {
		return nil, err
	}

	if output.RawScores == nil {
		output.RawScores, err = o.assign(ctx, pub, output.Values)
		if err != nil {
			return nil, err
		}
	}

	output.Scores = ApplyRacialBonuses(output.RawScores, race)
	if err := output.Scores.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "allocated scores are incomplete")
	}

	for _, a := range dnd5e.AllAbilities() {
		bonus, ok := race.AbilityBonuses[a]
		if !ok || bonus == 0 {
			continue
		}
		if err := pub.Publish(ctx, creatorevents.EventRacialBonusApplied, map[string]any{
			creatorevents.KeyRaceID:  race.ID,
			creatorevents.KeyAbility: string(a),
			creatorevents.KeyBonus:   bonus,
			creatorevents.KeyScore:   output.Scores[a],
		}); err != nil {
			return nil, err
		}
	}

	o.prompter.Say(FormatScores(output.Scores))

	slog.Info("Allocated ability scores",
		"session_id", input.SessionID,
		"race_id", race.ID,
		"class_id", class.ID,
		"method", input.Method)

	return output, nil
}

// assign walks values in order and asks which unused ability each one goes
// to. The pool belongs to this call only.
func (o *Orchestrator) assign(ctx context.Context, pub *creatorevents.Publisher, values []int) (dnd5e.AbilityScores, error) {
	pool := dnd5e.AllAbilities()
	if len(values) != len(pool) {
		return nil, errors.Internalf("expected %d values to assign, got %d", len(pool), len(values))
	}

	scores := make(dnd5e.AbilityScores, len(pool))
	for _, value := range values {
		answer, err := o.prompter.SelectAbility(ctx, value, pool)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to assign %d", value)
		}

		ability, err := prompt.ParseAbilityChoice(string(answer), pool)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "prompter returned an unavailable ability")
		}

		scores[ability] = value
		pool = remove(pool, ability)

		slog.Debug("Assigned ability score", "ability", ability, "score", value)
		if err := pub.Publish(ctx, creatorevents.EventAbilityAssigned, map[string]any{
			creatorevents.KeyAbility: string(ability),
			creatorevents.KeyScore:   value,
		}); err != nil {
			return nil, err
		}
	}

	return scores, nil
}

// ApplyRacialBonuses returns a copy of scores with the race's bonuses added
func ApplyRacialBonuses(scores dnd5e.AbilityScores, race *dnd5e.Race) dnd5e.AbilityScores {
	out := scores.Clone()
	if race == nil {
		return out
	}
	for ability, bonus := range race.AbilityBonuses {
		if _, ok := out[ability]; ok {
			out[ability] += bonus
		}
	}
	return out
}

// FormatScores renders scores in canonical order, e.g. [STR: 15, DEX: 14]
func FormatScores(scores dnd5e.AbilityScores) string {
	parts := make([]string, 0, len(scores))
	for _, s := range scores.Ordered() {
		parts = append(parts, fmt.Sprintf("%s: %d", s.Ability, s.Score))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StandardArrayValues returns a copy of the standard array
func StandardArrayValues() []int {
	out := make([]int, len(dnd5e.StandardArray))
	copy(out, dnd5e.StandardArray)
	return out
}

func methodNames() []string {
	methods := dnd5e.GenerationMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}

func remove(pool []dnd5e.Ability, ability dnd5e.Ability) []dnd5e.Ability {
	out := make([]dnd5e.Ability, 0, len(pool))
	for _, a := range pool {
		if a != ability {
			out = append(out, a)
		}
	}
	return out
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package character

import (
	"context"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

// The resolvers use a preset when one is given and fall back to the menu.
// Unknown presets are NOT_FOUND and end the session.

func (o *Orchestrator) resolveRace(ctx context.Context, preset string) (*dnd5e.Race, error) {
	if preset != "" {
		race, err := o.catalog.GetRace(preset)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get race")
		}
		return race, nil
	}

	races := o.catalog.ListRaces()
	names := make([]string, len(races))
	for i, r := range races {
		names[i] = r.Name
	}

	choice, err := o.Choose(ctx, &ChooseInput{Category: CategoryRace, Options: names, AllowRandom: true})
	if err != nil {
		return nil, err
	}
	return races[choice.Selection-1], nil
}

func (o *Orchestrator) resolveClass(ctx context.Context, preset string) (*dnd5e.Class, error) {
	if preset != "" {
		class, err := o.catalog.GetClass(preset)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get class")
		}
		return class, nil
	}

	classes := o.catalog.ListClasses()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}

	choice, err := o.Choose(ctx, &ChooseInput{Category: CategoryClass, Options: names, AllowRandom: true})
	if err != nil {
		return nil, err
	}
	return classes[choice.Selection-1], nil
}

func (o *Orchestrator) resolveBackground(ctx context.Context, preset string) (*dnd5e.Background, error) {
	if preset != "" {
		background, err := o.catalog.GetBackground(preset)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get background")
		}
		return background, nil
	}

	backgrounds := o.catalog.ListBackgrounds()
	names := make([]string, len(backgrounds))
	for i, b := range backgrounds {
		names[i] = b.Name
	}

	choice, err := o.Choose(ctx, &ChooseInput{Category: CategoryBackground, Options: names, AllowRandom: true})
	if err != nil {
		return nil, err
	}
	return backgrounds[choice.Selection-1], nil
}

func (o *Orchestrator) resolveMethod(ctx context.Context, preset dnd5e.GenerationMethod) (dnd5e.GenerationMethod, error) {
	if preset != "" {
		method, ok := dnd5e.ParseGenerationMethod(string(preset))
		if !ok {
			return "", errors.InvalidArgumentf("unknown generation method %q", preset)
		}
		return method, nil
	}

	methods := dnd5e.GenerationMethods()
	labels := make([]string, len(methods))
	for i, m := range methods {
		labels[i] = m.Label()
	}

	selection, err := o.prompter.SelectOption(ctx, methodMenuTitle, labels, false)
	if err != nil {
		return "", errors.Wrap(err, "failed to choose generation method")
	}
	if selection < 1 || selection > len(methods) {
		return "", errors.Internalf("method selection %d is outside 1..%d", selection, len(methods))
	}
	return methods[selection-1], nil
}

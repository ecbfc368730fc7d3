package character

import (
	"context"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/character-creator/internal/orchestrators/character Service

// Service defines the character creation orchestrator interface
type Service interface {
	// Choose asks the user to pick one option from a catalog category
	Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error)

	// Assemble builds the final character from the selections and scores
	Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error)

	// Create runs a whole interactive session
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
}

// ChooseInput defines the request for a menu choice
type ChooseInput struct {
	// Category is the menu title, e.g. "Race"
	Category    string
	Options     []string
	AllowRandom bool
}

// ChooseOutput defines the response for a menu choice
type ChooseOutput struct {
	// Selection is the 1-based menu position that was chosen
	Selection int
	Option    string
	// Random is set when the user asked for a random pick
	Random bool
}

// AssembleInput defines the request for assembling a character
type AssembleInput struct {
	// ID is optional; a new one is generated when empty
	ID           string
	RaceID       string
	ClassID      string
	BackgroundID string
	Method       dnd5e.GenerationMethod
	RawScores    dnd5e.AbilityScores
	Scores       dnd5e.AbilityScores
}

// AssembleOutput defines the response for assembling a character
type AssembleOutput struct {
	Character *dnd5e.Character
}

// CreateInput defines the request for a creation session. Any preset
// selection skips its menu.
type CreateInput struct {
	RaceID       string
	ClassID      string
	BackgroundID string
	Method       dnd5e.GenerationMethod
}

// CreateOutput defines the response for a creation session
type CreateOutput struct {
	Character *dnd5e.Character
}

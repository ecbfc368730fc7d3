package abilityscores

import (
	"context"

	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_service.go -package=abilityscoresmock github.com/KirkDiggler/character-creator/internal/orchestrators/abilityscores Service

// Service produces a finalized set of ability scores for a race and class
type Service interface {
	Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error)
}

// AllocateInput defines the request for generating ability scores
type AllocateInput struct {
	// SessionID tags the events raised during allocation
	SessionID string
	RaceID    string
	ClassID   string
	Method    dnd5e.GenerationMethod
}

// AllocateOutput defines the response for generating ability scores
type AllocateOutput struct {
	Method dnd5e.GenerationMethod

	// Values are the scores handed out, highest first. For point buy they are
	// the purchased scores in canonical order.
	Values []int

	// Rolls holds the individual dice for the rolled method
	Rolls []*dice.AbilityRoll

	// RawScores are the assigned scores before racial bonuses
	RawScores dnd5e.AbilityScores
	Scores    dnd5e.AbilityScores

	// PointsSpent is only set for point buy
	PointsSpent int
}

// Package events publishes character creation milestones on the rpg-toolkit event bus
package events

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-creator/internal/errors"
)

// Event types
const (
	EventAbilityScoresGenerated = "creator.ability_scores.generated"
	EventAbilityAssigned        = "creator.ability.assigned"
	EventRacialBonusApplied     = "creator.racial_bonus.applied"
	EventCharacterAssembled     = "creator.character.assembled"
)

// Context keys set on published events
const (
	KeyMethod      = "method"
	KeyValues      = "values"
	KeyAbility     = "ability"
	KeyScore       = "score"
	KeyBonus       = "bonus"
	KeyRaceID      = "race_id"
	KeyClassID     = "class_id"
	KeyCharacterID = "character_id"
)

// AllEventTypes lists every event the creator publishes
func AllEventTypes() []string {
	return []string{
		EventAbilityScoresGenerated,
		EventAbilityAssigned,
		EventRacialBonusApplied,
		EventCharacterAssembled,
	}
}

const sessionEntityType = "creation_session"

// Session identifies the creation session that raised an event
type Session struct {
	id string
}

// NewSession wraps a session ID as a toolkit entity
func NewSession(id string) *Session {
	return &Session{id: id}
}

// GetID implements core.Entity
func (s *Session) GetID() string {
	return s.id
}

// GetType implements core.Entity
func (s *Session) GetType() string {
	return sessionEntityType
}

var _ core.Entity = (*Session)(nil)

// Publisher raises events for one session. A nil bus turns every publish into a no-op.
type Publisher struct {
	bus     events.EventBus
	session *Session
}

// NewPublisher creates a publisher for the given session
func NewPublisher(bus events.EventBus, sessionID string) *Publisher {
	return &Publisher{
		bus:     bus,
		session: NewSession(sessionID),
	}
}

// Publish sends an event with the given context fields
func (p *Publisher) Publish(ctx context.Context, eventType string, fields map[string]any) error {
	if p == nil || p.bus == nil {
		return nil
	}

	event := events.NewGameEvent(eventType, p.session, nil)
	for k, v := range fields {
		event.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}

	return nil
}

// SubscribeLogger logs every creator event at debug level. It returns the
// subscription IDs so callers can unsubscribe.
func SubscribeLogger(bus events.EventBus, logger *slog.Logger) []string {
	ids := make([]string, 0, len(AllEventTypes()))
	for _, eventType := range AllEventTypes() {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, logHandler(logger)))
	}
	return ids
}

func logHandler(logger *slog.Logger) events.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		attrs := []any{"event", e.Type()}
		if source := e.Source(); source != nil {
			attrs = append(attrs, "session_id", source.GetID())
		}
		for _, key := range []string{KeyMethod, KeyValues, KeyAbility, KeyScore, KeyBonus, KeyRaceID, KeyClassID, KeyCharacterID} {
			if v, ok := e.Context().Get(key); ok {
				attrs = append(attrs, key, v)
			}
		}

		logger.DebugContext(ctx, "Creation event", attrs...)
		return nil
	}
}

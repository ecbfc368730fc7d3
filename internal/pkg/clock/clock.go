// Package clock provides the time source used to stamp created characters
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/character-creator/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant. Useful for reproducible character sheets.
type Fixed struct {
	at time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{at: t}
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.at
}

var (
	_ Clock = (*Real)(nil)
	_ Clock = (*Fixed)(nil)
)

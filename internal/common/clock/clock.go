package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/dicepool/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock in UTC
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time in UTC, truncated to microseconds so it
// survives a JSON round trip through the pool store unchanged
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

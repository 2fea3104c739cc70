package models

import (
	"time"

	"github.com/KirkDiggler/dicepool/internal/pool"
)

// PoolRecord is a stored dice pool
type PoolRecord struct {
	// ID is the unique identifier for the pool
	ID string

	// Label is an optional caller supplied name, e.g. "Melee attack"
	Label string

	// Pool is the dice and rules, including every die's history
	Pool pool.Pool

	// CreatedAt is when the pool was first rolled
	CreatedAt time.Time

	// UpdatedAt is when the pool was last rolled or rerolled
	UpdatedAt time.Time
}

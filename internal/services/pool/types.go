package pool

import (
	"github.com/KirkDiggler/dicepool/internal/common/clock"
	"github.com/KirkDiggler/dicepool/internal/common/uuid"
	"github.com/KirkDiggler/dicepool/internal/dice"
	"github.com/KirkDiggler/dicepool/internal/models"
	dicePool "github.com/KirkDiggler/dicepool/internal/pool"
	poolRepo "github.com/KirkDiggler/dicepool/internal/repositories/pool"
)

// Config holds configuration for the pool service
type Config struct {
	// Maximum number of passes an until_none reroll may make, 0 for no limit
	MaxRerollPasses int

	// Repository dependencies
	PoolRepo poolRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// Evaluation is the scored outcome of a pool
type Evaluation struct {
	// Values is the face shown by each die, in pool order
	Values []int

	// Successes is the total including doubles and automatic successes
	Successes int

	// AutomaticSuccesses is the part of Successes granted by the stunt level
	AutomaticSuccesses int

	// Botch indicates a catastrophic failure
	Botch bool
}

// CreatePoolInput contains parameters for creating a pool
type CreatePoolInput struct {
	// Count is the number of dice requested before stunt and wound adjustments
	Count int

	// Label is an optional name for the roll
	Label string

	// Success overrides the success faces when not nil
	Success dicePool.Faces

	// Double overrides the double success faces when not nil
	Double dicePool.Faces

	// Stunt level, 0 to 3
	Stunt int

	// Wound penalty, -4 to 0
	Wound int
}

// CreatePoolOutput contains the result of creating a pool
type CreatePoolOutput struct {
	Record     *models.PoolRecord
	Evaluation *Evaluation
}

// RollPoolInput contains parameters for rolling a stored pool again
type RollPoolInput struct {
	// PoolID is the unique identifier for the pool
	PoolID string

	// Count is the number of dice requested; nil reuses the pool's current dice count
	Count *int
}

// RollPoolOutput contains the result of rolling a pool again
type RollPoolOutput struct {
	Record     *models.PoolRecord
	Evaluation *Evaluation
}

// RerollPoolInput contains parameters for rerolling part of a pool
type RerollPoolInput struct {
	// PoolID is the unique identifier for the pool
	PoolID string

	// Criteria selects the dice to reroll
	Criteria dicePool.Criteria

	// Mode is once or until none match
	Mode dicePool.Mode
}

// RerollPoolOutput contains the result of rerolling part of a pool
type RerollPoolOutput struct {
	Record     *models.PoolRecord
	Evaluation *Evaluation

	// Passes is the number of reroll passes that touched at least one die
	Passes int

	// Rerolled is the number of die rerolls across every pass
	Rerolled int
}

// GetPoolInput contains parameters for retrieving a pool
type GetPoolInput struct {
	PoolID string
}

// GetPoolOutput contains the result of retrieving a pool
type GetPoolOutput struct {
	Record     *models.PoolRecord
	Evaluation *Evaluation
}

// ListPoolsInput contains parameters for listing pools
type ListPoolsInput struct {
	Limit int
}

// ListPoolsOutput contains the most recently updated pools
type ListPoolsOutput struct {
	Records []*models.PoolRecord
}

// DeletePoolInput contains parameters for deleting a pool
type DeletePoolInput struct {
	PoolID string
}

// DeletePoolOutput contains the result of deleting a pool
type DeletePoolOutput struct {
	Success bool
}

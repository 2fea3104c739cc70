package pool

import "github.com/KirkDiggler/dicepool/internal/models"

type SavePoolInput struct {
	Record *models.PoolRecord
}

type GetPoolInput struct {
	PoolID string
}

type DeletePoolInput struct {
	PoolID string
}

// ListPoolsInput contains parameters for listing pools
type ListPoolsInput struct {
	// Limit caps the number of records, 0 means the default
	Limit int
}

type ListPoolsOutput struct {
	Records []*models.PoolRecord
}

package pool

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicepool/internal/repositories/pool Repository

import (
	"context"

	"github.com/KirkDiggler/dicepool/internal/models"
)

// Repository defines the interface for dice pool persistence
type Repository interface {
	// SavePool persists a pool record
	SavePool(ctx context.Context, input *SavePoolInput) error

	// GetPool retrieves a pool record by ID
	GetPool(ctx context.Context, input *GetPoolInput) (*models.PoolRecord, error)

	// DeletePool removes a pool record
	DeletePool(ctx context.Context, input *DeletePoolInput) error

	// ListPools retrieves the most recently updated pools
	ListPools(ctx context.Context, input *ListPoolsInput) (*ListPoolsOutput, error)
}

package pool

import "context"

// Service defines the interface for dice pool operations
type Service interface {
	// CreatePool rolls and stores a new pool
	CreatePool(ctx context.Context, input *CreatePoolInput) (*CreatePoolOutput, error)

	// RollPool rolls every die of a stored pool again
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)

	// RerollPool rerolls the dice of a stored pool that match a criteria
	RerollPool(ctx context.Context, input *RerollPoolInput) (*RerollPoolOutput, error)

	// GetPool returns a stored pool and its evaluation
	GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error)

	// ListPools returns the most recently updated pools
	ListPools(ctx context.Context, input *ListPoolsInput) (*ListPoolsOutput, error)

	// DeletePool removes a stored pool
	DeletePool(ctx context.Context, input *DeletePoolInput) (*DeletePoolOutput, error)
}

package pool

// PoolError is a custom error type for dice pool errors
type PoolError string

// Error implements the error interface
func (e PoolError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilRoller       PoolError = "dice roller cannot be nil"
	ErrInvalidCount    PoolError = "dice count must be a positive integer"
	ErrUnknownCriteria PoolError = "unknown reroll criteria"
	ErrUnknownMode     PoolError = "unknown reroll mode"
	ErrInvalidFaces    PoolError = "invalid face values"
)

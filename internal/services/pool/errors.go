package pool

// ServiceError is a custom error type for pool service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPoolNotFound     ServiceError = "pool not found"
	ErrNilInput         ServiceError = "input cannot be nil"
	ErrMissingPoolID    ServiceError = "pool ID cannot be empty"
	ErrMissingCriteria  ServiceError = "reroll criteria cannot be nil"
	ErrRerollLimit      ServiceError = "reroll pass limit reached"
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilPoolRepo      ServiceError = "pool repository cannot be nil"
	ErrNilDiceRoller    ServiceError = "dice roller cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"
)

package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicepool/internal/dice Roller

// Roller produces a single die face
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing, 0 picks a random seed
	Seed int64
}

// defaultRoller is a Roller backed by math/rand
type defaultRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = entropySeed()
	}

	return &defaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *defaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// entropySeed seeds unseeded rollers from crypto/rand so two rollers created in
// the same nanosecond still roll differently. The clock is the fallback.
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

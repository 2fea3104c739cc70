package pool

import (
	"slices"

	"github.com/KirkDiggler/dicepool/internal/dice"
)

// Sides is the size of every die in a pool
const Sides = 10

// ReasonInitial tags the first history entry of every die
const ReasonInitial = "Initial"

// HistoryEntry records a value a die held and why it got it
type HistoryEntry struct {
	Value  int
	Reason string
}

// Die is a single ten-sided die and its audit trail.
//
// History is oldest first and never empty; its last entry always matches Value.
type Die struct {
	Value   int
	History []HistoryEntry

	// Frozen is reserved for rules that lock a die. Nothing here reads it.
	Frozen bool
}

// NewDie rolls a fresh die
func NewDie(roller dice.Roller) Die {
	v := roller.Roll(Sides)
	return Die{
		Value:   v,
		History: []HistoryEntry{{Value: v, Reason: ReasonInitial}},
	}
}

// Reroll returns a copy of the die with a fresh value appended to its history
func (d Die) Reroll(roller dice.Roller, reason string) Die {
	v := roller.Roll(Sides)

	history := make([]HistoryEntry, len(d.History), len(d.History)+1)
	copy(history, d.History)

	return Die{
		Value:   v,
		History: append(history, HistoryEntry{Value: v, Reason: reason}),
		Frozen:  d.Frozen,
	}
}

// Audit returns the history newest first
func (d Die) Audit() []HistoryEntry {
	out := slices.Clone(d.History)
	slices.Reverse(out)
	return out
}

// Rerolled reports whether the die has changed since it was first rolled
func (d Die) Rerolled() bool {
	return len(d.History) > 1
}

func (d Die) clone() Die {
	d.History = slices.Clone(d.History)
	return d
}

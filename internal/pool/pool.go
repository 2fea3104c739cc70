// Package pool implements the success dice pool: rolling a pool of ten-sided
// dice, counting successes, detecting botches and rerolling subsets of the
// pool while every die keeps its full history.
//
// Pools and dice are values. Every operation that changes a pool returns a
// new one and leaves its receiver untouched.
package pool

import (
	"github.com/KirkDiggler/dicepool/internal/dice"
)

// Options overrides the default rules of a new pool.
//
// A nil face set keeps the default; a non-nil one, even empty, replaces it.
// Stunt and Wound are taken as given without range checks.
type Options struct {
	// Success lists the faces that count as one success
	Success Faces

	// Double lists the faces that count as one extra success
	Double Faces

	// Stunt level, 0 to 3
	Stunt int

	// Wound penalty, -4 to 0
	Wound int
}

// Pool is an ordered set of dice plus the rules used to score them
type Pool struct {
	Dice    []Die
	Success Faces
	Double  Faces
	Stunt   int
	Wound   int
}

func defaultSuccess() Faces { return Faces{7, 8, 9, 10} }

func defaultDouble() Faces { return Faces{10} }

// New builds a pool from the default rules and the given overrides, then rolls count dice
func New(roller dice.Roller, count int, opts *Options) (Pool, error) {
	if count < 1 {
		return Pool{}, ErrInvalidCount
	}

	p := Pool{
		Success: defaultSuccess(),
		Double:  defaultDouble(),
	}
	if opts != nil {
		if opts.Success != nil {
			p.Success = opts.Success.clone()
		}
		if opts.Double != nil {
			p.Double = opts.Double.clone()
		}
		p.Stunt = opts.Stunt
		p.Wound = opts.Wound
	}

	return p.RollCount(roller, count)
}

// Roll rerolls the whole pool using its current dice count as the request.
//
// The stunt and wound adjustments apply again on top of a count that already
// includes them, so each call can grow or shrink the pool.
func (p Pool) Roll(roller dice.Roller) (Pool, error) {
	return p.RollCount(roller, len(p.Dice))
}

// RollCount replaces every die with count freshly rolled dice, adjusted for stunt and wound
func (p Pool) RollCount(roller dice.Roller, count int) (Pool, error) {
	if roller == nil {
		return Pool{}, ErrNilRoller
	}
	if count < 0 {
		return Pool{}, ErrInvalidCount
	}

	effective := count + p.WoundDicePenalty() + p.StuntDiceBonus()
	if effective < 0 {
		effective = 0
	}

	out := p.clone()
	out.Dice = make([]Die, effective)
	for i := range out.Dice {
		out.Dice[i] = NewDie(roller)
	}

	return out, nil
}

// StuntDiceBonus is the number of extra dice granted by the stunt level
func (p Pool) StuntDiceBonus() int {
	if p.Stunt >= 1 && p.Stunt <= 3 {
		return 2
	}
	return 0
}

// WoundDicePenalty is the number of dice added by wounds, never positive in normal play
func (p Pool) WoundDicePenalty() int {
	return p.Wound
}

// DieSuccess reports whether the die shows a success face
func (p Pool) DieSuccess(d Die) bool {
	return p.Success.Contains(d.Value)
}

// DieDouble reports whether the die shows a double success face
func (p Pool) DieDouble(d Die) bool {
	return p.Double.Contains(d.Value)
}

// AutomaticSuccessCount is the number of successes granted by stunt level 2 or 3
func (p Pool) AutomaticSuccessCount() int {
	return max(p.Stunt-1, 0)
}

// SuccessCount totals successes, doubles and automatic successes
func (p Pool) SuccessCount() int {
	total := p.AutomaticSuccessCount()
	for _, d := range p.Dice {
		if p.DieSuccess(d) {
			total++
		}
		if p.DieDouble(d) {
			total++
		}
	}
	return total
}

// Botch reports a 1 with no successes, unless the stunt level is 2 or more
func (p Pool) Botch() bool {
	if p.Stunt >= 2 {
		return false
	}

	hasOne := false
	for _, d := range p.Dice {
		if p.DieSuccess(d) {
			return false
		}
		if d.Value == 1 {
			hasOne = true
		}
	}
	return hasOne
}

// Values returns the face shown by each die in pool order
func (p Pool) Values() []int {
	out := make([]int, len(p.Dice))
	for i, d := range p.Dice {
		out[i] = d.Value
	}
	return out
}

func (p Pool) clone() Pool {
	out := Pool{
		Success: p.Success.clone(),
		Double:  p.Double.clone(),
		Stunt:   p.Stunt,
		Wound:   p.Wound,
	}
	if p.Dice != nil {
		out.Dice = make([]Die, len(p.Dice))
		for i, d := range p.Dice {
			out.Dice[i] = d.clone()
		}
	}
	return out
}

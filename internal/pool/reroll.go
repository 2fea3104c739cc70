package pool

import (
	"github.com/KirkDiggler/dicepool/internal/dice"
)

// Mode controls how many passes a reroll makes
type Mode int

const (
	// ModeOnce makes a single pass
	ModeOnce Mode = iota + 1

	// ModeUntilNone makes passes until no die matches the criteria.
	// With criteria matching every face it never returns.
	ModeUntilNone
)

// String returns the mode's name
func (m Mode) String() string {
	switch m {
	case ModeOnce:
		return "once"
	case ModeUntilNone:
		return "until_none"
	default:
		return "unknown"
	}
}

// Criteria selects which faces a reroll replaces.
// The only implementations are NotSuccess, NotTens and Values.
type Criteria interface {
	// faces resolves the criteria against the pool's rules
	faces(p Pool) Faces

	// reason is the history label for dice rerolled under the given mode
	reason(m Mode) string
}

// NotSuccess matches every face outside the pool's success set
type NotSuccess struct{}

func (NotSuccess) faces(p Pool) Faces { return p.Success.without() }

func (NotSuccess) reason(Mode) string { return "Reroll non successes" }

// NotTens matches faces 1 through 9
type NotTens struct{}

func (NotTens) faces(Pool) Faces { return Faces{Sides}.without() }

func (NotTens) reason(Mode) string { return "Reroll non 10s" }

// Values matches an explicit set of faces
type Values struct {
	Faces Faces
}

func (c Values) faces(Pool) Faces { return c.Faces }

func (c Values) reason(m Mode) string {
	if m == ModeUntilNone {
		return "Reroll until no " + c.Faces.String()
	}
	return "Reroll no " + c.Faces.String()
}

// Reroll replaces every die matching the criteria, once or until none match
func (p Pool) Reroll(roller dice.Roller, criteria Criteria, mode Mode) (Pool, error) {
	switch mode {
	case ModeOnce:
		return p.Pass(roller, criteria, mode)
	case ModeUntilNone:
		if err := validate(roller, criteria); err != nil {
			return Pool{}, err
		}
		out := p.clone()
		for len(out.Matching(criteria)) > 0 {
			out = out.pass(roller, criteria.faces(out), criteria.reason(mode))
		}
		return out, nil
	default:
		return Pool{}, ErrUnknownMode
	}
}

// Pass makes exactly one reroll pass, labelling history entries for the given mode.
// Callers that need a bound on ModeUntilNone loop over Pass themselves.
func (p Pool) Pass(roller dice.Roller, criteria Criteria, mode Mode) (Pool, error) {
	if mode != ModeOnce && mode != ModeUntilNone {
		return Pool{}, ErrUnknownMode
	}
	if err := validate(roller, criteria); err != nil {
		return Pool{}, err
	}
	return p.pass(roller, criteria.faces(p), criteria.reason(mode)), nil
}

// Matching returns the indexes of dice the criteria would reroll
func (p Pool) Matching(criteria Criteria) []int {
	if criteria == nil {
		return nil
	}

	faces := criteria.faces(p)
	var out []int
	for i, d := range p.Dice {
		if faces.Contains(d.Value) {
			out = append(out, i)
		}
	}
	return out
}

func (p Pool) pass(roller dice.Roller, faces Faces, reason string) Pool {
	out := p.clone()
	for i, d := range out.Dice {
		if faces.Contains(d.Value) {
			out.Dice[i] = d.Reroll(roller, reason)
		}
	}
	return out
}

func validate(roller dice.Roller, criteria Criteria) error {
	if roller == nil {
		return ErrNilRoller
	}
	if criteria == nil {
		return ErrUnknownCriteria
	}
	return nil
}

package pool

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFaces reads a comma separated list such as "7,8,9,10".
// An empty string yields a nil set. Faces outside [1, Sides] are rejected.
func ParseFaces(s string) (Faces, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make(Faces, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFaces, part)
		}
		if v < 1 || v > Sides {
			return nil, fmt.Errorf("%w: %d is not a face of a d%d", ErrInvalidFaces, v, Sides)
		}
		out = append(out, v)
	}
	return NewFaces(out...), nil
}

// ParseCriteria accepts "not_success", "not_10s" or a face list
func ParseCriteria(s string) (Criteria, error) {
	switch strings.TrimSpace(s) {
	case "not_success":
		return NotSuccess{}, nil
	case "not_10s":
		return NotTens{}, nil
	case "":
		return nil, ErrUnknownCriteria
	}

	faces, err := ParseFaces(s)
	if err != nil {
		return nil, err
	}
	return Values{Faces: faces}, nil
}

// ParseMode accepts "once" or "until_none"
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(s) {
	case "once":
		return ModeOnce, nil
	case "until_none":
		return ModeUntilNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

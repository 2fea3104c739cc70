package pool

import (
	"slices"
	"strconv"
	"strings"
)

// Faces is a set of die face values
type Faces []int

// NewFaces returns the values sorted ascending with duplicates removed
func NewFaces(values ...int) Faces {
	out := slices.Clone(values)
	slices.Sort(out)
	return Faces(slices.Compact(out))
}

// Contains reports whether v is in the set
func (f Faces) Contains(v int) bool {
	return slices.Contains(f, v)
}

// String renders the set as an ordered list, e.g. [3, 4, 5]
func (f Faces) String() string {
	normalized := NewFaces(f...)
	parts := make([]string, len(normalized))
	for i, v := range normalized {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// without returns every face of the die not in f
func (f Faces) without() Faces {
	out := make(Faces, 0, Sides)
	for v := 1; v <= Sides; v++ {
		if !f.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func (f Faces) clone() Faces {
	if f == nil {
		return nil
	}
	return slices.Clone(f)
}

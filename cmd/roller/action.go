package main

// unset marks an int flag left at its default, so 0 and negatives still reach the service
const unset = -1

type action int

const (
	actionUsage action = iota
	actionCreate
	actionRoll
	actionReroll
	actionShow
	actionList
)

// selection holds the flags that pick what the roller does
type selection struct {
	create   int
	rollID   string
	rerollID string
	showID   string
	list     bool
}

// pick returns the first requested action in flag order
func (s selection) pick() action {
	switch {
	case s.create != unset:
		return actionCreate
	case s.rollID != "":
		return actionRoll
	case s.rerollID != "":
		return actionReroll
	case s.showID != "":
		return actionShow
	case s.list:
		return actionList
	default:
		return actionUsage
	}
}

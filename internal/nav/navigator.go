// Package nav keeps track of which screen is active and how the app moved
// between screens.
//
// A Navigator is built from an ordered list of unique screen names. Order
// matters: it decides which screen is "previous" and "next", and whether a
// jump slides forward or backward. Any screen can jump straight to any other.
//
// Navigator is not safe for concurrent use. It lives on the UI event loop.
package nav

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder      = errors.New("screen order is empty")
	ErrDuplicateScreen = errors.New("duplicate screen name")
	ErrUnknownScreen   = errors.New("unknown screen")
)

// Listener is notified after every successful jump.
type Listener func(Transition)

type Navigator struct {
	order     []string
	index     map[string]int
	current   int
	listeners []Listener
}

// New returns a Navigator over order, starting at initial.
func New(order []string, initial string) (*Navigator, error) {
	if len(order) == 0 {
		return nil, ErrEmptyOrder
	}

	index := make(map[string]int, len(order))
	for i, name := range order {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateScreen, name)
		}
		index[name] = i
	}

	start, ok := index[initial]
	if !ok {
		return nil, fmt.Errorf("%w: default screen %q", ErrUnknownScreen, initial)
	}

	return &Navigator{
		order:   append([]string(nil), order...),
		index:   index,
		current: start,
	}, nil
}

// Current returns the active screen name.
func (n *Navigator) Current() string {
	return n.order[n.current]
}

// Screens returns a copy of the screen order.
func (n *Navigator) Screens() []string {
	return append([]string(nil), n.order...)
}

// Contains reports whether name is a known screen.
func (n *Navigator) Contains(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Position returns the index of name in the screen order, or -1.
func (n *Navigator) Position(name string) int {
	if i, ok := n.index[name]; ok {
		return i
	}
	return -1
}

// Subscribe registers l to receive every transition.
func (n *Navigator) Subscribe(l Listener) {
	if l != nil {
		n.listeners = append(n.listeners, l)
	}
}

// JumpTo makes target the current screen. Unknown targets are ignored and
// reported with ok == false. Jumping to the current screen is a forward
// transition.
func (n *Navigator) JumpTo(target string) (t Transition, ok bool) {
	to, ok := n.index[target]
	if !ok {
		return Transition{}, false
	}

	t = Transition{
		From:      n.order[n.current],
		To:        target,
		Direction: directionBetween(n.current, to),
	}
	n.current = to

	for _, l := range n.listeners {
		l(t)
	}
	return t, true
}

// Previous jumps one screen back. On the first screen it re-selects the
// first screen.
func (n *Navigator) Previous() (Transition, bool) {
	i := n.current
	if i > 0 {
		i--
	}
	return n.JumpTo(n.order[i])
}

// Next jumps one screen ahead. On the last screen it re-selects the last
// screen.
func (n *Navigator) Next() (Transition, bool) {
	i := n.current
	if i < len(n.order)-1 {
		i++
	}
	return n.JumpTo(n.order[i])
}

// Package memo provides a flat state table remembering search results.
package memo

import (
	"fmt"

	"github.com/go-megaman/levelsolver/internal/packed"
)

// Status is the visitation status of a state.
type Status uint8

const (
	// Unvisited states have never been entered.
	Unvisited Status = iota
	// InProgress states are on the current search path.
	InProgress
	// Done states hold a final value.
	Done
)

func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InProgress:
		return "in progress"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

type slot[V any] struct {
	status Status
	value  V
}

// Table maps every state of a course to its status and final value.
// Once a state is Done its value never changes.
type Table[V any] struct {
	slots []slot[V]
	size  int
}

// New returns a table able to hold numStates states.
func New[V any](numStates int) *Table[V] {
	return &Table[V]{slots: make([]slot[V], numStates)}
}

// Status returns the status of state k.
func (t *Table[V]) Status(k packed.State) Status { return t.slots[k].status }

// Load returns the value of state k and whether k is Done.
func (t *Table[V]) Load(k packed.State) (V, bool) {
	s := &t.slots[k]
	return s.value, s.status == Done
}

// Begin marks an unvisited state k as InProgress. It reports false if k
// was already entered.
func (t *Table[V]) Begin(k packed.State) bool {
	s := &t.slots[k]
	if s.status != Unvisited {
		return false
	}
	s.status = InProgress
	return true
}

// Finish stores v as the final value of state k.
// It panics if k is not InProgress.
func (t *Table[V]) Finish(k packed.State, v V) {
	s := &t.slots[k]
	if s.status != InProgress {
		panic(fmt.Sprintf("memo: finish of %s state %d", s.status, k))
	}
	s.status = Done
	s.value = v
	t.size++
}

// Size returns the number of Done states.
func (t *Table[V]) Size() int { return t.size }

// Cap returns the number of states the table holds.
func (t *Table[V]) Cap() int { return len(t.slots) }

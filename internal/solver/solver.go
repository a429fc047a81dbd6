// Package solver implements the level search.
//
// The search expands states (position, tick mod 60) depth first in the
// order R2 R1 W L1 L2 and memoizes the best continuation of every state the
// first time it is finalized. A state re-entered while it is still being
// expanded counts as a dead end. Branches deeper than the shortest solution
// found so far are cut, which makes memoized answers depend on the order in
// which states are first reached. The expansion runs on an explicit stack, so
// recursion depth is not limited by the goroutine stack.
package solver

import (
	"github.com/go-megaman/levelsolver/course"
	"github.com/go-megaman/levelsolver/internal/memo"
	"github.com/go-megaman/levelsolver/internal/packed"
	"github.com/go-megaman/levelsolver/move"
)

// Stats describes the work done by one search.
type Stats struct {
	// States is the number of states whose best continuation was finalized.
	States int
	// MaxDepth is the deepest state expansion that was attempted.
	MaxDepth int
}

// Result is the outcome of one search.
type Result struct {
	// Solved reports whether the goal was reached.
	Solved bool
	// Moves is the best move sequence when Solved.
	Moves []move.Move
	// Furthest is the highest position reached by the search.
	Furthest int
	Stats    Stats
}

type search struct {
	course   *course.Course
	goal     int
	furthest int
	bound    int // length of the shortest solution found so far
	maxDepth int
	memo     *memo.Table[entry]
	stack    []frame
}

func newSearch(c *course.Course) *search {
	numStates := packed.NumStates(c.Len())
	return &search{
		course: c,
		goal:   c.Goal(),
		bound:  numStates,
		memo:   memo.New[entry](numStates),
	}
}

// Search returns the best move sequence crossing c, or how far the search got.
// Every call uses its own search state, so concurrent calls are safe.
func Search(c *course.Course) Result {
	s := newSearch(c)
	best := s.run(0, 0)

	res := Result{
		Solved:   best.ok,
		Furthest: s.furthest,
		Stats:    Stats{States: s.memo.Size(), MaxDepth: s.maxDepth},
	}
	if best.ok {
		res.Moves = convertPathOut(best.path)
	}
	return res
}

// enter starts the expansion of state (position, tick) reached after depth
// moves. It returns the state's value and false if the value is known
// without expanding any move, otherwise it pushes a frame and returns true.
func (s *search) enter(position, tick, depth int) (entry, bool) {
	state := packed.Pack(position, tick)
	if !s.memo.Begin(state) {
		// done, or in progress on the current path (a cycle)
		e, _ := s.memo.Load(state)
		return e, false
	}

	s.maxDepth = max(s.maxDepth, depth)
	s.furthest = max(s.furthest, position)

	if depth > s.bound {
		s.memo.Finish(state, entry{})
		return entry{}, false
	}

	if position == s.goal {
		s.bound = min(s.bound, depth)
		e := entry{ok: true}
		s.memo.Finish(state, e)
		return e, false
	}

	s.stack = append(s.stack, frame{state: state, position: position, tick: tick, depth: depth})
	return entry{}, true
}

func (s *search) run(position, tick int) entry {
	if e, pushed := s.enter(position, tick, 0); !pushed {
		return e
	}

	for {
		top := len(s.stack) - 1
		f := &s.stack[top]

		if f.next == len(move.Order) {
			done := f.best
			s.memo.Finish(f.state, done)
			s.stack = s.stack[:top]
			if top == 0 {
				return done
			}
			s.stack[top-1].offer(done)
			continue
		}

		m := move.Order[f.next]
		f.next++

		position, tick := f.position+int(m), course.NextTick(f.tick)
		if !s.course.CanTraverse(position, tick) {
			continue
		}
		// enter may grow the stack; f must not be used after this point
		if child, pushed := s.enter(position, tick, f.depth+1); !pushed {
			s.stack[top].offer(child)
		}
	}
}

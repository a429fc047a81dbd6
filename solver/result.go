package solver

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/go-megaman/levelsolver/course"
	"github.com/go-megaman/levelsolver/move"
)

// ErrNoSolution is returned by Result.Moves for an Unreachable result.
var ErrNoSolution = errors.New("solver: no solution found")

// Kind tells the two shapes of a Result apart.
type Kind int

const (
	// Solved results carry the best move sequence.
	Solved Kind = iota + 1
	// Unreachable results carry how far the search got.
	Unreachable
)

func (k Kind) String() string {
	switch k {
	case Solved:
		return "solved"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Stats describes the work done by a search.
type Stats struct {
	// States is the number of distinct states evaluated.
	States int
	// MaxDepth is the deepest state expansion attempted.
	MaxDepth int
}

// Result is either Solved, holding a move sequence, or Unreachable,
// holding a progress value.
type Result struct {
	course   *course.Course
	kind     Kind
	moves    []move.Move
	progress int
	stats    Stats
}

// Kind returns Solved or Unreachable.
func (r *Result) Kind() Kind { return r.kind }

// Solved reports whether the goal can be reached.
func (r *Result) Solved() bool { return r.kind == Solved }

// Course returns the searched course.
func (r *Result) Course() *course.Course { return r.course }

// Moves returns a copy of the move sequence, one move per tick.
func (r *Result) Moves() ([]move.Move, error) {
	if r.kind != Solved {
		return nil, ErrNoSolution
	}
	return slices.Clone(r.moves), nil
}

// Progress returns one plus the furthest position reached. For a Solved
// result this is the course length.
func (r *Result) Progress() int { return r.progress }

// Tokens returns the translated move sequence, or "" if unreachable.
func (r *Result) Tokens() string {
	if r.kind != Solved {
		return ""
	}
	return move.Translate(r.moves)
}

// Stats returns search statistics.
func (r *Result) Stats() Stats { return r.stats }

func (r *Result) String() string {
	if r.kind != Solved {
		return fmt.Sprintf("unreachable (progress %d)", r.progress)
	}
	return move.Translate(r.moves)
}

type jsonResult struct {
	Spec     string      `json:"spec"`
	Result   string      `json:"result"`
	Moves    []move.Move `json:"moves,omitempty"`
	Tokens   string      `json:"tokens,omitempty"`
	Progress int         `json:"progress"`
	States   int         `json:"states"`
	MaxDepth int         `json:"max_depth"`
}

// MarshalJSON encodes the result as an object tagged by "result".
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonResult{
		Spec:     r.course.Spec(),
		Result:   r.kind.String(),
		Moves:    r.moves,
		Tokens:   r.Tokens(),
		Progress: r.progress,
		States:   r.stats.States,
		MaxDepth: r.stats.MaxDepth,
	})
}

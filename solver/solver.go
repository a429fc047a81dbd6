// Package solver finds the best sequence of moves across a level.
package solver

import (
	"github.com/go-megaman/levelsolver/course"
	isolver "github.com/go-megaman/levelsolver/internal/solver"
)

// Runner runs one search.
type Runner interface {
	Run() *Result
}

var _ Runner = (*solver)(nil)

type solver struct {
	course *course.Course
}

// New returns a Runner searching course c. Every Run starts from a fresh
// search state, so a Runner may be run repeatedly and concurrently.
func New(c *course.Course) Runner {
	return &solver{course: c}
}

func (s *solver) Run() *Result {
	res := isolver.Search(s.course)
	r := &Result{
		course:   s.course,
		progress: res.Furthest + 1,
		stats:    Stats(res.Stats),
	}
	if res.Solved {
		r.kind = Solved
		r.moves = res.Moves
	} else {
		r.kind = Unreachable
	}
	return r
}

// Solve parses spec and searches it. The only error is a
// *course.InvalidSpecError.
func Solve(spec string) (*Result, error) {
	c, err := course.Parse(spec)
	if err != nil {
		return nil, err
	}
	return New(c).Run(), nil
}

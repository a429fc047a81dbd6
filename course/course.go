// Package course decodes level specs into obstacle rows and answers
// whether an obstacle can be stood on at a given clock tick.
package course

import (
	"golang.org/x/exp/slices"
)

// TickWrapsAt is the clock period after which every obstacle pattern
// repeats: the least common multiple of all possible n+1 (2..6).
const TickWrapsAt = 60

// Obstacle is one decoded element of a level.
type Obstacle int

const (
	// Gap is never traversable.
	Gap Obstacle = -1
	// Checkpoint is always traversable.
	Checkpoint Obstacle = 0
	// MaxPeriod is the largest periodic obstacle value.
	MaxPeriod Obstacle = 5
)

// CanTraverse reports whether the obstacle can be landed on at tick.
// Callers pass the tick the move lands on, not the current one.
func (o Obstacle) CanTraverse(tick int) bool {
	switch {
	case o == Checkpoint:
		return true
	case o < Checkpoint:
		return false
	default:
		return (tick+1)%(int(o)+1) == 0
	}
}

// Rune returns the spec character encoding o. Checkpoints encode as 'x'.
func (o Obstacle) Rune() rune {
	switch o {
	case Gap:
		return '.'
	case Checkpoint:
		return 'x'
	default:
		return '0' + rune(o)
	}
}

// NextTick returns the tick following tick, modulo TickWrapsAt.
func NextTick(tick int) int { return (tick + 1) % TickWrapsAt }

// Course is a parsed level. It is immutable once parsed.
type Course struct {
	spec      string
	obstacles []Obstacle
}

// Parse validates spec and decodes it into a Course.
func Parse(spec string) (*Course, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	obstacles := make([]Obstacle, len(spec))
	for i := 0; i < len(spec); i++ {
		obstacles[i] = decode(spec[i])
	}
	return &Course{spec: spec, obstacles: obstacles}, nil
}

// MustParse is like Parse but panics on an invalid spec.
func MustParse(spec string) *Course {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func decode(ch byte) Obstacle {
	switch ch {
	case 'x':
		return Checkpoint
	case '.':
		return Gap
	default:
		return Obstacle(ch - '0')
	}
}

// Spec returns the spec the course was parsed from.
func (c *Course) Spec() string { return c.spec }

// Len returns the number of obstacles.
func (c *Course) Len() int { return len(c.obstacles) }

// Goal returns the index of the last obstacle.
func (c *Course) Goal() int { return len(c.obstacles) - 1 }

// At returns the obstacle at position i.
func (c *Course) At(i int) Obstacle { return c.obstacles[i] }

// Obstacles returns a copy of the decoded obstacle row.
func (c *Course) Obstacles() []Obstacle { return slices.Clone(c.obstacles) }

// CanTraverse reports whether position can be landed on at tick.
// Positions outside the course are never traversable.
func (c *Course) CanTraverse(position, tick int) bool {
	if position < 0 || position >= len(c.obstacles) {
		return false
	}
	return c.obstacles[position].CanTraverse(tick)
}

// String returns the spec.
func (c *Course) String() string { return c.spec }

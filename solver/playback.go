package solver

import (
	"strings"

	"github.com/go-megaman/levelsolver/course"
	"github.com/go-megaman/levelsolver/move"
)

// Frame is one animation tick of a move sequence played on a course.
type Frame struct {
	// Tick is the clock value at which the move starts.
	Tick int
	// From and To are the positions before and after the move.
	From, To int
	Move     move.Move
	// Open reports for every obstacle whether it is traversable on
	// arrival, that is at Tick+1.
	Open []bool
	// Final is set on the last frame of the sequence.
	Final bool

	obstacles []course.Obstacle
}

// Playback returns one frame per move of moves played from the start of c.
func Playback(c *course.Course, moves []move.Move) []Frame {
	obstacles := c.Obstacles()
	frames := make([]Frame, len(moves))
	position := 0
	for tick, m := range moves {
		open := make([]bool, len(obstacles))
		for i := range obstacles {
			open[i] = c.CanTraverse(i, tick+1)
		}
		frames[tick] = Frame{
			Tick:      tick,
			From:      position,
			To:        position + int(m),
			Move:      m,
			Open:      open,
			Final:     tick == len(moves)-1,
			obstacles: obstacles,
		}
		position += int(m)
	}
	return frames
}

// String draws the course after the move: '@' the agent, '#' checkpoints,
// '=' open and '_' closed obstacles, ' ' gaps.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(len(f.obstacles))
	for i, o := range f.obstacles {
		switch {
		case i == f.To:
			sb.WriteByte('@')
		case o == course.Checkpoint:
			sb.WriteByte('#')
		case o == course.Gap:
			sb.WriteByte(' ')
		case f.Open[i]:
			sb.WriteByte('=')
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

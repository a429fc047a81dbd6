// Package packed provides a compact representation of a search state.
package packed

import "github.com/go-megaman/levelsolver/course"

// State packs a position and a tick into a single table index.
type State uint32

// NumStates returns the number of distinct states of a course with n obstacles.
func NumStates(n int) int { return n * course.TickWrapsAt }

// Pack returns the state of agent standing at position at tick.
// tick must already be reduced modulo course.TickWrapsAt.
func Pack(position, tick int) State {
	return State(position*course.TickWrapsAt + tick)
}

// Unpack returns position and tick of p.
func Unpack(p State) (position, tick int) {
	return int(p) / course.TickWrapsAt, int(p) % course.TickWrapsAt
}

// Position returns the position of p.
func (p State) Position() int { return int(p) / course.TickWrapsAt }

// Tick returns the tick of p.
func (p State) Tick() int { return int(p) % course.TickWrapsAt }

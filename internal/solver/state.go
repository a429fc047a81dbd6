package solver

import (
	"github.com/go-megaman/levelsolver/internal/packed"
	"github.com/go-megaman/levelsolver/move"
)

// path is an immutable move sequence sharing its suffix with the
// continuation it was built from. The nil path is the empty sequence.
type path struct {
	move  move.Move
	next  *path
	len   int
	jumps int
}

func (p *path) length() int {
	if p == nil {
		return 0
	}
	return p.len
}

func (p *path) numJumps() int {
	if p == nil {
		return 0
	}
	return p.jumps
}

// prepend returns the path m followed by p.
func prepend(m move.Move, p *path) *path {
	q := &path{move: m, next: p, len: p.length() + 1, jumps: p.numJumps()}
	if m.IsJump() {
		q.jumps++
	}
	return q
}

// comparePaths orders paths the same way move.Compare orders slices.
func comparePaths(a, b *path) int {
	if la, lb := a.length(), b.length(); la != lb {
		return la - lb
	}
	if ja, jb := a.numJumps(), b.numJumps(); ja != jb {
		return ja - jb
	}
	pa, pb := 0, 0
	for ; a != nil; a, b = a.next, b.next {
		pa += int(a.move)
		pb += int(b.move)
		if pa != pb {
			return pb - pa
		}
	}
	return 0
}

// entry is the final value of a state: the best continuation to the goal,
// if any was found.
type entry struct {
	path *path
	ok   bool
}

// frame is a state being expanded on the explicit search stack.
type frame struct {
	state    packed.State
	position int
	tick     int
	depth    int
	next     int // index into move.Order of the next move to try
	best     entry
}

// offer considers child, the result of the move tried last, as a
// continuation from f.
func (f *frame) offer(child entry) {
	if !child.ok {
		return
	}
	candidate := prepend(move.Order[f.next-1], child.path)
	if !f.best.ok || comparePaths(candidate, f.best.path) < 0 {
		f.best = entry{path: candidate, ok: true}
	}
}

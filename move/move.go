// Package move defines per-tick moves, the ordering used to pick the best
// of two move sequences and the token encoding of a sequence.
package move

import (
	"errors"
	"fmt"
	"strings"
)

// Move is the position delta applied over one tick.
type Move int

// Moves.
const (
	L2 Move = -2
	L1 Move = -1
	W  Move = 0
	R1 Move = 1
	R2 Move = 2
)

// Order is the order in which moves are tried from a state.
var Order = [...]Move{R2, R1, W, L1, L2}

var tokens = [...]string{"L2", "L1", "W", "R1", "R2"}

// ErrUnknownToken is returned by Parse for input that is not a move token.
var ErrUnknownToken = errors.New("move: unknown token")

// Valid reports whether m is one of L2..R2.
func (m Move) Valid() bool { return m >= L2 && m <= R2 }

// IsJump reports whether m changes position.
func (m Move) IsJump() bool { return m != W }

// String returns the token of m. It panics if m is not valid.
func (m Move) String() string {
	if !m.Valid() {
		panic(fmt.Sprintf("move: invalid move %d", int(m)))
	}
	return tokens[m+2]
}

// Translate encodes moves as concatenated tokens, e.g. [2 -1 0] as "R2L1W".
// It panics on a move outside L2..R2.
func Translate(moves []Move) string {
	var sb strings.Builder
	sb.Grow(2 * len(moves))
	for _, m := range moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Parse decodes a token string produced by Translate.
func Parse(s string) ([]Move, error) {
	moves := []Move{}
	for i := 0; i < len(s); {
		m, n, ok := nextToken(s[i:])
		if !ok {
			return nil, fmt.Errorf("%w at offset %d of %q", ErrUnknownToken, i, s)
		}
		moves = append(moves, m)
		i += n
	}
	return moves, nil
}

func nextToken(s string) (Move, int, bool) {
	if s[0] == 'W' {
		return W, 1, true
	}
	if len(s) < 2 {
		return 0, 0, false
	}
	for i, tok := range tokens {
		if s[:2] == tok {
			return Move(i - 2), 2, true
		}
	}
	return 0, 0, false
}

// Jumps returns the number of moves that change position.
func Jumps(moves []Move) int {
	n := 0
	for _, m := range moves {
		if m.IsJump() {
			n++
		}
	}
	return n
}

// Displacement returns the sum of moves.
func Displacement(moves []Move) int {
	d := 0
	for _, m := range moves {
		d += int(m)
	}
	return d
}

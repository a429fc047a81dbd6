package solver

import "github.com/go-megaman/levelsolver/move"

func convertPathOut(p *path) []move.Move {
	moves := make([]move.Move, 0, p.length())
	for ; p != nil; p = p.next {
		moves = append(moves, p.move)
	}
	return moves
}

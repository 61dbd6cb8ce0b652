// Package rules decides move legality, jump resolution and the win condition.
package rules

import "github.com/zeusync/snakeladder/internal/core/board"

// Rules is consulted by the engine once per turn.
type Rules interface {
	// IsLegalMove reports whether a roll may be applied from pos.
	IsLegalMove(pos, roll, size int) bool
	// ResolveMove returns the cell the token finally rests on.
	ResolveMove(pos, roll int, b *board.Board) int
	// IsWin reports whether pos is the winning cell.
	IsWin(pos, size int) bool
}

// Standard implements the exact-roll rule with a single jump per move.
type Standard struct{}

var _ Rules = Standard{}

func (Standard) IsLegalMove(pos, roll, size int) bool {
	return pos+roll <= size
}

// ResolveMove follows at most one snake or ladder: the destination of a jump is
// not checked again.
func (Standard) ResolveMove(pos, roll int, b *board.Board) int {
	landed := pos + roll
	if e, ok := b.EntityAt(landed); ok {
		return e.End
	}
	return landed
}

func (Standard) IsWin(pos, size int) bool {
	return pos == size
}

package game

import (
	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/dice"
	"github.com/zeusync/snakeladder/internal/core/setup"
)

// StandardDimension is the side of the traditional board.
const StandardDimension = 10

// NewStandard builds a game on the traditional 10x10 layout.
func NewStandard(d dice.Dice, opts ...Option) *Game {
	g := New(board.New(StandardDimension), d, opts...)
	setup.NewStandard(g.log).Populate(g.board)
	return g
}

// NewRandom builds a game on a dimension×dimension board with a randomized
// layout drawn from src.
func NewRandom(dimension int, difficulty setup.Difficulty, src setup.Source, d dice.Dice, opts ...Option) *Game {
	g := New(board.New(dimension), d, opts...)
	setup.NewRandomized(difficulty, src, g.log).Populate(g.board)
	return g
}

// NewCustom builds a game on a dimension×dimension board populated by s.
func NewCustom(dimension int, s setup.Strategy, d dice.Dice, opts ...Option) *Game {
	g := New(board.New(dimension), d, opts...)
	s.Populate(g.board)
	return g
}

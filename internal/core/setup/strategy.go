// Package setup populates boards with snakes and ladders.
package setup

import (
	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
)

// Strategy fills a board in place. Strategies never fail: a layout that does
// not fit the board is logged and skipped, leaving the board under-populated.
type Strategy interface {
	Populate(b *board.Board)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(b *board.Board)

func (f StrategyFunc) Populate(b *board.Board) { f(b) }

// Source is the random generator used by the randomized strategies.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// minRandomCells is the smallest board with a valid random range: snakes need
// a start of at least 10 and ladders a start at most cells-10.
const minRandomCells = 11

// orNop swaps an untyped nil for the no-op logger. A typed nil such as a
// nil *log.Logger is passed through unchanged.
func orNop(l log.Log) log.Log {
	if l == nil {
		return log.Nop()
	}
	return l
}

// place builds an entity with the validating constructors and adds it. It
// returns false when the span is malformed or the start is taken. Starts stop
// one short of the last cell: an entity there would make the game unwinnable.
func place(b *board.Board, l log.Log, kind board.Kind, span Span) bool {
	if span.Start < 1 || span.Start >= b.Size() || span.End < 1 || span.End > b.Size() {
		l.Warn("entity outside the board, skipped",
			log.Stringer("kind", kind),
			log.Int("start", span.Start),
			log.Int("end", span.End),
			log.Int("cells", b.Size()),
		)
		return false
	}

	var (
		e   board.Entity
		err error
	)
	switch kind {
	case board.KindSnake:
		e, err = board.NewSnake(span.Start, span.End)
	default:
		e, err = board.NewLadder(span.Start, span.End)
	}
	if err != nil {
		l.Warn("invalid entity configuration, skipped", log.Error(err))
		return false
	}

	if !b.Place(e) {
		l.Debug("start cell occupied, skipped", log.Stringer("entity", e))
		return false
	}
	return true
}

// randomSnake draws a snake with start in [10, cells-1] and end in [1, start-1].
func randomSnake(src Source, cells int) Span {
	start := src.IntN(cells-10) + 10
	end := src.IntN(start-1) + 1
	return Span{Start: start, End: end}
}

// randomLadder draws a ladder with start in [1, cells-10] and end in
// [start+1, cells]. Callers reject ends equal to cells.
func randomLadder(src Source, cells int) Span {
	start := src.IntN(cells-10) + 1
	end := src.IntN(cells-start) + start + 1
	return Span{Start: start, End: end}
}

// freeStarts counts unoccupied cells in [lo, hi].
func freeStarts(b *board.Board, lo, hi int) int {
	n := 0
	for c := lo; c <= hi; c++ {
		if b.CanPlace(c) {
			n++
		}
	}
	return n
}

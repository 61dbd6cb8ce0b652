package setup

import (
	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
)

// maxPlacementAttempts bounds the retries for one slot of a randomized layout.
const maxPlacementAttempts = 50

// Randomized fills roughly a tenth of the board, choosing snake or ladder per
// slot by the difficulty's snake probability. Slots that find no free start
// within maxPlacementAttempts are dropped.
type Randomized struct {
	difficulty Difficulty
	src        Source
	log        log.Log
}

var _ Strategy = (*Randomized)(nil)

func NewRandomized(d Difficulty, src Source, l log.Log) *Randomized {
	return &Randomized{difficulty: d, src: src, log: orNop(l)}
}

func (r *Randomized) Difficulty() Difficulty {
	return r.difficulty
}

func (r *Randomized) Populate(b *board.Board) {
	cells := b.Size()
	if cells < minRandomCells {
		r.log.Warn("board too small for a randomized layout",
			log.Int("cells", cells),
			log.Int("min", minRandomCells),
		)
		return
	}

	p := r.difficulty.SnakeProbability()
	slots := cells / 10
	skipped := 0
	for i := 0; i < slots; i++ {
		var ok bool
		if r.src.Float64() < p {
			ok = r.trySnake(b, cells)
		} else {
			ok = r.tryLadder(b, cells)
		}
		if !ok {
			skipped++
		}
	}

	r.log.Debug("randomized layout placed",
		log.Stringer("difficulty", r.difficulty),
		log.Int("slots", slots),
		log.Int("skipped", skipped),
	)
}

func (r *Randomized) trySnake(b *board.Board, cells int) bool {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		span := randomSnake(r.src, cells)
		if b.CanPlace(span.Start) {
			return place(b, r.log, board.KindSnake, span)
		}
	}
	return false
}

func (r *Randomized) tryLadder(b *board.Board, cells int) bool {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		span := randomLadder(r.src, cells)
		if b.CanPlace(span.Start) && span.End < cells {
			return place(b, r.log, board.KindLadder, span)
		}
	}
	return false
}

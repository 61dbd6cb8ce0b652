package setup

import (
	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
)

// CustomCount places a caller-chosen number of snakes and ladders. With random
// placement it draws spans until both counts are met; otherwise it places the
// spans registered with AddSnake and AddLadder.
type CustomCount struct {
	snakes  int
	ladders int
	random  bool

	snakeSpans  []Span
	ladderSpans []Span

	src Source
	log log.Log
}

var _ Strategy = (*CustomCount)(nil)

// NewCustomCount returns a strategy for the given counts. src is only used
// with random placement and may be nil otherwise.
func NewCustomCount(snakes, ladders int, randomPlacement bool, src Source, l log.Log) *CustomCount {
	return &CustomCount{
		snakes:  max(snakes, 0),
		ladders: max(ladders, 0),
		random:  randomPlacement,
		src:     src,
		log:     orNop(l),
	}
}

func (c *CustomCount) AddSnake(start, end int) *CustomCount {
	c.snakeSpans = append(c.snakeSpans, Span{Start: start, End: end})
	return c
}

func (c *CustomCount) AddLadder(start, end int) *CustomCount {
	c.ladderSpans = append(c.ladderSpans, Span{Start: start, End: end})
	return c
}

func (c *CustomCount) Populate(b *board.Board) {
	if c.random {
		c.populateRandom(b)
		return
	}
	for _, span := range c.snakeSpans {
		place(b, c.log, board.KindSnake, span)
	}
	for _, span := range c.ladderSpans {
		place(b, c.log, board.KindLadder, span)
	}
}

func (c *CustomCount) populateRandom(b *board.Board) {
	cells := b.Size()
	if cells < minRandomCells {
		c.log.Warn("board too small for random placement",
			log.Int("cells", cells),
			log.Int("min", minRandomCells),
		)
		return
	}

	snakes := c.clamp(b, board.KindSnake, c.snakes, freeStarts(b, 10, cells-1))
	for placed := 0; placed < snakes; {
		span := randomSnake(c.src, cells)
		if b.CanPlace(span.Start) && place(b, c.log, board.KindSnake, span) {
			placed++
		}
	}

	ladders := c.clamp(b, board.KindLadder, c.ladders, freeStarts(b, 1, cells-10))
	for placed := 0; placed < ladders; {
		span := randomLadder(c.src, cells)
		if b.CanPlace(span.Start) && span.End < cells && place(b, c.log, board.KindLadder, span) {
			placed++
		}
	}
}

// clamp caps a requested count at the free start cells left for that kind, so
// the unbounded draw loop always terminates.
func (c *CustomCount) clamp(b *board.Board, kind board.Kind, want, capacity int) int {
	if want <= capacity {
		return want
	}
	c.log.Warn("not enough free cells for requested entities",
		log.Stringer("kind", kind),
		log.Int("requested", want),
		log.Int("placed", capacity),
		log.Int("cells", b.Size()),
	)
	return capacity
}

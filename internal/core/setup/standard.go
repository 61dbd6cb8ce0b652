package setup

import (
	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
)

// StandardCells is the only board size the canonical layout fits.
const StandardCells = 100

var (
	standardSnakes = []Span{
		{99, 54}, {95, 75}, {92, 88}, {89, 68}, {74, 53},
		{64, 60}, {62, 19}, {49, 11}, {46, 25}, {16, 6},
	}
	standardLadders = []Span{
		{2, 38}, {7, 14}, {8, 31}, {15, 26}, {21, 42}, {28, 84},
		{36, 44}, {51, 67}, {71, 91}, {78, 98}, {87, 94},
	}
)

// Standard places the traditional 10x10 layout.
type Standard struct {
	log log.Log
}

var _ Strategy = (*Standard)(nil)

func NewStandard(l log.Log) *Standard {
	return &Standard{log: orNop(l)}
}

func (s *Standard) Populate(b *board.Board) {
	if b.Size() != StandardCells {
		s.log.Warn("standard layout supports only a 10x10 board",
			log.Int("cells", b.Size()),
			log.Int("want", StandardCells),
		)
		return
	}
	for _, span := range standardSnakes {
		place(b, s.log, board.KindSnake, span)
	}
	for _, span := range standardLadders {
		place(b, s.log, board.KindLadder, span)
	}
}

// Package board holds the cell grid and the snakes and ladders placed on it.
package board

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/snakeladder/pkg/generic"
	"github.com/zeusync/snakeladder/pkg/sequence"
)

// Simulations fingerprint every board they build.
var digests = generic.NewPool(xxhash.New, (*xxhash.Digest).Reset)

// Board is a size×size grid of cells numbered 1..Size(). Entities are keyed by
// their start cell and are only added during setup; there is no removal.
type Board struct {
	dimension int
	cells     int
	byStart   map[int]Entity
	order     []int
}

func New(dimension int) *Board {
	if dimension < 0 {
		dimension = 0
	}
	return &Board{
		dimension: dimension,
		cells:     dimension * dimension,
		byStart:   make(map[int]Entity),
	}
}

// Size returns the total cell count, which is also the winning cell.
func (b *Board) Size() int {
	return b.cells
}

// Dimension returns the side length the board was created with.
func (b *Board) Dimension() int {
	return b.dimension
}

// CanPlace reports whether no entity starts at cell.
func (b *Board) CanPlace(cell int) bool {
	_, taken := b.byStart[cell]
	return !taken
}

// Place adds e when its start cell is free and reports whether it did.
// An occupied start is a silent no-op so setup code can probe and retry.
func (b *Board) Place(e Entity) bool {
	if !b.CanPlace(e.Start) {
		return false
	}
	b.byStart[e.Start] = e
	b.order = append(b.order, e.Start)
	return true
}

func (b *Board) EntityAt(cell int) (Entity, bool) {
	e, ok := b.byStart[cell]
	return e, ok
}

// Entities returns every entity in placement order.
func (b *Board) Entities() []Entity {
	out := make([]Entity, len(b.order))
	for i, start := range b.order {
		out[i] = b.byStart[start]
	}
	return out
}

func (b *Board) Snakes() []Entity {
	return sequence.From(b.Entities()).Filter(Entity.IsSnake).Collect()
}

func (b *Board) Ladders() []Entity {
	return sequence.From(b.Entities()).Filter(Entity.IsLadder).Collect()
}

// Summary describes the populated board.
type Summary struct {
	Cells   int
	Snakes  int
	Ladders int
}

func (b *Board) Summary() Summary {
	all := sequence.From(b.Entities())
	return Summary{
		Cells:   b.cells,
		Snakes:  all.Filter(Entity.IsSnake).Count(),
		Ladders: all.Filter(Entity.IsLadder).Count(),
	}
}

// Fingerprint hashes the cell count and the ordered layout. Two boards built by
// the same strategy from the same seed share a fingerprint.
func (b *Board) Fingerprint() uint64 {
	h := digests.Get()
	defer digests.Put(h)
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	write(b.cells)
	for _, e := range b.Entities() {
		write(int(e.Kind))
		write(e.Start)
		write(e.End)
	}
	return h.Sum64()
}

// String renders the layout: snakes first, then ladders.
func (b *Board) String() string {
	var sb strings.Builder
	s := b.Summary()
	fmt.Fprintf(&sb, "Total cells: %d\n", s.Cells)
	fmt.Fprintf(&sb, "Snakes: %d\n", s.Snakes)
	for _, e := range b.Snakes() {
		fmt.Fprintf(&sb, "  %d -> %d\n", e.Start, e.End)
	}
	fmt.Fprintf(&sb, "Ladders: %d\n", s.Ladders)
	for _, e := range b.Ladders() {
		fmt.Fprintf(&sb, "  %d -> %d\n", e.Start, e.End)
	}
	return sb.String()
}

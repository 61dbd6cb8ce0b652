package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSnake  = errors.New("snake must end below its start")
	ErrInvalidLadder = errors.New("ladder must end above its start")
)

// Kind tags an Entity as a snake or a ladder.
type Kind uint8

const (
	KindSnake Kind = iota + 1
	KindLadder
)

func (k Kind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	case KindLadder:
		return "ladder"
	default:
		return "unknown"
	}
}

// Entity is a snake or ladder spanning two cells. Landing on Start moves the
// token to End.
type Entity struct {
	Kind  Kind
	Start int
	End   int
}

// NewSnake returns a snake from start down to end.
func NewSnake(start, end int) (Entity, error) {
	if end >= start {
		return Entity{}, fmt.Errorf("%w: %d -> %d", ErrInvalidSnake, start, end)
	}
	return Entity{Kind: KindSnake, Start: start, End: end}, nil
}

// NewLadder returns a ladder from start up to end.
func NewLadder(start, end int) (Entity, error) {
	if end <= start {
		return Entity{}, fmt.Errorf("%w: %d -> %d", ErrInvalidLadder, start, end)
	}
	return Entity{Kind: KindLadder, Start: start, End: end}, nil
}

func (e Entity) IsSnake() bool  { return e.Kind == KindSnake }
func (e Entity) IsLadder() bool { return e.Kind == KindLadder }

func (e Entity) String() string {
	return fmt.Sprintf("%s %d -> %d", e.Kind, e.Start, e.End)
}

// Package dice implements the dice the engine rolls each turn.
package dice

import (
	"errors"
	"fmt"
)

// StandardFaces is the face count used in regular play.
const StandardFaces = 6

// ErrInvalidFaces indicates a die was configured with fewer than two faces.
var ErrInvalidFaces = errors.New("dice must have at least 2 faces")

// Dice produces one face value per roll.
type Dice interface {
	Roll() int
}

// Source is the random generator a Uniform die draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Uniform is a die whose rolls are independent and uniform over [1, faces].
type Uniform struct {
	faces int
	src   Source
}

var _ Dice = (*Uniform)(nil)

func New(faces int, src Source) (*Uniform, error) {
	if faces < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFaces, faces)
	}
	if src == nil {
		return nil, errors.New("dice source is required")
	}
	return &Uniform{faces: faces, src: src}, nil
}

func (d *Uniform) Roll() int {
	return d.src.IntN(d.faces) + 1
}

func (d *Uniform) Faces() int {
	return d.faces
}

// Scripted replays a fixed sequence of values, wrapping around at the end.
// It is meant for tests and replays.
type Scripted struct {
	values []int
	next   int
}

var _ Dice = (*Scripted)(nil)

func NewScripted(values ...int) *Scripted {
	if len(values) == 0 {
		values = []int{1}
	}
	return &Scripted{values: values}
}

func (d *Scripted) Roll() int {
	v := d.values[d.next%len(d.values)]
	d.next++
	return v
}

// Rolled returns how many values have been handed out.
func (d *Scripted) Rolled() int {
	return d.next
}

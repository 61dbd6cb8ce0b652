package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSnake(t *testing.T, start, end int) Entity {
	t.Helper()
	e, err := NewSnake(start, end)
	require.NoError(t, err)
	return e
}

func mustLadder(t *testing.T, start, end int) Entity {
	t.Helper()
	e, err := NewLadder(start, end)
	require.NoError(t, err)
	return e
}

func TestEntityConstructors(t *testing.T) {
	s, err := NewSnake(62, 19)
	require.NoError(t, err)
	assert.Equal(t, Entity{Kind: KindSnake, Start: 62, End: 19}, s)
	assert.True(t, s.IsSnake())
	assert.Equal(t, "snake 62 -> 19", s.String())

	l, err := NewLadder(2, 38)
	require.NoError(t, err)
	assert.True(t, l.IsLadder())

	tcs := []struct {
		name  string
		build func() (Entity, error)
		want  error
	}{
		{"snake going up", func() (Entity, error) { return NewSnake(10, 20) }, ErrInvalidSnake},
		{"snake flat", func() (Entity, error) { return NewSnake(10, 10) }, ErrInvalidSnake},
		{"ladder going down", func() (Entity, error) { return NewLadder(20, 10) }, ErrInvalidLadder},
		{"ladder flat", func() (Entity, error) { return NewLadder(10, 10) }, ErrInvalidLadder},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestBoardSize(t *testing.T) {
	b := New(10)
	assert.Equal(t, 100, b.Size())
	assert.Equal(t, 10, b.Dimension())
	assert.Equal(t, 49, New(7).Size())
}

func TestPlaceIsWriteOnce(t *testing.T) {
	b := New(10)
	require.True(t, b.CanPlace(62))

	assert.True(t, b.Place(mustSnake(t, 62, 19)))
	assert.False(t, b.CanPlace(62))

	// a second entity at the same start is ignored
	assert.False(t, b.Place(mustLadder(t, 62, 90)))
	assert.False(t, b.CanPlace(62))

	got, ok := b.EntityAt(62)
	require.True(t, ok)
	assert.Equal(t, KindSnake, got.Kind)
	assert.Equal(t, 19, got.End)

	_, ok = b.EntityAt(63)
	assert.False(t, ok)
}

func TestEntitiesKeepPlacementOrder(t *testing.T) {
	b := New(10)
	b.Place(mustLadder(t, 2, 38))
	b.Place(mustSnake(t, 99, 54))
	b.Place(mustLadder(t, 7, 14))
	b.Place(mustSnake(t, 16, 6))

	assert.Equal(t, []int{2, 99, 7, 16}, starts(b.Entities()))
	assert.Equal(t, []int{99, 16}, starts(b.Snakes()))
	assert.Equal(t, []int{2, 7}, starts(b.Ladders()))
	assert.Equal(t, Summary{Cells: 100, Snakes: 2, Ladders: 2}, b.Summary())

	out := b.String()
	assert.Contains(t, out, "Total cells: 100")
	assert.Contains(t, out, "Snakes: 2\n  99 -> 54\n  16 -> 6\n")
	assert.Contains(t, out, "Ladders: 2\n  2 -> 38\n  7 -> 14\n")
}

func TestFingerprint(t *testing.T) {
	build := func() *Board {
		b := New(10)
		b.Place(mustSnake(t, 62, 19))
		b.Place(mustLadder(t, 2, 38))
		return b
	}
	assert.Equal(t, build().Fingerprint(), build().Fingerprint())

	other := build()
	other.Place(mustLadder(t, 7, 14))
	assert.NotEqual(t, build().Fingerprint(), other.Fingerprint())
	assert.NotEqual(t, New(10).Fingerprint(), New(9).Fingerprint())
}

func starts(es []Entity) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.Start
	}
	return out
}

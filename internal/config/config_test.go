package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/dice"
	"github.com/zeusync/snakeladder/internal/core/game"
	"github.com/zeusync/snakeladder/internal/core/setup"
	"github.com/zeusync/snakeladder/pkg/random"
)

const customYAML = `
board:
  size: 10
  layout: custom
  snake_spans:
    - {start: 62, end: 19}
    - {start: 16, end: 6}
  ladder_spans:
    - {start: 2, end: 38}
dice:
  faces: 8
players: [ana, bo, cy]
seed: 77
log:
  level: debug
  encoding: json
`

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, LayoutStandard, c.Board.Layout)
	assert.Equal(t, dice.StandardFaces, c.Dice.Faces)
}

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(customYAML))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, LayoutCustom, c.Board.Layout)
	assert.Equal(t, []setup.Span{{Start: 62, End: 19}, {Start: 16, End: 6}}, c.Board.SnakeSpans)
	assert.Equal(t, 8, c.Dice.Faces)
	assert.Equal(t, []string{"ana", "bo", "cy"}, c.Players)
	assert.EqualValues(t, 77, c.Seed)
	assert.Equal(t, "debug", c.Log.Level)

	b := board.New(c.Board.Size)
	c.Strategy(random.New(c.Seed), nil).Populate(b)
	assert.Equal(t, board.Summary{Cells: 100, Snakes: 2, Ladders: 1}, b.Summary())
}

func TestLoadYAMLDifficulty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader("board: {size: 12, layout: random, difficulty: hard}\n"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, setup.Hard, c.Board.Difficulty)
	// unspecified sections keep their defaults
	assert.Equal(t, Default().Players, c.Players)

	s, ok := c.Strategy(random.New(1), nil).(*setup.Randomized)
	require.True(t, ok)
	assert.Equal(t, setup.Hard, s.Difficulty())

	_, err = LoadYAML(strings.NewReader("board: {difficulty: brutal}\n"))
	assert.Error(t, err)
}

func TestSpansAcceptPairs(t *testing.T) {
	doc := `
board:
  layout: custom
  snake_spans:
    - [62, 19]
    - {start: 16, end: 6}
  ladder_spans: [[2, 38], [95, 100]]
`
	c, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []setup.Span{{Start: 62, End: 19}, {Start: 16, End: 6}}, c.Board.SnakeSpans)
	assert.Equal(t, []setup.Span{{Start: 2, End: 38}, {Start: 95, End: 100}}, c.Board.LadderSpans)

	c, err = LoadJSON(strings.NewReader(`{"board":{"layout":"custom","snake_spans":[[62,19],{"start":16,"end":6}]}}`))
	require.NoError(t, err)
	assert.Equal(t, []setup.Span{{Start: 62, End: 19}, {Start: 16, End: 6}}, c.Board.SnakeSpans)

	_, err = LoadYAML(strings.NewReader("board: {snake_spans: [[62, 19, 3]]}\n"))
	assert.ErrorContains(t, err, "span needs [start, end]")
	_, err = LoadJSON(strings.NewReader(`{"board":{"ladder_spans":[[2]]}}`))
	assert.ErrorContains(t, err, "span needs [start, end]")
}

func TestLoadEmptyDocumentKeepsDefaults(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadJSONAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"board":{"size":10,"layout":"random","difficulty":"easy"},"players":["a","b"]}`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, LayoutRandom, c.Board.Layout)
	assert.Equal(t, setup.Easy, c.Board.Difficulty)
	assert.Equal(t, []string{"a", "b"}, c.Players)

	yamlPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(customYAML), 0o600))
	c, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, LayoutCustom, c.Board.Layout)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SNL_SEED", "12345")
	t.Setenv("SNL_PLAYERS", "x,y,z")
	t.Setenv("SNL_DICE_FACES", "12")
	t.Setenv("SNL_LOG_LEVEL", "warn")

	c := Default()
	require.NoError(t, ApplyEnv(&c))
	assert.EqualValues(t, 12345, c.Seed)
	assert.Equal(t, []string{"x", "y", "z"}, c.Players)
	assert.Equal(t, 12, c.Dice.Faces)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, LayoutStandard, c.Board.Layout)

	t.Setenv("SNL_SEED", "not-a-number")
	assert.Error(t, ApplyEnv(&c))
}

func TestValidateCollectsErrors(t *testing.T) {
	c := Config{
		Board:   BoardConfig{Size: 7, Layout: LayoutStandard},
		Dice:    DiceConfig{Faces: 1},
		Players: []string{"ana", "ana", " "},
		Log:     LogConfig{Level: "loud", Encoding: "xml"},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, dice.ErrInvalidFaces))

	msg := err.Error()
	for _, want := range []string{
		"standard layout needs board size 10",
		"duplicate player name",
		"player names must not be empty",
		"unknown log level",
		"unknown log encoding",
	} {
		assert.Contains(t, msg, want)
	}

	c = Default()
	c.Players = []string{"solo"}
	assert.ErrorIs(t, c.Validate(), game.ErrNotEnoughPlayers)

	c = Default()
	c.Board.Layout = "spiral"
	assert.ErrorContains(t, c.Validate(), "unknown board layout")
}

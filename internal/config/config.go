// Package config describes how a game is assembled: board layout, dice,
// players, seed and logging.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/snakeladder/internal/core/dice"
	"github.com/zeusync/snakeladder/internal/core/game"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
	"github.com/zeusync/snakeladder/internal/core/setup"
)

// Layout names a board setup strategy.
type Layout string

const (
	LayoutStandard Layout = "standard"
	LayoutRandom   Layout = "random"
	LayoutCustom   Layout = "custom"
)

var ErrInvalidConfig = errors.New("invalid game configuration")

type Config struct {
	Board   BoardConfig `json:"board" yaml:"board"`
	Dice    DiceConfig  `json:"dice" yaml:"dice"`
	Players []string    `json:"players" yaml:"players"`
	// Seed fixes the random stream; zero draws a fresh seed at startup.
	Seed uint64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	Log  LogConfig `json:"log" yaml:"log"`
}

type BoardConfig struct {
	Size            int              `json:"size" yaml:"size"`
	Layout          Layout           `json:"layout" yaml:"layout"`
	Difficulty      setup.Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Snakes          int              `json:"snakes,omitempty" yaml:"snakes,omitempty"`
	Ladders         int              `json:"ladders,omitempty" yaml:"ladders,omitempty"`
	RandomPlacement bool             `json:"random_placement,omitempty" yaml:"random_placement,omitempty"`
	SnakeSpans      []setup.Span     `json:"snake_spans,omitempty" yaml:"snake_spans,omitempty"`
	LadderSpans     []setup.Span     `json:"ladder_spans,omitempty" yaml:"ladder_spans,omitempty"`
}

type DiceConfig struct {
	Faces int `json:"faces" yaml:"faces"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// Default is the traditional two-player game.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:       game.StandardDimension,
			Layout:     LayoutStandard,
			Difficulty: setup.Medium,
		},
		Dice:    DiceConfig{Faces: dice.StandardFaces},
		Players: []string{"Player 1", "Player 2"},
		Log:     LogConfig{Level: "info", Encoding: string(log.EncodingConsole)},
	}
}

// LoadYAML decodes a YAML document on top of Default.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	return c, nil
}

// LoadJSON decodes a JSON document on top of Default.
func LoadJSON(r io.Reader) (Config, error) {
	c := Default()
	if err := json.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}
	return c, nil
}

// LoadFile picks the decoder from the file extension (.json, else YAML).
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

// envOverlay lists the settings that may come from the environment. It is
// pre-filled from the config so unset variables keep their current values.
type envOverlay struct {
	Seed        uint64   `env:"SNL_SEED"`
	Players     []string `env:"SNL_PLAYERS" envSeparator:","`
	Faces       int      `env:"SNL_DICE_FACES"`
	LogLevel    string   `env:"SNL_LOG_LEVEL"`
	LogEncoding string   `env:"SNL_LOG_ENCODING"`
}

// ApplyEnv overlays SNL_* environment variables onto c.
func ApplyEnv(c *Config) error {
	o := envOverlay{
		Seed:        c.Seed,
		Players:     c.Players,
		Faces:       c.Dice.Faces,
		LogLevel:    c.Log.Level,
		LogEncoding: c.Log.Encoding,
	}
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Seed = o.Seed
	c.Players = o.Players
	c.Dice.Faces = o.Faces
	c.Log.Level = o.LogLevel
	c.Log.Encoding = o.LogEncoding
	return nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Size < 1 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %d", c.Board.Size))
	}
	switch c.Board.Layout {
	case LayoutStandard:
		if c.Board.Size != game.StandardDimension {
			errs = append(errs, fmt.Errorf("standard layout needs board size %d, got %d", game.StandardDimension, c.Board.Size))
		}
	case LayoutRandom:
		if c.Board.Difficulty < setup.Easy || c.Board.Difficulty > setup.Hard {
			errs = append(errs, fmt.Errorf("unknown difficulty %d", c.Board.Difficulty))
		}
	case LayoutCustom:
		if c.Board.Snakes < 0 || c.Board.Ladders < 0 {
			errs = append(errs, errors.New("entity counts must not be negative"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown board layout %q", c.Board.Layout))
	}

	if c.Dice.Faces < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", dice.ErrInvalidFaces, c.Dice.Faces))
	}

	if len(c.Players) < game.MinPlayers {
		errs = append(errs, fmt.Errorf("%w: got %d", game.ErrNotEnoughPlayers, len(c.Players)))
	}
	seen := make(map[string]struct{}, len(c.Players))
	for _, name := range c.Players {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("player names must not be empty"))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("duplicate player name %q", name))
		}
		seen[name] = struct{}{}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if enc := log.Encoding(c.Log.Encoding); enc != log.EncodingJSON && enc != log.EncodingConsole {
		errs = append(errs, fmt.Errorf("unknown log encoding %q", c.Log.Encoding))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Strategy builds the board setup strategy the config describes.
func (c Config) Strategy(src setup.Source, l log.Log) setup.Strategy {
	switch c.Board.Layout {
	case LayoutRandom:
		return setup.NewRandomized(c.Board.Difficulty, src, l)
	case LayoutCustom:
		s := setup.NewCustomCount(c.Board.Snakes, c.Board.Ladders, c.Board.RandomPlacement, src, l)
		for _, span := range c.Board.SnakeSpans {
			s.AddSnake(span.Start, span.End)
		}
		for _, span := range c.Board.LadderSpans {
			s.AddLadder(span.Start, span.End)
		}
		return s
	default:
		return setup.NewStandard(l)
	}
}

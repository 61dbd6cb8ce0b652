// Package injector assembles a ready-to-play game from a Config.
package injector

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/wire"

	"github.com/zeusync/snakeladder/internal/config"
	"github.com/zeusync/snakeladder/internal/core/dice"
	"github.com/zeusync/snakeladder/internal/core/game"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
	"github.com/zeusync/snakeladder/internal/core/player"
	"github.com/zeusync/snakeladder/internal/core/simulate"
	"github.com/zeusync/snakeladder/pkg/random"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideSeed,
	ProvideSource,
	ProvideDice,
	ProvideGame,
	ProvideApp,
)

// Seed is the resolved random seed of a run. Logging it lets a game be
// replayed with the same layout and rolls.
type Seed uint64

// App is everything the CLI needs to run one game.
type App struct {
	Game   *game.Game
	Logger *log.Logger
	Seed   Seed
}

func ProvideLogger(c config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(level, log.Encoding(c.Log.Encoding))
}

// ProvideSeed returns the configured seed, or a fresh one when it is zero.
func ProvideSeed(c config.Config) (Seed, error) {
	if c.Seed != 0 {
		return Seed(c.Seed), nil
	}
	s, err := random.NewSeed()
	if err != nil {
		return 0, err
	}
	return Seed(s), nil
}

func ProvideSource(s Seed) *rand.Rand {
	return random.New(uint64(s))
}

func ProvideDice(c config.Config, src *rand.Rand) (dice.Dice, error) {
	d, err := dice.New(c.Dice.Faces, src)
	if err != nil {
		return nil, fmt.Errorf("configure dice: %w", err)
	}
	return d, nil
}

// ProvideGame builds and populates the board, then seats the players in
// config order.
func ProvideGame(c config.Config, src *rand.Rand, d dice.Dice, l *log.Logger) *game.Game {
	g := game.NewCustom(c.Board.Size, c.Strategy(src, l), d, game.WithLogger(l))
	for _, name := range c.Players {
		g.AddPlayer(player.New(name))
	}
	return g
}

func ProvideApp(g *game.Game, l *log.Logger, s Seed) *App {
	return &App{Game: g, Logger: l, Seed: s}
}

// SimulationSpec describes batch runs of the configured game. Layout warnings
// from individual games are not logged.
func SimulationSpec(c config.Config, s Seed) simulate.Spec {
	return simulate.Spec{
		Players: c.Players,
		Faces:   c.Dice.Faces,
		Seed:    uint64(s),
		Build: func(src *rand.Rand, d dice.Dice) *game.Game {
			return game.NewCustom(c.Board.Size, c.Strategy(src, log.Nop()), d)
		},
	}
}

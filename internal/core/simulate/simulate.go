// Package simulate plays many independent games in parallel and aggregates
// their outcomes. Every game owns its board, dice and players; nothing is
// shared between goroutines.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/dice"
	"github.com/zeusync/snakeladder/internal/core/events"
	"github.com/zeusync/snakeladder/internal/core/game"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
	"github.com/zeusync/snakeladder/internal/core/player"
	"github.com/zeusync/snakeladder/pkg/concurrent"
	"github.com/zeusync/snakeladder/pkg/random"
)

// DefaultMaxTurns caps a single simulated game.
const DefaultMaxTurns = 10_000

// Builder creates a fresh game for one simulation. src is the game's own
// random stream and should feed any randomized layout.
type Builder func(src *rand.Rand, d dice.Dice) *game.Game

type Spec struct {
	Players  []string
	Faces    int
	Seed     uint64
	MaxTurns int
	Build    Builder
}

func (s Spec) validate() error {
	var errs []error
	if len(s.Players) < game.MinPlayers {
		errs = append(errs, game.ErrNotEnoughPlayers)
	}
	if s.Build == nil {
		errs = append(errs, errors.New("simulation builder is required"))
	}
	if s.Faces < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", dice.ErrInvalidFaces, s.Faces))
	}
	return errors.Join(errs...)
}

// Outcome is the result of one simulated game.
type Outcome struct {
	Seed       uint64
	Layout     uint64
	Winner     string
	Finished   bool
	Turns      int
	Forfeits   int
	SnakeHits  int
	LadderHits int
}

// Stats aggregates outcomes.
type Stats struct {
	Games      int
	Finished   int
	Wins       map[string]int
	TotalTurns int
	MinTurns   int
	MaxTurns   int
	Forfeits   int
	SnakeHits  int
	LadderHits int
}

// MeanTurns is the average length of finished games.
func (s Stats) MeanTurns() float64 {
	if s.Finished == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Finished)
}

// Run plays games games on at most workers goroutines. Game i is seeded with
// random.Derive(spec.Seed, i), so a run is reproducible for a given seed.
func Run(ctx context.Context, spec Spec, games, workers int, l log.Log) (Stats, error) {
	if err := spec.validate(); err != nil {
		return Stats{}, fmt.Errorf("invalid simulation: %w", err)
	}
	if games < 0 {
		return Stats{}, fmt.Errorf("invalid simulation: negative game count %d", games)
	}
	if spec.MaxTurns <= 0 {
		spec.MaxTurns = DefaultMaxTurns
	}
	if l == nil {
		l = log.Nop()
	}

	outcomes, err := concurrent.Map(ctx, games, workers, func(ctx context.Context, i int) (Outcome, error) {
		return playOne(ctx, spec, random.Derive(spec.Seed, i))
	})
	if err != nil {
		return Stats{}, err
	}

	stats := Aggregate(outcomes)
	l.Info("simulation finished",
		log.Int("games", stats.Games),
		log.Int("finished", stats.Finished),
		log.Float64("mean_turns", stats.MeanTurns()),
	)
	return stats, nil
}

func playOne(ctx context.Context, spec Spec, seed uint64) (Outcome, error) {
	src := random.New(seed)
	d, err := dice.New(spec.Faces, src)
	if err != nil {
		return Outcome{}, err
	}
	g := spec.Build(src, d)
	for _, name := range spec.Players {
		g.AddPlayer(player.New(name))
	}

	out := Outcome{Seed: seed, Layout: g.Board().Fingerprint()}
	g.Events().Handle(func(e events.Event) error {
		switch {
		case e.Type == events.MoveForfeited:
			out.Forfeits++
		case e.Type == events.MoveJumped && e.Entity == board.KindSnake:
			out.SnakeHits++
		case e.Type == events.MoveJumped && e.Entity == board.KindLadder:
			out.LadderHits++
		}
		return nil
	}, events.MoveForfeited, events.MoveJumped)

	for !g.Over() && g.Turns() < spec.MaxTurns {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if _, err := g.Turn(ctx); err != nil {
			return Outcome{}, err
		}
	}

	out.Turns = g.Turns()
	if w, ok := g.Winner(); ok {
		out.Finished = true
		out.Winner = w.Name()
	}
	return out, nil
}

// Aggregate folds outcomes into Stats.
func Aggregate(outcomes []Outcome) Stats {
	s := Stats{Games: len(outcomes), Wins: make(map[string]int)}
	for _, o := range outcomes {
		s.Forfeits += o.Forfeits
		s.SnakeHits += o.SnakeHits
		s.LadderHits += o.LadderHits
		if !o.Finished {
			continue
		}
		s.Finished++
		s.Wins[o.Winner]++
		s.TotalTurns += o.Turns
		if s.MinTurns == 0 || o.Turns < s.MinTurns {
			s.MinTurns = o.Turns
		}
		if o.Turns > s.MaxTurns {
			s.MaxTurns = o.Turns
		}
	}
	return s
}

package game

import (
	"context"

	"github.com/zeusync/snakeladder/internal/core/events"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
	"github.com/zeusync/snakeladder/internal/core/player"
	"github.com/zeusync/snakeladder/internal/core/rules"
)

// TurnGate runs before the active player rolls, e.g. to wait for a key press.
// A non-nil error aborts the turn before any state changes.
type TurnGate func(ctx context.Context, active *player.Player) error

type Option func(*Game)

func WithRules(r rules.Rules) Option {
	return func(g *Game) {
		if r != nil {
			g.rules = r
		}
	}
}

// WithLogger logs through l. A nil l keeps the default no-op logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithBus publishes through an existing bus instead of a private one.
func WithBus(b *events.Bus) Option {
	return func(g *Game) {
		if b != nil {
			g.bus = b
		}
	}
}

func WithTurnGate(gate TurnGate) Option {
	return func(g *Game) {
		g.gate = gate
	}
}

// Package game drives a Snakes & Ladders match: the turn queue, move
// resolution and win detection.
package game

import (
	"context"
	"fmt"

	"github.com/zeusync/snakeladder/internal/core/board"
	"github.com/zeusync/snakeladder/internal/core/dice"
	"github.com/zeusync/snakeladder/internal/core/events"
	"github.com/zeusync/snakeladder/internal/core/observability/log"
	"github.com/zeusync/snakeladder/internal/core/player"
	"github.com/zeusync/snakeladder/internal/core/rules"
	"github.com/zeusync/snakeladder/pkg/sequence"
)

// MinPlayers is the smallest table the engine will start with.
const MinPlayers = 2

// Game owns one match from the first roll to the win. It is single-threaded:
// a Game must not be used from more than one goroutine at a time.
type Game struct {
	board *board.Board
	dice  dice.Dice
	rules rules.Rules
	queue *sequence.Queue[*player.Player]
	bus   *events.Bus
	log   log.Log
	gate  TurnGate

	over   bool
	winner *player.Player
	turns  int
}

// TurnResult describes one resolved turn.
type TurnResult struct {
	Turn      int
	Player    *player.Player
	Roll      int
	From      int
	Landed    int
	To        int
	Entity    board.Entity
	Jumped    bool
	Forfeited bool
	Won       bool
}

// New returns a game on a fully populated board.
func New(b *board.Board, d dice.Dice, opts ...Option) *Game {
	g := &Game{
		board: b,
		dice:  d,
		rules: rules.Standard{},
		queue: sequence.NewQueue[*player.Player](),
		log:   log.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bus == nil {
		g.bus = events.NewBus()
	}
	return g
}

// AddPlayer appends p to the back of the turn queue.
func (g *Game) AddPlayer(p *player.Player) {
	g.queue.PushBack(p)
}

// AddObserver subscribes n to every notification of this game.
func (g *Game) AddObserver(n events.Notifier) events.Subscription {
	return g.bus.Subscribe(n)
}

func (g *Game) Board() *board.Board { return g.board }
func (g *Game) Events() *events.Bus { return g.bus }
func (g *Game) Over() bool          { return g.over }
func (g *Game) Turns() int          { return g.turns }

// SetTurnGate replaces the hook run before every roll. nil removes it.
func (g *Game) SetTurnGate(gate TurnGate) {
	g.gate = gate
}

// Winner returns the winning player once the game is over.
func (g *Game) Winner() (*player.Player, bool) {
	return g.winner, g.winner != nil
}

// Players returns the turn queue, next player first.
func (g *Game) Players() []*player.Player {
	return g.queue.Items()
}

// Play runs turns until someone wins. The context is checked between turns
// only; a turn in progress always completes.
func (g *Game) Play(ctx context.Context) error {
	if g.queue.Len() < MinPlayers {
		g.log.Warn("not enough players to start",
			log.Int("players", g.queue.Len()),
			log.Int("min", MinPlayers),
		)
		return ErrNotEnoughPlayers
	}
	if g.over {
		return ErrGameOver
	}

	summary := g.board.Summary()
	g.log.Info("game started",
		log.Int("players", g.queue.Len()),
		log.Int("cells", summary.Cells),
		log.Int("snakes", summary.Snakes),
		log.Int("ladders", summary.Ladders),
		log.Uint64("layout", g.board.Fingerprint()),
	)
	g.publish(events.Event{Type: events.GameStarted, Message: "Game initiated."})

	for !g.over {
		if err := ctx.Err(); err != nil {
			g.log.Info("game stopped between turns", log.Int("turns", g.turns), log.Error(err))
			return err
		}
		if _, err := g.Turn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Turn plays exactly one turn for the player at the front of the queue.
func (g *Game) Turn(ctx context.Context) (TurnResult, error) {
	if g.over {
		return TurnResult{}, ErrGameOver
	}
	if g.queue.Len() < MinPlayers {
		return TurnResult{}, ErrNotEnoughPlayers
	}

	active, _ := g.queue.Peek()
	if g.gate != nil {
		if err := g.gate(ctx, active); err != nil {
			return TurnResult{}, fmt.Errorf("turn gate: %w", err)
		}
	}

	g.turns++
	size := g.board.Size()
	res := TurnResult{
		Turn:   g.turns,
		Player: active,
		Roll:   g.dice.Roll(),
		From:   active.Position(),
	}
	logger := g.log.With(log.String("player", active.Name()), log.Int("turn", res.Turn))

	if !g.rules.IsLegalMove(res.From, res.Roll, size) {
		res.Forfeited = true
		res.Landed, res.To = res.From, res.From
		logger.Debug("roll overshoots the last cell", log.Int("roll", res.Roll), log.Int("position", res.From))
		g.publish(events.Event{
			Type:    events.MoveForfeited,
			Player:  active.Name(),
			Roll:    res.Roll,
			From:    res.From,
			Landed:  res.From,
			To:      res.From,
			Message: fmt.Sprintf("%s rolled %d: exact roll required to reach cell %d", active.Name(), res.Roll, size),
		})
		g.queue.Rotate()
		return res, nil
	}

	res.Landed = res.From + res.Roll
	res.To = g.rules.ResolveMove(res.From, res.Roll, g.board)
	active.MoveTo(res.To)

	if e, ok := g.board.EntityAt(res.Landed); ok {
		res.Entity, res.Jumped = e, true
		g.publish(events.Event{
			Type:    events.MoveJumped,
			Player:  active.Name(),
			Roll:    res.Roll,
			From:    res.From,
			Landed:  res.Landed,
			To:      res.To,
			Entity:  e.Kind,
			Message: jumpMessage(active.Name(), e.Kind, res.Landed, res.To),
		})
	}

	logger.Debug("move resolved",
		log.Int("roll", res.Roll),
		log.Int("from", res.From),
		log.Int("landed", res.Landed),
		log.Int("to", res.To),
	)
	g.publish(events.Event{
		Type:    events.MoveCompleted,
		Player:  active.Name(),
		Roll:    res.Roll,
		From:    res.From,
		Landed:  res.Landed,
		To:      res.To,
		Entity:  res.Entity.Kind,
		Message: fmt.Sprintf("%s completed a move. Current position: %d", active.Name(), res.To),
	})

	if g.rules.IsWin(res.To, size) {
		res.Won = true
		active.RecordWin()
		g.publish(events.Event{
			Type:    events.GameConcluded,
			Player:  active.Name(),
			Roll:    res.Roll,
			From:    res.From,
			Landed:  res.Landed,
			To:      res.To,
			Message: "Game concluded. Winner: " + active.Name(),
		})
		g.over = true
		g.winner = active
		logger.Info("game concluded", log.Int("wins", active.Wins()))
		return res, nil
	}

	g.queue.Rotate()
	return res, nil
}

// Rematch resets every token for another game on the same board. Win tallies
// and the queue order are kept, so the last winner moves first.
func (g *Game) Rematch() error {
	if !g.over {
		return ErrGameInProgress
	}
	for _, p := range g.queue.Items() {
		p.Reset()
	}
	g.over = false
	g.winner = nil
	g.turns = 0
	return nil
}

func (g *Game) publish(e events.Event) {
	if err := g.bus.Publish(e); err != nil {
		g.log.Warn("event handler failed", log.String("event", string(e.Type)), log.Error(err))
	}
}

func jumpMessage(name string, kind board.Kind, landed, to int) string {
	if kind == board.KindSnake {
		return fmt.Sprintf("%s encountered a snake at %d and moved down to %d", name, landed, to)
	}
	return fmt.Sprintf("%s encountered a ladder at %d and moved up to %d", name, landed, to)
}

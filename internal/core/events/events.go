// Package events carries game notifications from the engine to observers.
package events

import (
	"time"

	"github.com/zeusync/snakeladder/internal/core/board"
)

// Type is the routing key of an Event.
type Type string

const (
	GameStarted   Type = "game.started"
	MoveForfeited Type = "move.forfeited"
	MoveJumped    Type = "move.jumped"
	MoveCompleted Type = "move.completed"
	GameConcluded Type = "game.concluded"
)

// Event is an immutable record of something that happened during a turn.
// Message is the human-readable text handed to every Notifier.
type Event struct {
	Type      Type
	Player    string
	Roll      int
	From      int
	Landed    int
	To        int
	Entity    board.Kind
	Message   string
	Timestamp time.Time
}

// Notifier receives the text of each event. The engine calls Receive
// synchronously, once per event, in subscription order.
type Notifier interface {
	Receive(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Receive(message string) { f(message) }

// Handler is a typed listener. Returned errors are joined by Publish but never
// stop delivery to later subscribers.
type Handler func(Event) error

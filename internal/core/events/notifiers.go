package events

import (
	"fmt"
	"io"
	"sync"

	"github.com/zeusync/snakeladder/internal/core/observability/log"
)

// Console prints every message as a "[GAME NOTICE]" line.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Receive(message string) {
	_, _ = fmt.Fprintf(c.w, "[GAME NOTICE] %s\n", message)
}

// LogNotifier forwards messages to a structured logger at info level.
type LogNotifier struct {
	log log.Log
}

func NewLogNotifier(l log.Log) *LogNotifier {
	return &LogNotifier{log: l}
}

func (n *LogNotifier) Receive(message string) {
	n.log.Info("game notice", log.String("message", message))
}

// Recorder keeps every message it receives.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Receive(message string) {
	r.mu.Lock()
	r.messages = append(r.messages, message)
	r.mu.Unlock()
}

// Messages returns a copy of the received messages in arrival order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.messages = nil
	r.mu.Unlock()
}

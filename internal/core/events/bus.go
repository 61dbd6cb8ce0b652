package events

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Subscription is a registered Notifier or Handler.
type Subscription interface {
	ID() string
	IsActive() bool
	// Cancel stops further deliveries. Multiple calls are safe.
	Cancel()
}

// Metrics are running delivery counters.
type Metrics struct {
	Published uint64
	Delivered uint64
	Errors    uint64
}

// Bus fans events out to its subscribers in registration order, on the
// publishing goroutine. There is no buffering.
type Bus struct {
	mu      sync.Mutex
	subs    []*subscription
	metrics Metrics
	now     func() time.Time
}

type subscription struct {
	id       string
	notifier Notifier
	handler  Handler
	types    map[Type]struct{}
	active   bool
	bus      *Bus
}

func (s *subscription) ID() string { return s.id }

func (s *subscription) IsActive() bool {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	return s.active
}

func (s *subscription) Cancel() {
	s.bus.remove(s)
}

func (s *subscription) wants(t Type) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[t]
	return ok
}

func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscribe registers n for every event.
func (b *Bus) Subscribe(n Notifier) Subscription {
	return b.add(&subscription{notifier: n})
}

// Handle registers fn for the given event types, or for all types when none
// are listed.
func (b *Bus) Handle(fn Handler, types ...Type) Subscription {
	s := &subscription{handler: fn}
	if len(types) > 0 {
		s.types = make(map[Type]struct{}, len(types))
		for _, t := range types {
			s.types[t] = struct{}{}
		}
	}
	return b.add(s)
}

// Publish delivers e to every active subscriber, stamping the timestamp when
// it is unset.
func (b *Bus) Publish(e Event) error {
	b.mu.Lock()
	if e.Timestamp.IsZero() {
		e.Timestamp = b.now()
	}
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)
	b.metrics.Published++
	b.mu.Unlock()

	var all error
	delivered := uint64(0)
	for _, s := range subs {
		if !s.IsActive() || !s.wants(e.Type) {
			continue
		}
		delivered++
		if s.notifier != nil {
			s.notifier.Receive(e.Message)
			continue
		}
		if err := s.handler(e); err != nil {
			all = errors.Join(all, err)
		}
	}

	b.mu.Lock()
	b.metrics.Delivered += delivered
	if all != nil {
		b.metrics.Errors++
	}
	b.mu.Unlock()
	return all
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) Metrics() Metrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.metrics
}

func (b *Bus) add(s *subscription) Subscription {
	s.id = uuid.NewString()
	s.active = true
	s.bus = b
	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()
	return s
}

func (b *Bus) remove(target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !target.active {
		return
	}
	target.active = false
	for i, s := range b.subs {
		if s == target {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

package search

import (
	"context"
	"sync"
	"time"
)

// DefaultLoadingMessages cycle while a lookup is in flight.
var DefaultLoadingMessages = []string{
	"Searching...",
	"Fetching student record...",
	"Loading family photos...",
	"Almost there...",
}

// DefaultLoadingInterval is how long each loading message stays up.
const DefaultLoadingInterval = 1500 * time.Millisecond

// Rotator yields loading messages in a repeating cycle.
type Rotator struct {
	mu       sync.Mutex
	messages []string
	next     int
}

func NewRotator(messages ...string) *Rotator {
	if len(messages) == 0 {
		messages = DefaultLoadingMessages
	}
	return &Rotator{messages: messages}
}

func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := r.messages[r.next]
	r.next = (r.next + 1) % len(r.messages)
	return msg
}

func (r *Rotator) peek() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.messages[r.next], r.next
}

// advance moves past the message at idx unless the cycle has already moved.
func (r *Rotator) advance(idx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.next == idx {
		r.next = (idx + 1) % len(r.messages)
	}
}

func (r *Rotator) Reset() {
	r.mu.Lock()
	r.next = 0
	r.mu.Unlock()
}

// Run emits the first message immediately, then one per tick, until ctx is
// cancelled. The returned channel is closed on exit. A message is consumed
// from the cycle only once it has been received. A non-positive every falls
// back to DefaultLoadingInterval.
func (r *Rotator) Run(ctx context.Context, every time.Duration) <-chan string {
	if every <= 0 {
		every = DefaultLoadingInterval
	}

	out := make(chan string)

	go func() {
		defer close(out)

		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			msg, idx := r.peek()
			select {
			case out <- msg:
				r.advance(idx)
			case <-ctx.Done():
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

// Breaker guards a flaky downstream call. Closed lets calls through, open
// rejects them outright, half-open probes until enough calls succeed in a row.
type Breaker interface {
	Call(fn func() error) error
	Reset()
}

type breaker struct {
	mu sync.Mutex

	state state
	// ring of recent call outcomes, true = failed
	buffer []bool
	pos    int
	// failure share of the ring that trips the breaker
	threshold float64
	// how long to stay open before probing
	timeout     time.Duration
	lastTripped time.Time
	// consecutive half-open successes required to close
	recovery     int
	successCount int
}

func New(window int, timeout time.Duration, threshold float64, recovery int) Breaker {
	return &breaker{
		state:     closed,
		buffer:    make([]bool, window),
		threshold: threshold,
		timeout:   timeout,
		recovery:  recovery,
	}
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == open {
		if time.Since(b.lastTripped) <= b.timeout {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = halfOpen
		b.successCount = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.buffer[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.buffer)

	if b.state == halfOpen {
		if err != nil {
			b.trip()
		} else {
			b.successCount++
			if b.successCount > b.recovery {
				b.reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range b.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.buffer)) >= b.threshold {
		b.trip()
	}
	return err
}

func (b *breaker) trip() {
	b.state = open
	b.successCount = 0
	b.lastTripped = time.Now()
}

func (b *breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *breaker) reset() {
	for i := range b.buffer {
		b.buffer[i] = false
	}
	b.successCount = 0
	b.pos = 0
	b.state = closed
}

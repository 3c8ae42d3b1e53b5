package model

import (
	"sync"
	"time"
)

// Clock accumulates the time a side has spent on its moves. It counts
// up; the game has no time controls, the figures are informational.
type Clock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	running     bool
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		c.lastStarted = time.Now()
		c.running = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.elapsed += time.Since(c.lastStarted)
		c.running = false
	}
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return c.elapsed + time.Since(c.lastStarted)
	}
	return c.elapsed
}

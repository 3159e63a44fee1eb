package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// UTC reads the wall clock in UTC so persisted timestamps never carry the
// host zone.
type UTC struct{}

func New() Clock {
	return UTC{}
}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a settable clock for tests.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

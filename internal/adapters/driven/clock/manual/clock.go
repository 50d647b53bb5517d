// Package manual provides a driven.Clock that only moves when told to.
// Tests and the instant CLI mode use it to fast-forward reply delays.
package manual

import (
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure Clock implements the interface.
var _ driven.Clock = (*Clock)(nil)

// Clock is a manually advanced clock.
// Callbacks fire synchronously inside Advance, never inside AfterFunc.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*timer
}

type timer struct {
	clock *Clock
	when  time.Time
	seq   uint64
	f     func()
	done  bool
}

// New creates a manual clock reading start.
func New(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to run once the clock has advanced by d.
func (c *Clock) AfterFunc(d time.Duration, f func()) driven.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{clock: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that became due,
// earliest first. Callbacks run after the lock is released and may schedule more.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.when
		c.mu.Unlock()
		next.f()
	}
}

// Pending returns the number of callbacks not yet run or stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// popDue removes and returns the earliest timer due by target (caller must hold lock).
func (c *Clock) popDue(target time.Time) *timer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})
	first := c.timers[0]
	if first.when.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	first.done = true
	return first
}

// Stop removes the callback if it has not run.
func (t *timer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			break
		}
	}
	return true
}

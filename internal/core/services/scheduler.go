package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// Scheduler runs deferred tasks on a clock.
// It tracks tasks in flight so callers can wait for or cancel them.
type Scheduler struct {
	clock driven.Clock

	mu      sync.Mutex
	stopped bool
	pending map[uint64]driven.Timer
	next    uint64
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler on the given clock.
func NewScheduler(clock driven.Clock) *Scheduler {
	return &Scheduler{
		clock:   clock,
		pending: make(map[uint64]driven.Timer),
	}
}

// Now returns the scheduler clock's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After runs task once d has elapsed.
// Returns false if the scheduler has been stopped.
func (s *Scheduler) After(d time.Duration, task func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}

	id := s.next
	s.next++
	s.wg.Add(1)
	// Registered before AfterFunc returns; a zero delay may fire on another goroutine
	// that blocks on mu until the timer is recorded.
	s.pending[id] = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		if !live {
			return
		}
		defer s.wg.Done()
		task()
	})
	return true
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Wait blocks until every scheduled task has run or been stopped.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Stop cancels pending tasks and rejects new ones.
// Tasks already running are waited for.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	cancelled := 0
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
		s.wg.Done()
		cancelled++
	}
	s.mu.Unlock()

	if cancelled > 0 {
		logger.Debug("scheduler: cancelled %d pending tasks", cancelled)
	}
	s.wg.Wait()
}

package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/clock/manual"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/clock/system"
)

func TestScheduler_RunsAfterDelay(t *testing.T) {
	clock := manual.New(testEpoch)
	s := NewScheduler(clock)
	var ran atomic.Int32

	assert.True(t, s.After(time.Second, func() { ran.Add(1) }))
	assert.Equal(t, 1, s.Pending())

	clock.Advance(500 * time.Millisecond)
	assert.Zero(t, ran.Load())

	clock.Advance(500 * time.Millisecond)
	assert.EqualValues(t, 1, ran.Load())
	assert.Zero(t, s.Pending())
	s.Wait()
}

func TestScheduler_Now(t *testing.T) {
	clock := manual.New(testEpoch)
	s := NewScheduler(clock)

	clock.Advance(time.Minute)
	assert.Equal(t, testEpoch.Add(time.Minute), s.Now())
}

func TestScheduler_Stop_CancelsPending(t *testing.T) {
	clock := manual.New(testEpoch)
	s := NewScheduler(clock)
	var ran atomic.Int32

	s.After(time.Second, func() { ran.Add(1) })
	s.After(2*time.Second, func() { ran.Add(1) })

	s.Stop()
	clock.Advance(time.Minute)

	assert.Zero(t, ran.Load())
	assert.Zero(t, s.Pending())
	assert.False(t, s.After(time.Second, func() { ran.Add(1) }), "stopped scheduler rejects tasks")
	s.Stop()
}

func TestScheduler_Wait_SystemClock(t *testing.T) {
	s := NewScheduler(system.New())
	var ran atomic.Int32

	for i := 0; i < 10; i++ {
		s.After(time.Millisecond, func() { ran.Add(1) })
	}
	s.Wait()

	assert.EqualValues(t, 10, ran.Load())
	assert.Zero(t, s.Pending())
}

func TestScheduler_ZeroDelay_SystemClock(t *testing.T) {
	s := NewScheduler(system.New())
	done := make(chan struct{})

	s.After(0, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero-delay task did not run")
	}
	s.Wait()
}

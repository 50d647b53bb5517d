// Package system provides the wall-clock implementation of driven.Clock.
package system

import (
	"time"

	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure Clock implements the interface.
var _ driven.Clock = Clock{}

// Clock reads wall time and schedules callbacks with time.AfterFunc.
type Clock struct{}

// New creates a system clock.
func New() Clock {
	return Clock{}
}

// Now returns the current local time.
func (Clock) Now() time.Time {
	return time.Now()
}

// AfterFunc calls f in its own goroutine once d has elapsed.
func (Clock) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}

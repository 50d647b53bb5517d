package driven

import "time"

// Clock is the time source for the core.
// The system clock uses wall time; tests use a manual clock they advance.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed.
	// f runs on whatever goroutine the clock chooses.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from firing.
	// Returns false if it already fired or was stopped.
	Stop() bool
}

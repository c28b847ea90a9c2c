// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock abstracts wall time and one-shot timers so that polling,
// retry and debounce schedules can be driven by virtual time in tests.
package clock

import "time"

// Clock is the time source used by the sync layer.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for d to elapse and then calls f on its own goroutine
	// (real clock) or on the goroutine advancing the clock (Fake).
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable one-shot timer returned by [Clock.AfterFunc].
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// has already fired or been stopped.
	Stop() bool
}

type realClock struct{}

// New returns a Clock backed by the time package.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Package clock abstracts the monotonic time source so the UI and tests
// share one way of producing instants for the timer model.
package clock

import "time"

// Clock produces the instants fed into the timer model.
type Clock interface {
	Now() time.Time
}

// System reads the real clock. Instants from time.Now carry a monotonic
// reading, so differences are immune to wall-clock adjustments.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a test clock advanced by hand.
type Manual struct {
	current time.Time
}

// NewManual returns a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

func (m *Manual) Now() time.Time { return m.current }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.current = m.current.Add(d) }

// Set jumps the clock to the given instant.
func (m *Manual) Set(t time.Time) { m.current = t }

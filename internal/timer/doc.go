// Package timer implements the timer state machine at the heart of perch.
//
// # Overview
//
// A Model counts up from zero or down from a configured target. It does
// not tick on its own: the UI samples a monotonic clock and passes the
// current instant into every operation that needs one, which keeps the
// accounting exact regardless of how often (or how irregularly) the model
// is polled.
//
// # State machine
//
//	Idle --Start--> Running --Pause--> Paused --Resume--> Running
//	Running --(Snapshot observes remaining <= 0, ModeDown)--> Finished
//	Finished --Start--> Running (banked time cleared)
//	any --Reset--> Idle
//
// Finished is not terminal; Start and Reset both leave it. Invalid
// transitions are no-ops rather than errors, so every mutator is total.
//
// # Time accounting
//
// Elapsed time is the sum of completed running intervals (banked on each
// Pause) plus the live interval when Running. Instants are time.Time
// values; when they come from time.Now they carry a monotonic reading, so
// wall-clock adjustments never skew the arithmetic.
package timer

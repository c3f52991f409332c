// Package ui provides the terminal user interface for perch.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program that floats a small timer panel in the
// top-right corner of the terminal. It is the sole owner of the timer
// model: user input drives mutators, and a poll loop samples
// Model.Snapshot while the timer runs. All of that happens on Bubble
// Tea's single update goroutine, so the timer model needs no locking.
//
// # Package Structure
//
//   - model.go: root tea.Model, key dispatch, the poll and flash loops
//   - view.go: panel rendering, status line, help overlay
//   - digits.go: block glyphs for the big time readout
//   - entry.go: the hours/minutes/seconds target entry row
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color themes and lipgloss styles
//
// # Poll and flash loops
//
// Both recurring tasks are generation-counted ticks: each loop carries
// the generation it was started with, and a message whose generation no
// longer matches the model is dropped. Cancelling is just bumping the
// counter, which is naturally idempotent and safe against ticks already
// in flight. The poll loop runs only while the timer is Running; the
// flash loop runs a fixed number of half-periods after a countdown
// completes.
package ui

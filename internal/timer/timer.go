package timer

import "time"

// Mode selects the counting direction.
type Mode int

const (
	ModeUp Mode = iota
	ModeDown
)

// String returns the mode name used in config files and the UI.
func (m Mode) String() string {
	if m == ModeDown {
		return "down"
	}
	return "up"
}

// State is the lifecycle state of a timer.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateFinished
)

// String returns a lowercase state name for display.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// DefaultTargetSeconds is the countdown target a fresh model starts with.
const DefaultTargetSeconds = 5 * 60

// Model tracks elapsed or remaining time across start/pause/resume/reset
// transitions. Time never advances on its own: every operation that needs
// the current instant takes it as an argument, so the model is exact no
// matter how irregularly it is sampled. Instants must come from a
// monotonic source (time.Now or clock.Clock) and be non-decreasing.
//
// Model is not safe for concurrent use; the UI owns it on one goroutine.
type Model struct {
	mode          Mode
	state         State
	targetSeconds int

	// startInstant is non-zero exactly while state == StateRunning.
	startInstant time.Time
	// accumulated holds seconds banked from completed running intervals.
	accumulated float64
}

// Snapshot is a point-in-time view of the model. HasRemaining is set only
// in ModeDown; RemainingSeconds is then clamped at zero.
type Snapshot struct {
	Mode             Mode
	State            State
	ElapsedSeconds   float64
	RemainingSeconds float64
	HasRemaining     bool
}

// New returns an idle count-up model with the default countdown target.
func New() *Model {
	return &Model{targetSeconds: DefaultTargetSeconds}
}

// Mode returns the current counting direction.
func (m *Model) Mode() Mode { return m.mode }

// State returns the current lifecycle state.
func (m *Model) State() State { return m.state }

// TargetSeconds returns the configured countdown target.
func (m *Model) TargetSeconds() int { return m.targetSeconds }

// SetMode switches the counting direction. Switching is a full reset:
// elapsed time is not comparable across modes, so stale accumulation must
// not leak through. Setting the current mode again is a no-op.
func (m *Model) SetMode(mode Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.Reset()
}

// SetTargetSeconds stores a new countdown target, clamping negatives to
// zero. When counting down and not actively running or paused, the banked
// accumulation is cleared so the display tracks the new target. While
// Running or Paused the accumulation is left alone; the new target takes
// effect on the next query.
func (m *Model) SetTargetSeconds(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	m.targetSeconds = seconds
	if m.mode == ModeDown && (m.state == StateIdle || m.state == StateFinished) {
		m.accumulated = 0
	}
}

// Start begins a run at the given instant. From Idle or Finished this is a
// fresh run and clears banked time. Calling Start while Paused keeps the
// banked time, behaving like Resume; callers are expected to use Resume
// for that case. Start while already Running is a no-op.
func (m *Model) Start(now time.Time) {
	if m.state == StateRunning {
		return
	}
	if m.state == StateIdle || m.state == StateFinished {
		m.accumulated = 0
	}
	m.startInstant = now
	m.state = StateRunning
}

// Pause banks the current running interval and stops the clock. No-op
// unless Running.
func (m *Model) Pause(now time.Time) {
	if m.state != StateRunning {
		return
	}
	m.accumulated += now.Sub(m.startInstant).Seconds()
	m.startInstant = time.Time{}
	m.state = StatePaused
}

// Resume continues a paused run at the given instant. No-op unless Paused.
func (m *Model) Resume(now time.Time) {
	if m.state != StatePaused {
		return
	}
	m.startInstant = now
	m.state = StateRunning
}

// Reset returns the model to Idle and discards all banked time. Valid
// from any state.
func (m *Model) Reset() {
	m.state = StateIdle
	m.startInstant = time.Time{}
	m.accumulated = 0
}

// Snapshot reports elapsed and remaining time as of the given instant.
//
// In ModeDown, when remaining time reaches zero while Running, the model
// transitions to Finished and stops its implicit clock: later snapshots
// report the same frozen values until a mutator runs. A zero-or-negative
// remainder observed in any other state is reported as zero without
// touching the state.
func (m *Model) Snapshot(now time.Time) Snapshot {
	elapsed := m.accumulated
	if m.state == StateRunning {
		elapsed += now.Sub(m.startInstant).Seconds()
	}

	if m.mode == ModeUp {
		return Snapshot{Mode: m.mode, State: m.state, ElapsedSeconds: elapsed}
	}

	remaining := float64(m.targetSeconds) - elapsed
	if remaining <= 0 {
		remaining = 0
		if m.state == StateRunning {
			m.state = StateFinished
			m.startInstant = time.Time{}
			m.accumulated = elapsed
		}
	}
	return Snapshot{
		Mode:             m.mode,
		State:            m.state,
		ElapsedSeconds:   elapsed,
		RemainingSeconds: remaining,
		HasRemaining:     true,
	}
}

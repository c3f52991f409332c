package timer

import (
	"testing"
	"time"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// at returns an instant the given number of seconds after a fixed origin.
func at(seconds float64) time.Time {
	return base.Add(time.Duration(seconds * float64(time.Second)))
}

func TestNew_Defaults(t *testing.T) {
	m := New()
	if m.Mode() != ModeUp {
		t.Fatalf("Mode = %v, want ModeUp", m.Mode())
	}
	if m.State() != StateIdle {
		t.Fatalf("State = %v, want StateIdle", m.State())
	}
	if m.TargetSeconds() != 300 {
		t.Fatalf("TargetSeconds = %d, want 300", m.TargetSeconds())
	}
}

func TestSnapshot_CountUpTracksRunningTime(t *testing.T) {
	m := New()
	m.Start(at(0))

	snap := m.Snapshot(at(2.5))
	if snap.State != StateRunning {
		t.Fatalf("State = %v, want StateRunning", snap.State)
	}
	if snap.ElapsedSeconds != 2.5 {
		t.Fatalf("ElapsedSeconds = %v, want 2.5", snap.ElapsedSeconds)
	}
	if snap.HasRemaining {
		t.Fatalf("HasRemaining = true, want false in ModeUp")
	}
}

func TestSnapshot_IsIdempotent(t *testing.T) {
	// Polling between mutations must not change what a later poll reports.
	m := New()
	m.Start(at(0))
	for i := 0; i < 50; i++ {
		m.Snapshot(at(float64(i) * 0.05))
	}
	if got := m.Snapshot(at(4)).ElapsedSeconds; got != 4 {
		t.Fatalf("ElapsedSeconds = %v, want 4", got)
	}
}

func TestPauseResume_RoundTripPreservesElapsed(t *testing.T) {
	m := New()
	m.Start(at(0))
	m.Pause(at(3))
	m.Resume(at(3))

	// 3 banked + 4 live, not 7+3.
	if got := m.Snapshot(at(7)).ElapsedSeconds; got != 7 {
		t.Fatalf("ElapsedSeconds = %v, want 7", got)
	}
}

func TestPause_ExcludesPausedInterval(t *testing.T) {
	m := New()
	m.Start(at(0))
	m.Pause(at(3))

	if got := m.Snapshot(at(60)).ElapsedSeconds; got != 3 {
		t.Fatalf("ElapsedSeconds while paused = %v, want 3", got)
	}

	m.Resume(at(60))
	if got := m.Snapshot(at(62)).ElapsedSeconds; got != 5 {
		t.Fatalf("ElapsedSeconds after resume = %v, want 5", got)
	}
}

func TestStart_WhileRunningIsNoop(t *testing.T) {
	m := New()
	m.Start(at(0))
	m.Start(at(10))

	if got := m.Snapshot(at(12)).ElapsedSeconds; got != 12 {
		t.Fatalf("ElapsedSeconds = %v, want 12", got)
	}
}

func TestStart_WhilePausedKeepsBankedTime(t *testing.T) {
	// Degenerate path: callers should use Resume, but Start from Paused
	// must behave the same way.
	m := New()
	m.Start(at(0))
	m.Pause(at(3))
	m.Start(at(10))

	if m.State() != StateRunning {
		t.Fatalf("State = %v, want StateRunning", m.State())
	}
	if got := m.Snapshot(at(11)).ElapsedSeconds; got != 4 {
		t.Fatalf("ElapsedSeconds = %v, want 4", got)
	}
}

func TestStart_FromFinishedRestartsFromZero(t *testing.T) {
	m := New()
	m.SetMode(ModeDown)
	m.SetTargetSeconds(5)
	m.Start(at(0))
	m.Snapshot(at(6))

	if m.State() != StateFinished {
		t.Fatalf("State = %v, want StateFinished", m.State())
	}

	m.Start(at(10))
	snap := m.Snapshot(at(12))
	if snap.ElapsedSeconds != 2 {
		t.Fatalf("ElapsedSeconds = %v, want 2", snap.ElapsedSeconds)
	}
	if snap.RemainingSeconds != 3 {
		t.Fatalf("RemainingSeconds = %v, want 3", snap.RemainingSeconds)
	}
}

func TestSnapshot_CountDownRemaining(t *testing.T) {
	m := New()
	m.SetMode(ModeDown)
	m.SetTargetSeconds(10)
	m.Start(at(0))

	cases := []struct {
		name          string
		now           float64
		wantRemaining float64
		wantState     State
	}{
		{"early", 2, 8, StateRunning},
		{"late", 9.5, 0.5, StateRunning},
		{"boundary", 10, 0, StateFinished},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := m.Snapshot(at(tc.now))
			if !snap.HasRemaining {
				t.Fatalf("HasRemaining = false, want true in ModeDown")
			}
			if snap.RemainingSeconds != tc.wantRemaining {
				t.Fatalf("RemainingSeconds = %v, want %v", snap.RemainingSeconds, tc.wantRemaining)
			}
			if snap.State != tc.wantState {
				t.Fatalf("State = %v, want %v", snap.State, tc.wantState)
			}
		})
	}
}

func TestSnapshot_AutoFinishFreezesClock(t *testing.T) {
	m := New()
	m.SetMode(ModeDown)
	m.SetTargetSeconds(5)
	m.Start(at(0))

	first := m.Snapshot(at(5))
	if first.State != StateFinished {
		t.Fatalf("State = %v, want StateFinished", first.State)
	}
	if first.ElapsedSeconds != 5 || first.RemainingSeconds != 0 {
		t.Fatalf("snapshot = {elapsed %v, remaining %v}, want {5, 0}",
			first.ElapsedSeconds, first.RemainingSeconds)
	}

	// No mutator between polls: the later instant must not leak in.
	second := m.Snapshot(at(10))
	if second.State != StateFinished {
		t.Fatalf("State after second poll = %v, want StateFinished", second.State)
	}
	if second.ElapsedSeconds != 5 || second.RemainingSeconds != 0 {
		t.Fatalf("second snapshot = {elapsed %v, remaining %v}, want frozen {5, 0}",
			second.ElapsedSeconds, second.RemainingSeconds)
	}
}

func TestSnapshot_OverrunClampsWithoutFinishingPaused(t *testing.T) {
	// A paused timer past its target reports zero remaining but stays
	// Paused; only Running may auto-finish.
	m := New()
	m.SetMode(ModeDown)
	m.SetTargetSeconds(3)
	m.Start(at(0))
	m.Pause(at(4))

	snap := m.Snapshot(at(20))
	if snap.State != StatePaused {
		t.Fatalf("State = %v, want StatePaused", snap.State)
	}
	if snap.RemainingSeconds != 0 {
		t.Fatalf("RemainingSeconds = %v, want 0", snap.RemainingSeconds)
	}
}

func TestReset_FromAnyState(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(m *Model)
	}{
		{"idle", func(m *Model) {}},
		{"running", func(m *Model) { m.Start(at(0)) }},
		{"paused", func(m *Model) { m.Start(at(0)); m.Pause(at(3)) }},
		{"finished", func(m *Model) {
			m.SetMode(ModeDown)
			m.SetTargetSeconds(1)
			m.Start(at(0))
			m.Snapshot(at(2))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New()
			tc.prepare(m)
			m.Reset()
			if m.State() != StateIdle {
				t.Fatalf("State = %v, want StateIdle", m.State())
			}
			if got := m.Snapshot(at(100)).ElapsedSeconds; got != 0 {
				t.Fatalf("ElapsedSeconds after reset = %v, want 0", got)
			}
		})
	}
}

func TestSetMode_SameModeIsNoop(t *testing.T) {
	m := New()
	m.SetTargetSeconds(42)
	m.Start(at(0))
	m.Pause(at(3))

	m.SetMode(ModeUp)

	if m.State() != StatePaused {
		t.Fatalf("State = %v, want StatePaused", m.State())
	}
	if m.TargetSeconds() != 42 {
		t.Fatalf("TargetSeconds = %d, want 42", m.TargetSeconds())
	}
	if got := m.Snapshot(at(3)).ElapsedSeconds; got != 3 {
		t.Fatalf("ElapsedSeconds = %v, want 3", got)
	}
}

func TestSetMode_SwitchResetsEverything(t *testing.T) {
	m := New()
	m.Start(at(0))
	m.Pause(at(7))

	m.SetMode(ModeDown)

	if m.State() != StateIdle {
		t.Fatalf("State = %v, want StateIdle", m.State())
	}
	if got := m.Snapshot(at(10)).ElapsedSeconds; got != 0 {
		t.Fatalf("ElapsedSeconds = %v, want 0", got)
	}
}

func TestSetTargetSeconds_ClampsNegative(t *testing.T) {
	m := New()
	m.SetTargetSeconds(-30)
	if m.TargetSeconds() != 0 {
		t.Fatalf("TargetSeconds = %d, want 0", m.TargetSeconds())
	}
}

func TestSetTargetSeconds_IdleCountDownClearsBankedTime(t *testing.T) {
	m := New()
	m.SetMode(ModeDown)
	m.SetTargetSeconds(10)
	m.Start(at(0))
	m.Snapshot(at(11)) // finish

	m.SetTargetSeconds(20)
	snap := m.Snapshot(at(12))
	if snap.ElapsedSeconds != 0 {
		t.Fatalf("ElapsedSeconds = %v, want 0", snap.ElapsedSeconds)
	}
	if snap.RemainingSeconds != 20 {
		t.Fatalf("RemainingSeconds = %v, want 20", snap.RemainingSeconds)
	}
}

func TestSetTargetSeconds_PausedKeepsBankedTime(t *testing.T) {
	m := New()
	m.SetMode(ModeDown)
	m.SetTargetSeconds(10)
	m.Start(at(0))
	m.Pause(at(4))

	m.SetTargetSeconds(30)

	snap := m.Snapshot(at(9))
	if snap.ElapsedSeconds != 4 {
		t.Fatalf("ElapsedSeconds = %v, want 4", snap.ElapsedSeconds)
	}
	if snap.RemainingSeconds != 26 {
		t.Fatalf("RemainingSeconds = %v, want 26", snap.RemainingSeconds)
	}
}

func TestResume_OnlyFromPaused(t *testing.T) {
	m := New()
	m.Resume(at(5))
	if m.State() != StateIdle {
		t.Fatalf("State = %v, want StateIdle", m.State())
	}

	m.Start(at(10))
	m.Resume(at(20)) // no-op while running
	if got := m.Snapshot(at(22)).ElapsedSeconds; got != 12 {
		t.Fatalf("ElapsedSeconds = %v, want 12", got)
	}
}

func TestPause_OnlyFromRunning(t *testing.T) {
	m := New()
	m.Pause(at(5))
	if m.State() != StateIdle {
		t.Fatalf("State = %v, want StateIdle", m.State())
	}
}

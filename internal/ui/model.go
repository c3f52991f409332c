package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgrette/perch/internal/clock"
	"github.com/sgrette/perch/internal/config"
	"github.com/sgrette/perch/internal/prefs"
	"github.com/sgrette/perch/internal/timer"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Clock     clock.Clock
	Timer     *timer.Model
	Config    config.Config
	ThemeName string
	Compact   bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea. It owns the timer
// model exclusively; every mutation and query happens on the program's
// single update goroutine.
type Model struct {
	ctx       context.Context
	clk       clock.Clock
	timer     *timer.Model
	cfg       config.Config
	prefsPath string

	theme  Theme
	styles Styles
	keys   keyMap

	width  int
	height int

	compact  bool
	showHelp bool

	snap  timer.Snapshot
	entry entryState

	// tickGen identifies the live poll loop. Bumping it orphans any tick
	// already in flight, which makes cancellation idempotent.
	tickGen int

	// flash state for the countdown-complete animation. flashGen works
	// like tickGen; flashLeft counts the half-periods still to show.
	flashGen  int
	flashLeft int
	flashOn   bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	t := opts.Timer
	if t == nil {
		t = timer.New()
	}

	cfg := opts.Config
	if cfg.TickInterval <= 0 {
		cfg = config.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	m := Model{
		ctx:       ctx,
		clk:       clk,
		timer:     t,
		cfg:       cfg,
		prefsPath: opts.PrefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		keys:      DefaultKeyMap(),
		compact:   opts.Compact,
		entry:     newEntryState(t.TargetSeconds()),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// Resume polling on the current generation if the timer was handed
	// over mid-run.
	if m.snap.State == timer.StateRunning {
		return m.tickCmd()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case flashMsg:
		if msg.gen != m.flashGen {
			return m, nil
		}
		cmd := m.flashStep()
		return m, cmd
	}

	return m, nil
}

// handleTick processes one poll of the running timer.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen {
		// A cancelled loop's tick arriving late. Drop it.
		return m, nil
	}

	m.refresh()

	switch m.snap.State {
	case timer.StateRunning:
		return m, m.tickCmd()
	case timer.StateFinished:
		m.stopTick()
		cmd := m.startFlash()
		return m, tea.Batch(cmd, ringBell())
	default:
		m.stopTick()
		return m, nil
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While an entry field is focused, keys edit the target.
	if m.entry.focused() {
		switch {
		case key.Matches(msg, m.keys.Apply):
			m.applyTarget()
			m.entry.blur()
			return m, nil
		case key.Matches(msg, m.keys.Escape):
			m.entry.blur()
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			cmd := m.entry.cycleFocus(1)
			return m, cmd
		case key.Matches(msg, m.keys.PrevField):
			cmd := m.entry.cycleFocus(-1)
			return m, cmd
		}
		cmd := m.entry.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		cmd := m.onToggle()
		return m, cmd

	case key.Matches(msg, m.keys.Reset):
		m.onReset()
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		m.onSwitchMode()
		return m, nil

	case key.Matches(msg, m.keys.Compact), key.Matches(msg, m.keys.Apply):
		// Enter mirrors the compact toggle when no field is focused.
		m.compact = !m.compact
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		if m.entryEnabled() {
			cmd := m.entry.cycleFocus(1)
			return m, cmd
		}
	case key.Matches(msg, m.keys.PrevField):
		if m.entryEnabled() {
			cmd := m.entry.cycleFocus(-1)
			return m, cmd
		}
	}

	return m, nil
}

// onToggle starts, pauses, or resumes the timer.
func (m *Model) onToggle() tea.Cmd {
	m.stopFlash()
	now := m.clk.Now()

	if m.timer.State() == timer.StateRunning {
		m.timer.Pause(now)
		m.stopTick()
		m.refresh()
		return nil
	}

	if m.timer.Mode() == timer.ModeDown {
		m.applyTarget()
		if m.timer.TargetSeconds() <= 0 {
			// Nothing to count down from.
			m.refresh()
			return nil
		}
	}

	if m.timer.State() == timer.StatePaused {
		m.timer.Resume(now)
	} else {
		m.timer.Start(now)
	}
	m.refresh()
	return m.startTick()
}

// onReset returns the timer to idle.
func (m *Model) onReset() {
	m.stopFlash()
	m.stopTick()
	m.timer.Reset()
	m.refresh()
}

// onSwitchMode flips between counting up and counting down.
func (m *Model) onSwitchMode() {
	m.stopFlash()
	m.stopTick()
	m.entry.blur()

	if m.timer.Mode() == timer.ModeUp {
		m.timer.SetMode(timer.ModeDown)
		m.applyTarget()
	} else {
		m.timer.SetMode(timer.ModeUp)
	}
	m.refresh()
}

// applyTarget pushes the entry fields into the timer and normalizes the
// fields back from the stored value.
func (m *Model) applyTarget() {
	m.timer.SetTargetSeconds(m.entry.totalSeconds())
	m.entry.setFromTarget(m.timer.TargetSeconds())
	m.refresh()
}

// entryEnabled reports whether the target fields accept input: only while
// counting down and not actively timing.
func (m *Model) entryEnabled() bool {
	if m.timer.Mode() != timer.ModeDown {
		return false
	}
	s := m.timer.State()
	return s == timer.StateIdle || s == timer.StateFinished
}

// refresh re-queries the timer at the current instant.
func (m *Model) refresh() {
	m.snap = m.timer.Snapshot(m.clk.Now())
}

// savePrefs persists theme and layout choices. Best effort.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact})
}

// Poll loop

type tickMsg struct{ gen int }

// startTick begins a fresh poll loop, orphaning any previous one.
func (m *Model) startTick() tea.Cmd {
	m.tickGen++
	return m.tickCmd()
}

// stopTick cancels the poll loop. Safe to call when no loop is running.
func (m *Model) stopTick() {
	m.tickGen++
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(m.cfg.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Flash loop

type flashMsg struct{ gen int }

// startFlash begins the countdown-complete animation. A flash already in
// progress keeps running.
func (m *Model) startFlash() tea.Cmd {
	if m.flashLeft > 0 {
		return nil
	}
	m.flashGen++
	m.flashLeft = m.cfg.FlashCount
	return m.flashStep()
}

// flashStep advances the animation one half-period and schedules the next.
func (m *Model) flashStep() tea.Cmd {
	if m.flashLeft <= 0 {
		m.flashOn = false
		return nil
	}
	m.flashLeft--
	m.flashOn = m.flashLeft%2 == 0
	return m.flashCmd()
}

// stopFlash cancels the animation and restores the normal panel. Safe to
// call when no flash is running.
func (m *Model) stopFlash() {
	m.flashGen++
	m.flashLeft = 0
	m.flashOn = false
}

func (m Model) flashCmd() tea.Cmd {
	gen := m.flashGen
	return tea.Tick(m.cfg.FlashInterval, func(time.Time) tea.Msg {
		return flashMsg{gen: gen}
	})
}

// ringBell emits the terminal bell once. BEL is non-printing, so writing
// it directly does not disturb the alt screen.
func ringBell() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stdout, "\a")
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sgrette/perch/internal/timer"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.placePanel(m.renderHelp())
	}
	return m.placePanel(m.renderPanel())
}

// placePanel floats the panel in the top-right corner of the terminal,
// mirroring where the original desktop widget parked itself.
func (m Model) placePanel(panel string) string {
	if m.width <= 0 || m.height <= 0 {
		return panel
	}
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Right, lipgloss.Top,
		panel,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

// renderPanel draws the timer widget.
func (m Model) renderPanel() string {
	style := m.styles.Panel
	switch {
	case m.flashOn:
		style = m.styles.PanelFlash
	case m.snap.State == timer.StateRunning:
		style = m.styles.PanelRunning
	}

	var rows []string
	rows = append(rows, m.renderReadout())

	if !m.compact {
		rows = append(rows, "", m.renderStatusLine())
		if m.snap.Mode == timer.ModeDown {
			rows = append(rows, m.entry.render(m.styles, m.entryEnabled()))
		}
		rows = append(rows, m.renderHints())
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// renderReadout draws the time display: big glyphs normally, a single
// line in compact mode.
func (m Model) renderReadout() string {
	text := m.displayText()

	digits := m.styles.Digits
	if m.snap.State == timer.StateFinished {
		digits = m.styles.DigitsFinished
	}

	if m.compact {
		return digits.Render(text)
	}
	return digits.Render(renderBigDigits(text))
}

// displayText picks what the readout shows: elapsed when counting up,
// remaining when counting down.
func (m Model) displayText() string {
	if m.snap.HasRemaining {
		return timer.FormatHMS(m.snap.RemainingSeconds)
	}
	return timer.FormatHMS(m.snap.ElapsedSeconds)
}

// renderStatusLine draws the mode and state labels.
func (m Model) renderStatusLine() string {
	mode := "count up"
	if m.snap.Mode == timer.ModeDown {
		mode = "count down"
	}

	var state lipgloss.Style
	switch m.snap.State {
	case timer.StateRunning:
		state = m.styles.SuccessText
	case timer.StatePaused:
		state = m.styles.WarningText
	case timer.StateFinished:
		state = m.styles.DangerText
	default:
		state = m.styles.MutedText
	}

	return m.styles.MutedText.Render(mode+"  ·  ") + state.Render(m.snap.State.String())
}

// renderHints draws the one-line key reference.
func (m Model) renderHints() string {
	hints := []string{
		"space start/pause",
		"r reset",
		"m mode",
		"c compact",
		"? help",
		"q quit",
	}
	return m.styles.FaintText.Render(strings.Join(hints, "  "))
}

// renderHelp draws the full key binding overlay.
func (m Model) renderHelp() string {
	bindings := []struct{ key, desc string }{
		{"space", "Start or pause the timer"},
		{"r", "Reset to idle"},
		{"m", "Switch count up / count down"},
		{"tab", "Edit the countdown target"},
		{"enter", "Apply target / toggle compact"},
		{"c", "Toggle compact view"},
		{"T", "Cycle theme"},
		{"h, ?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("perch keys"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(m.styles.Text.Render(padRight(bind.key, 12)))
		b.WriteString(m.styles.MutedText.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("press any key to close"))

	return m.styles.Panel.Render(b.String())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

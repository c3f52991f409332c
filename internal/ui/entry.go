package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// entryField indices into entryState.inputs.
const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldCount
)

// entryState holds the hours/minutes/seconds target entry row.
type entryState struct {
	inputs [fieldCount]textinput.Model
	focus  int // index of the focused field, or -1
}

func newEntryState(targetSeconds int) entryState {
	e := entryState{focus: -1}
	for i := range e.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 3
		ti.Width = 3
		e.inputs[i] = ti
	}
	e.setFromTarget(targetSeconds)
	return e
}

// setFromTarget refills the fields from a target in seconds.
func (e *entryState) setFromTarget(targetSeconds int) {
	if targetSeconds < 0 {
		targetSeconds = 0
	}
	e.inputs[fieldHours].SetValue(strconv.Itoa(targetSeconds / 3600))
	e.inputs[fieldMinutes].SetValue(strconv.Itoa((targetSeconds % 3600) / 60))
	e.inputs[fieldSeconds].SetValue(strconv.Itoa(targetSeconds % 60))
}

// totalSeconds reads the fields back into a target. Blank or non-numeric
// fields count as zero; negatives clamp to zero.
func (e *entryState) totalSeconds() int {
	h := parseFieldSeconds(e.inputs[fieldHours].Value())
	m := parseFieldSeconds(e.inputs[fieldMinutes].Value())
	s := parseFieldSeconds(e.inputs[fieldSeconds].Value())
	return h*3600 + m*60 + s
}

func parseFieldSeconds(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// focused reports whether any field has keyboard focus.
func (e *entryState) focused() bool { return e.focus >= 0 }

// focusField moves focus to the given field, blurring the rest.
func (e *entryState) focusField(idx int) tea.Cmd {
	var cmd tea.Cmd
	for i := range e.inputs {
		if i == idx {
			cmd = e.inputs[i].Focus()
		} else {
			e.inputs[i].Blur()
		}
	}
	e.focus = idx
	return cmd
}

// cycleFocus moves focus forward or backward through the fields, entering
// at the first (or last) field when nothing is focused yet.
func (e *entryState) cycleFocus(delta int) tea.Cmd {
	next := e.focus + delta
	switch {
	case e.focus < 0 && delta > 0:
		next = 0
	case e.focus < 0 && delta < 0:
		next = fieldCount - 1
	case next < 0:
		next = fieldCount - 1
	case next >= fieldCount:
		next = 0
	}
	return e.focusField(next)
}

// blur drops focus from all fields.
func (e *entryState) blur() {
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
	e.focus = -1
}

// update routes a message to the focused field.
func (e *entryState) update(msg tea.Msg) tea.Cmd {
	if e.focus < 0 {
		return nil
	}
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

// render draws the entry row.
func (e *entryState) render(styles Styles, enabled bool) string {
	if !enabled {
		return styles.FaintText.Render("target locked while timing")
	}
	label := styles.EntryLabel
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		e.inputs[fieldHours].View(), label.Render("h"),
		e.inputs[fieldMinutes].View(), label.Render("m"),
		e.inputs[fieldSeconds].View(), label.Render("s"),
	)
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the widget panel.
type Theme struct {
	Name string

	// Base colors
	Background string // outermost background
	Surface    string // panel background
	FlashBg    string // panel background during the completion flash

	// Border colors
	Border      string // resting border
	BorderFocus string // border while running

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		PanelRunning: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		PanelFlash: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Background(lipgloss.Color(t.FlashBg)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		Digits: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		DigitsFinished: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		EntryLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Panel        lipgloss.Style
	PanelRunning lipgloss.Style
	PanelFlash   lipgloss.Style

	Digits         lipgloss.Style
	DigitsFinished lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	EntryLabel lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		FlashBg:    "#c94f6d", // red

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#1f1f28", // sumiInk1
		Surface:    "#2a2a37", // sumiInk2
		FlashBg:    "#c34043", // autumnRed

		Border:      "#54546d", // sumiInk4
		BorderFocus: "#7e9cd8", // crystalBlue

		Text:    "#dcd7ba", // fujiWhite
		Muted:   "#727169", // fujiGray
		Faint:   "#9cabca", // springBlue
		Accent:  "#7e9cd8", // crystalBlue
		Success: "#98bb6c", // springGreen
		Warning: "#e6c384", // carpYellow
		Danger:  "#c34043", // autumnRed
	}
}

func slateTheme() Theme {
	// Neutral light-on-dark gray palette for low-color terminals.
	return Theme{
		Name: "Slate",

		Background: "#1c1f26",
		Surface:    "#262a33",
		FlashBg:    "#b91c1c",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",

		Text:    "#e5e9f0",
		Muted:   "#7b88a1",
		Faint:   "#616e88",
		Accent:  "#88c0d0",
		Success: "#a3be8c",
		Warning: "#ebcb8b",
		Danger:  "#bf616a",
	}
}

package ui

import (
	"codeslides/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Theme is the resolved theme handed to everything that renders.
type Theme struct {
	Dark bool
	// Style is the highlighter theme identifier for this theme.
	Style string
}

// ThemeChangedMsg is published whenever the resolved theme changes.
type ThemeChangedMsg struct {
	Theme Theme
}

// DetectDarkBackground asks the terminal for its background color. Call it
// before the program takes over stdin.
func DetectDarkBackground() bool {
	return termenv.HasDarkBackground()
}

var themeCycle = []config.ThemeMode{config.ThemeSystem, config.ThemeLight, config.ThemeDark}

// ThemeSignal tracks the theme preference and resolves it against the
// terminal. The presentation only reads it.
type ThemeSignal struct {
	mode       config.ThemeMode
	systemDark bool
	darkStyle  string
	lightStyle string
}

func NewThemeSignal(mode config.ThemeMode, systemDark bool, darkStyle, lightStyle string) *ThemeSignal {
	return &ThemeSignal{
		mode:       mode,
		systemDark: systemDark,
		darkStyle:  darkStyle,
		lightStyle: lightStyle,
	}
}

func (s *ThemeSignal) Mode() config.ThemeMode {
	return s.mode
}

// Current resolves the preference into a Theme.
func (s *ThemeSignal) Current() Theme {
	dark := s.systemDark
	switch s.mode {
	case config.ThemeDark:
		dark = true
	case config.ThemeLight:
		dark = false
	}
	if dark {
		return Theme{Dark: true, Style: s.darkStyle}
	}
	return Theme{Dark: false, Style: s.lightStyle}
}

// Cycle moves to the next preference (system, light, dark) and returns a
// command publishing the change, or nil if the resolved theme is unchanged.
func (s *ThemeSignal) Cycle() tea.Cmd {
	next := themeCycle[0]
	for i, m := range themeCycle {
		if m == s.mode {
			next = themeCycle[(i+1)%len(themeCycle)]
			break
		}
	}
	return s.SetMode(next)
}

// SetMode sets the preference explicitly.
func (s *ThemeSignal) SetMode(mode config.ThemeMode) tea.Cmd {
	before := s.Current()
	s.mode = mode
	after := s.Current()
	if before == after {
		return nil
	}
	return func() tea.Msg {
		return ThemeChangedMsg{Theme: after}
	}
}

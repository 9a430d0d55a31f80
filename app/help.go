package app

import (
	"fmt"

	"codeslides/keys"
	"codeslides/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// title returns the overlay title.
	title() string
	// toContent returns the help UI content.
	toContent() string
}

type helpTypeGeneral struct{}

type helpSection struct {
	header string
	keys   []keys.KeyName
}

var generalHelpSections = []helpSection{
	{"Slides:", []keys.KeyName{keys.KeyPrev, keys.KeyNext, keys.KeyFirst, keys.KeyLast}},
	{"Code:", []keys.KeyName{
		keys.KeyScrollUp, keys.KeyScrollDown,
		keys.KeyToggleSplit, keys.KeyPrimaryTab, keys.KeySecondaryTab, keys.KeyTab,
		keys.KeyCopy, keys.KeyCopySecondary,
	}},
	{"Decks:", []keys.KeyName{keys.KeySelectDeck, keys.KeyPrevDeck, keys.KeyNextDeck}},
	{"Other:", []keys.KeyName{keys.KeyTheme, keys.KeyHelp, keys.KeyQuit}},
}

func (h helpTypeGeneral) title() string {
	return "Code Slides"
}

// toContent lists the live bindings, so overrides from the keybindings file
// show up here too.
func (h helpTypeGeneral) toContent() string {
	lines := []string{
		"Step through code examples with animated transitions.",
	}
	for _, section := range generalHelpSections {
		lines = append(lines, "", headerStyle.Render(section.header))
		for _, name := range section.keys {
			help := keys.GlobalkeyBindings[name].Help()
			lines = append(lines,
				keyStyle.Render(fmt.Sprintf("%-10s", help.Key))+descStyle.Render("- "+help.Desc))
		}
	}
	lines = append(lines, "", dimStyle.Render("Split view and tabs only apply to slides with a second snippet."))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"})
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// showHelpScreen displays the help screen overlay.
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) (tea.Model, tea.Cmd) {
	m.textOverlay = overlay.NewTextOverlay(helpType.title(), helpType.toContent())
	m.textOverlay.OnDismiss = onDismiss
	if m.width > 0 && m.height > 0 {
		m.textOverlay.SetSize(m.calculateOverlayDimensions())
	}
	m.state = stateHelp
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.textOverlay.HandleKeyPress(msg) {
		m.state = stateDefault
		m.textOverlay = nil
	}
	return m, nil
}

package overlay

import (
	"fmt"
	"strings"

	"codeslides/keys"
	"codeslides/slides"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const deckSelectorBorderColor = "#04B575"

var (
	deckSelectorStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(deckSelectorBorderColor)).
				Padding(1, 2)
	deckSelectorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(deckSelectorBorderColor))
	deckCursorStyle = lipgloss.NewStyle().Bold(true)
	deckMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// DeckSelectorOverlay lists the registered decks and reports the one picked.
type DeckSelectorOverlay struct {
	names    []string
	cursor   int
	current  string
	onSelect func(name string)
	title    string
}

// NewDeckSelectorOverlay opens with the cursor on current. onSelect is only
// called when a deck is picked, not on cancel.
func NewDeckSelectorOverlay(current string, onSelect func(name string)) *DeckSelectorOverlay {
	o := &DeckSelectorOverlay{
		names:    slides.Names(),
		current:  current,
		onSelect: onSelect,
		title:    "Select a Deck",
	}
	for i, name := range o.names {
		if name == current {
			o.cursor = i
		}
	}
	return o
}

// Selected returns the deck under the cursor.
func (o *DeckSelectorOverlay) Selected() string {
	return o.names[o.cursor]
}

// HandleKeyPress processes a key press and updates the state.
// Returns true if the overlay should be closed.
func (o *DeckSelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyUp]):
		if o.cursor > 0 {
			o.cursor--
		}
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyDown]):
		if o.cursor < len(o.names)-1 {
			o.cursor++
		}
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEnter]):
		o.pick()
		return true
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEsc]):
		return true
	default:
		// 1-9 jump straight to a deck.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(o.names) {
				o.cursor = i
				o.pick()
				return true
			}
		}
	}
	return false
}

func (o *DeckSelectorOverlay) pick() {
	if o.onSelect != nil {
		o.onSelect(o.names[o.cursor])
	}
}

// Render renders the deck list in a bordered box.
func (o *DeckSelectorOverlay) Render() string {
	var content strings.Builder

	for i, name := range o.names {
		cursor := "  "
		if i == o.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, slides.DisplayName(name))
		if i == o.cursor {
			line = deckCursorStyle.Render(line)
		}

		meta := fmt.Sprintf("%d slides", len(slides.MustLookup(name)))
		if name == o.current {
			meta += ", current"
		}
		content.WriteString(line + " " + deckMutedStyle.Render("("+meta+")"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(deckMutedStyle.Render("↑/↓: Move | Enter: Open | Esc: Cancel"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		deckSelectorTitleStyle.Render(o.title),
		"",
		content.String())
	return deckSelectorStyle.Render(body)
}

package overlay

import (
	"strings"
	"testing"

	"codeslides/slides"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDeckSelectorOverlay(t *testing.T) {
	var picked []string
	o := NewDeckSelectorOverlay(slides.BasicButtons, func(name string) {
		picked = append(picked, name)
	})
	assert.Equal(t, slides.BasicButtons, o.Selected())

	assert.False(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, slides.BasicButtons, o.Selected(), "cursor stops at the last deck")

	assert.False(t, o.HandleKeyPress(runes("k")))
	assert.Equal(t, slides.FunctionalComponents, o.Selected())
	assert.False(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, slides.FunctionalComponents, o.Selected())

	assert.True(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, []string{slides.FunctionalComponents}, picked)
}

func TestDeckSelectorOverlayCancel(t *testing.T) {
	called := false
	o := NewDeckSelectorOverlay(slides.FunctionalComponents, func(string) { called = true })
	o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, called)
}

func TestDeckSelectorOverlayDigits(t *testing.T) {
	var picked string
	o := NewDeckSelectorOverlay(slides.FunctionalComponents, func(name string) { picked = name })

	assert.False(t, o.HandleKeyPress(runes("9")))
	assert.Empty(t, picked)

	assert.True(t, o.HandleKeyPress(runes("2")))
	assert.Equal(t, slides.BasicButtons, picked)
}

func TestDeckSelectorOverlayRender(t *testing.T) {
	o := NewDeckSelectorOverlay(slides.BasicButtons, nil)
	out := o.Render()
	assert.Contains(t, out, "Select a Deck")
	assert.Contains(t, out, "1. FunctionalComponents (5 slides)")
	assert.Contains(t, out, "> 2. BasicButtons")
	assert.Contains(t, out, "4 slides, current")
}

func TestTextOverlay(t *testing.T) {
	dismissed := false
	o := NewTextOverlay("Help", "line")
	o.OnDismiss = func() { dismissed = true }
	o.SetSize(40, 20)

	out := o.Render()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "line")

	assert.True(t, o.HandleKeyPress(runes("j")), "short content closes on any key")
	assert.True(t, o.Dismissed)
	assert.True(t, dismissed)
}

func TestTextOverlayScrolls(t *testing.T) {
	content := strings.TrimSuffix(strings.Repeat("line\n", 50), "\n")
	o := NewTextOverlay("Help", content)
	o.SetSize(40, 20)

	assert.Contains(t, o.Render(), "to scroll")
	assert.False(t, o.HandleKeyPress(runes("j")))
	assert.False(t, o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyUp}))
	assert.False(t, o.Dismissed)

	assert.True(t, o.HandleKeyPress(runes("x")))
	assert.True(t, o.Dismissed)
}

func TestPlaceOverlay(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat("..........\n", 5), "\n")
	out := PlaceOverlay("ab\ncd", bg)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....ab....", stripANSI(lines[1]))
	assert.Equal(t, "....cd....", stripANSI(lines[2]))
	assert.Equal(t, "..........", lines[4])
	for _, l := range lines {
		assert.Equal(t, 10, ansi.PrintableRuneWidth(l))
	}
}

func TestPlaceOverlayTooLarge(t *testing.T) {
	assert.Equal(t, "abcdef", PlaceOverlay("abcdef", "..."))
}

func TestCutLeft(t *testing.T) {
	assert.Equal(t, "cd", cutLeft("abcd", 2))
	assert.Equal(t, "\x1b[1mcd", cutLeft("\x1b[1mabcd", 2))
	// The second cell of a wide rune becomes a space.
	assert.Equal(t, " b", cutLeft("世b", 1))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		if r == ansi.Marker {
			inEsc = true
		}
		if inEsc {
			if ansi.IsTerminator(r) {
				inEsc = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"codeslides/highlight"
	"codeslides/presenter"
	"codeslides/slides"

	"github.com/muesli/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var darkTheme = Theme{Dark: true, Style: "monokai"}

func newTestPresentation(t *testing.T, deck string, animation time.Duration) (*Presentation, *fakeClipboard, *time.Time) {
	t.Helper()
	cb := &fakeClipboard{}
	p := NewPresentation(slides.MustLookup(deck), PresentationOptions{
		Language:    "tsx",
		LineNumbers: true,
		SplitView:   true,
		Animation:   highlight.AnimationOptions{Duration: animation, Stagger: 0.3},
		Clipboard:   cb.write,
	})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }
	p.SetSize(120, 40)
	return p, cb, &now
}

func newUIHighlighter(t *testing.T) *highlight.Highlighter {
	t.Helper()
	h, err := highlight.New(context.Background(), highlight.Options{
		Languages: []string{"tsx"},
		Themes:    []string{"monokai", "github"},
	})
	require.NoError(t, err)
	return h
}

func TestPresentationBasicButtonsWalkthrough(t *testing.T) {
	p, _, _ := newTestPresentation(t, slides.BasicButtons, 0)
	h := newUIHighlighter(t)
	c := p.Controller()

	out := p.View(h, darkTheme)
	assert.Contains(t, out, "Eenvoudige Button Component")
	assert.Contains(t, out, "1 / 4")
	assert.NotContains(t, out, "split view")
	assert.Equal(t, 1, strings.Count(out, "⧉ Copy"))

	p.Next()
	out = p.View(h, darkTheme)
	assert.Equal(t, 1, c.Index())
	assert.Contains(t, out, "2 / 4")
	assert.Contains(t, out, "close split")
	assert.Contains(t, out, "src/components/Button.jsx")
	assert.Contains(t, out, "src/app/page.jsx")
	assert.Equal(t, 2, strings.Count(out, "⧉ Copy"))

	p.ToggleSplitView()
	out = p.View(h, darkTheme)
	assert.False(t, c.IsSplitView())
	assert.True(t, c.ShowTabs())
	assert.Contains(t, out, "Primary")
	assert.Contains(t, out, "Secondary")
	assert.Equal(t, 1, strings.Count(out, "⧉ Copy"))

	p.SetActiveTab(presenter.TabSecondary)
	out = p.View(h, darkTheme)
	assert.Contains(t, out, "src/app/page.jsx")

	p.Last()
	p.Next()
	assert.Equal(t, 3, c.Index())
	assert.Contains(t, p.View(h, darkTheme), "4 / 4")
}

func TestPresentationViewLayouts(t *testing.T) {
	p, _, _ := newTestPresentation(t, slides.BasicButtons, 0)
	h := newUIHighlighter(t)
	p.Next()
	slide := p.Controller().Current()
	require.True(t, slide.HasSecondary())

	out := p.View(h, darkTheme)
	plain := strings.Join(plainRows(out), "\n")
	assert.Equal(t, 1, strings.Count(plain, "src/components/Button.jsx"))
	assert.Equal(t, 1, strings.Count(plain, "src/app/page.jsx"))
	assert.NotContains(t, plain, "Primary")
	assertCodeRows(t, out, slide.Code)
	assertCodeRows(t, out, slide.SecondaryCode.Code)

	p.ToggleSplitView()
	out = p.View(h, darkTheme)
	plain = strings.Join(plainRows(out), "\n")
	assert.Equal(t, 1, strings.Count(plain, "src/components/Button.jsx"))
	assert.NotContains(t, plain, "src/app/page.jsx")
	assert.Contains(t, plain, "Primary")
	assert.Contains(t, plain, "Secondary")
	assert.Equal(t, 1, strings.Count(plain, "⧉ Copy"))
	assertCodeRows(t, out, slide.Code)

	p.SetActiveTab(presenter.TabSecondary)
	out = p.View(h, darkTheme)
	plain = strings.Join(plainRows(out), "\n")
	assert.Contains(t, plain, "src/app/page.jsx")
	assertCodeRows(t, out, slide.SecondaryCode.Code)
}

func TestPresentationSplitToggleHiddenWithoutSecondary(t *testing.T) {
	p, _, _ := newTestPresentation(t, slides.BasicButtons, 0)
	p.ToggleSplitView()
	assert.True(t, p.Controller().IsSplitView())
	assert.Len(t, p.Controller().Panels(), 1)
}

func TestPresentationCopy(t *testing.T) {
	p, cb, _ := newTestPresentation(t, slides.BasicButtons, 0)
	p.Next()

	cmd := p.CopyFirst()
	require.NotNil(t, cmd)
	reset := p.Update(cmd())
	require.NotNil(t, reset)
	assert.True(t, p.Copied(presenter.PanelPrimary))
	assert.False(t, p.Copied(presenter.PanelSecondary))
	assert.Equal(t, []string{p.Controller().Current().Code}, cb.writes)

	cmd = p.Copy(presenter.PanelSecondary)
	require.NotNil(t, cmd)
	p.Update(cmd())
	assert.True(t, p.Copied(presenter.PanelSecondary))
	assert.Equal(t, p.Controller().Current().SecondaryCode.Code, cb.writes[1])

	p.Update(CopyResetMsg{Kind: presenter.PanelPrimary, Gen: p.blocks[presenter.PanelPrimary].copyGen})
	assert.False(t, p.Copied(presenter.PanelPrimary))
	assert.True(t, p.Copied(presenter.PanelSecondary))

	// Moving on drops the indicator with the old code.
	p.Next()
	assert.False(t, p.Copied(presenter.PanelSecondary))
}

func TestPresentationCopyHiddenPanel(t *testing.T) {
	p, cb, _ := newTestPresentation(t, slides.BasicButtons, 0)
	assert.Nil(t, p.Copy(presenter.PanelSecondary))
	assert.Empty(t, cb.writes)
}

func TestPresentationAnimation(t *testing.T) {
	p, _, now := newTestPresentation(t, slides.BasicButtons, 800*time.Millisecond)

	cmd := p.Next()
	require.NotNil(t, cmd)
	assert.True(t, p.Animating())

	// A second navigation while animating does not start another frame loop.
	assert.Nil(t, p.Next())

	*now = now.Add(100 * time.Millisecond)
	assert.NotNil(t, p.Update(AnimationFrameMsg{}))
	assert.True(t, p.Animating())

	*now = now.Add(time.Second)
	assert.Nil(t, p.Update(AnimationFrameMsg{}))
	assert.False(t, p.Animating())
}

func TestPresentationNoAnimationAtBounds(t *testing.T) {
	p, _, _ := newTestPresentation(t, slides.BasicButtons, 800*time.Millisecond)
	assert.Nil(t, p.Previous())
	assert.False(t, p.Animating())
}

func TestPresentationSetDeck(t *testing.T) {
	p, _, _ := newTestPresentation(t, slides.BasicButtons, 0)
	p.Last()
	p.SetDeck("FunctionalComponents", slides.MustLookup(slides.FunctionalComponents))
	assert.Equal(t, 0, p.Controller().Index())
	assert.Equal(t, "Functie Declaratie Basis", p.Controller().Current().Title)

	h := newUIHighlighter(t)
	assert.Contains(t, p.View(h, darkTheme), "FunctionalComponents · 1 / 5")
}

func TestPresentationViewWithoutSize(t *testing.T) {
	p := NewPresentation(slides.MustLookup(slides.BasicButtons), PresentationOptions{Language: "tsx"})
	assert.Empty(t, p.View(newUIHighlighter(t), darkTheme))
}

// plainRows splits rendered output into rows with the color codes removed.
func plainRows(s string) []string {
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
	return strings.Split(b.String(), "\n")
}

// assertCodeRows checks that code is drawn on consecutive rows, one numbered
// row per source line.
func assertCodeRows(t *testing.T, view, code string) {
	t.Helper()
	rows := plainRows(view)
	lines := strings.Split(code, "\n")

	first := -1
	for i, row := range rows {
		if strings.Contains(row, "1 "+lines[0]) {
			first = i
			break
		}
	}
	require.NotEqual(t, -1, first, "first line of %q not drawn", lines[0])
	require.LessOrEqual(t, first+len(lines), len(rows))
	for i, line := range lines {
		assert.Contains(t, rows[first+i], fmt.Sprintf("%d %s", i+1, line))
	}
}

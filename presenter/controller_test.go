package presenter

import (
	"testing"

	"codeslides/slides"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStopsAtLastSlide(t *testing.T) {
	for _, name := range slides.Names() {
		deck := slides.MustLookup(name)
		t.Run(name, func(t *testing.T) {
			c := New(deck)
			for i := 0; i < len(deck)-1; i++ {
				require.Equal(t, i, c.Index())
				c.Next()
				assert.Equal(t, i+1, c.Index())
			}
			c.Next()
			assert.Equal(t, len(deck)-1, c.Index())
			assert.False(t, c.CanNext())
		})
	}
}

func TestPreviousStopsAtFirstSlide(t *testing.T) {
	for _, name := range slides.Names() {
		c := New(slides.MustLookup(name))
		c.Previous()
		assert.Equal(t, 0, c.Index(), name)
		assert.False(t, c.CanPrevious(), name)
	}
}

func TestSetDeckResetsIndex(t *testing.T) {
	c := New(slides.MustLookup(slides.FunctionalComponents))
	c.Last()
	require.Equal(t, 4, c.Index())

	c.SetDeck(slides.MustLookup(slides.BasicButtons))
	assert.Equal(t, 0, c.Index())

	c.Next()
	c.SetDeck(slides.MustLookup(slides.BasicButtons))
	assert.Equal(t, 0, c.Index())
}

func TestToggleSplitViewIsInvolution(t *testing.T) {
	c := New(slides.MustLookup(slides.BasicButtons))
	before := c.IsSplitView()
	c.ToggleSplitView()
	assert.NotEqual(t, before, c.IsSplitView())
	c.ToggleSplitView()
	assert.Equal(t, before, c.IsSplitView())
}

func TestBasicButtonsNavigationScenario(t *testing.T) {
	c := New(slides.MustLookup(slides.BasicButtons))

	assert.Equal(t, 0, c.Index())
	assert.False(t, c.CanPrevious())
	assert.True(t, c.CanNext())

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	assert.True(t, c.CanPrevious())
	assert.True(t, c.CanNext())

	c.Next()
	assert.Equal(t, 3, c.Index())
	assert.False(t, c.CanNext())

	cur, total := c.Position()
	assert.Equal(t, 4, cur)
	assert.Equal(t, 4, total)
}

func TestPanelsWithSecondaryCode(t *testing.T) {
	c := New(slides.MustLookup(slides.BasicButtons))
	c.Next()
	require.True(t, c.Current().HasSecondary())

	panels := c.Panels()
	require.Len(t, panels, 2)
	assert.Equal(t, PanelPrimary, panels[0].Kind)
	assert.Equal(t, "src/components/Button.jsx", panels[0].Title)
	assert.Equal(t, PanelSecondary, panels[1].Kind)
	assert.Equal(t, "src/app/page.jsx", panels[1].Title)
	assert.True(t, c.ShowSplitToggle())
	assert.False(t, c.ShowTabs())

	c.ToggleSplitView()
	panels = c.Panels()
	require.Len(t, panels, 1)
	assert.Equal(t, PanelPrimary, panels[0].Kind)
	assert.Equal(t, c.Current().Code, panels[0].Code)
	assert.Equal(t, "src/components/Button.jsx", panels[0].Title, "captions do not depend on the layout")
	assert.True(t, c.ShowTabs())

	c.SetActiveTab(TabSecondary)
	panels = c.Panels()
	require.Len(t, panels, 1)
	assert.Equal(t, PanelSecondary, panels[0].Kind)
	assert.Equal(t, c.Current().SecondaryCode.Code, panels[0].Code)
}

func TestPanelsWithoutSecondaryCode(t *testing.T) {
	c := New(slides.MustLookup(slides.BasicButtons))
	require.False(t, c.Current().HasSecondary())

	for _, split := range []bool{true, false} {
		for _, tab := range []Tab{TabPrimary, TabSecondary} {
			if c.IsSplitView() != split {
				c.ToggleSplitView()
			}
			c.SetActiveTab(tab)

			panels := c.Panels()
			require.Len(t, panels, 1)
			assert.Equal(t, PanelPrimary, panels[0].Kind)
			assert.Equal(t, "src/components/Button.jsx", panels[0].Title)
			assert.False(t, c.ShowSplitToggle())
			assert.False(t, c.ShowTabs())
		}
	}
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "Primary", TabPrimary.String())
	assert.Equal(t, "Secondary", TabSecondary.String())
}

package presenter

import "codeslides/slides"

// Tab selects which snippet is shown when split view is off.
type Tab int

const (
	TabPrimary Tab = iota
	TabSecondary
)

func (t Tab) String() string {
	if t == TabSecondary {
		return "Secondary"
	}
	return "Primary"
}

// PanelKind identifies which code of the current slide a panel shows.
type PanelKind int

const (
	PanelPrimary PanelKind = iota
	PanelSecondary
)

// Panel is one code block the view has to draw for the current slide.
type Panel struct {
	Kind  PanelKind
	Title string
	Code  string
}

// Controller holds the navigation and view state of a mounted presentation.
// It is not safe for concurrent use; the bubbletea loop owns it.
type Controller struct {
	deck      slides.Deck
	index     int
	splitView bool
	activeTab Tab
}

// New mounts a controller on deck. Split view starts on and the primary tab
// is active.
func New(deck slides.Deck) *Controller {
	return &Controller{
		deck:      deck,
		splitView: true,
		activeTab: TabPrimary,
	}
}

// SetDeck swaps the active deck and starts over at the first slide.
func (c *Controller) SetDeck(deck slides.Deck) {
	c.deck = deck
	c.index = 0
}

func (c *Controller) Next() {
	if c.CanNext() {
		c.index++
	}
}

func (c *Controller) Previous() {
	if c.CanPrevious() {
		c.index--
	}
}

// First jumps to the first slide.
func (c *Controller) First() {
	c.index = 0
}

// Last jumps to the last slide.
func (c *Controller) Last() {
	c.index = len(c.deck) - 1
}

// CanNext is false on the last slide; the Next control renders disabled.
func (c *Controller) CanNext() bool {
	return c.index < len(c.deck)-1
}

// CanPrevious is false on the first slide.
func (c *Controller) CanPrevious() bool {
	return c.index > 0
}

func (c *Controller) Index() int {
	return c.index
}

// Position returns the 1-based slide number and the deck length.
func (c *Controller) Position() (current, total int) {
	return c.index + 1, len(c.deck)
}

// Current returns the slide being shown.
func (c *Controller) Current() slides.Slide {
	return c.deck[c.index]
}

func (c *Controller) ToggleSplitView() {
	c.splitView = !c.splitView
}

func (c *Controller) IsSplitView() bool {
	return c.splitView
}

func (c *Controller) SetActiveTab(tab Tab) {
	c.activeTab = tab
}

func (c *Controller) ActiveTab() Tab {
	return c.activeTab
}

// ShowSplitToggle reports whether the split view control is visible. Slides
// without secondary code hide it.
func (c *Controller) ShowSplitToggle() bool {
	return c.Current().HasSecondary()
}

// ShowTabs reports whether the primary/secondary switcher is visible.
func (c *Controller) ShowTabs() bool {
	return c.Current().HasSecondary() && !c.splitView
}

// Panels returns the code blocks to draw for the current slide, left to right.
func (c *Controller) Panels() []Panel {
	s := c.Current()
	if !s.HasSecondary() {
		return []Panel{{Kind: PanelPrimary, Title: s.Label(), Code: s.Code}}
	}
	if c.splitView {
		return []Panel{
			{Kind: PanelPrimary, Title: s.Label(), Code: s.Code},
			{Kind: PanelSecondary, Title: secondaryLabel(s.SecondaryCode), Code: s.SecondaryCode.Code},
		}
	}
	if c.activeTab == TabSecondary {
		return []Panel{{Kind: PanelSecondary, Title: secondaryLabel(s.SecondaryCode), Code: s.SecondaryCode.Code}}
	}
	return []Panel{{Kind: PanelPrimary, Title: s.Label(), Code: s.Code}}
}

func secondaryLabel(snippet *slides.CodeSnippet) string {
	if snippet.FileName != "" {
		return snippet.FileName
	}
	return snippet.Title
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"codeslides/highlight"
	"codeslides/log"
	"codeslides/presenter"
	"codeslides/slides"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

const animationFrameInterval = 40 * time.Millisecond

// AnimationFrameMsg advances running slide transitions by one frame.
type AnimationFrameMsg struct{}

// PresentationOptions configures a Presentation.
type PresentationOptions struct {
	// DeckName is shown in the footer.
	DeckName string
	// Language is the highlighter language for every snippet.
	Language    string
	LineNumbers bool
	SplitView   bool
	Animation   highlight.AnimationOptions
	// Clipboard defaults to SystemClipboard.
	Clipboard ClipboardFunc
}

var (
	slideTitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"})
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9E9E9E"})
	navButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blockBorderColor).
			Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}).
			Padding(0, 1)
	disabledNavButtonStyle = navButtonStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#4A4A4A"})
)

// Presentation renders one slide at a time: title, description, one or two
// code blocks and the previous/next controls.
type Presentation struct {
	controller *presenter.Controller
	blocks     map[presenter.PanelKind]*CodeBlock
	tabbed     *TabbedWindow
	markdown   *MarkdownCache

	transitions map[presenter.PanelKind]*highlight.Transition
	animating   bool

	opts     PresentationOptions
	deckName string
	now      func() time.Time

	width  int
	height int
}

func NewPresentation(deck slides.Deck, opts PresentationOptions) *Presentation {
	c := presenter.New(deck)
	if !opts.SplitView {
		c.ToggleSplitView()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard
	}
	p := &Presentation{
		controller: c,
		blocks: map[presenter.PanelKind]*CodeBlock{
			presenter.PanelPrimary:   NewCodeBlock(presenter.PanelPrimary),
			presenter.PanelSecondary: NewCodeBlock(presenter.PanelSecondary),
		},
		tabbed:      NewTabbedWindow(),
		markdown:    NewMarkdownCache(),
		transitions: make(map[presenter.PanelKind]*highlight.Transition),
		opts:        opts,
		deckName:    opts.DeckName,
		now:         time.Now,
	}
	p.syncBlocks()
	return p
}

// Controller exposes the navigation state for read access.
func (p *Presentation) Controller() *presenter.Controller {
	return p.controller
}

func (p *Presentation) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// syncBlocks points every visible block at its panel's code.
func (p *Presentation) syncBlocks() {
	for _, panel := range p.controller.Panels() {
		p.blocks[panel.Kind].SetCode(panel.Title, panel.Code)
	}
}

func (p *Presentation) visibleCode() map[presenter.PanelKind]string {
	code := make(map[presenter.PanelKind]string)
	for _, panel := range p.controller.Panels() {
		code[panel.Kind] = panel.Code
	}
	return code
}

func (p *Presentation) isVisible(kind presenter.PanelKind) bool {
	for _, panel := range p.controller.Panels() {
		if panel.Kind == kind {
			return true
		}
	}
	return false
}

// navigate applies change and animates every panel whose code changed.
func (p *Presentation) navigate(change func()) tea.Cmd {
	before := p.visibleCode()
	change()
	p.syncBlocks()
	return p.startTransitions(before)
}

func (p *Presentation) startTransitions(before map[presenter.PanelKind]string) tea.Cmd {
	now := p.now()
	visible := p.visibleCode()
	for kind := range p.transitions {
		if _, ok := visible[kind]; !ok {
			delete(p.transitions, kind)
		}
	}
	if p.opts.Animation.Duration <= 0 {
		return nil
	}
	for kind, code := range visible {
		old, ok := before[kind]
		if !ok || old == code {
			continue
		}
		p.transitions[kind] = highlight.NewTransition(old, code, p.opts.Animation, now)
	}
	if len(p.transitions) == 0 || p.animating {
		return nil
	}
	p.animating = true
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(animationFrameInterval, func(time.Time) tea.Msg {
		return AnimationFrameMsg{}
	})
}

func (p *Presentation) Next() tea.Cmd {
	return p.navigate(p.controller.Next)
}

func (p *Presentation) Previous() tea.Cmd {
	return p.navigate(p.controller.Previous)
}

func (p *Presentation) First() tea.Cmd {
	return p.navigate(p.controller.First)
}

func (p *Presentation) Last() tea.Cmd {
	return p.navigate(p.controller.Last)
}

// SetDeck swaps the deck and goes back to its first slide.
func (p *Presentation) SetDeck(name string, deck slides.Deck) tea.Cmd {
	p.deckName = name
	return p.navigate(func() { p.controller.SetDeck(deck) })
}

// ToggleSplitView flips split view. The control is hidden on slides without
// secondary code, so there it does nothing.
func (p *Presentation) ToggleSplitView() {
	if !p.controller.ShowSplitToggle() {
		return
	}
	p.controller.ToggleSplitView()
	p.syncBlocks()
}

// SetActiveTab selects the snippet of the tabbed view.
func (p *Presentation) SetActiveTab(tab presenter.Tab) {
	if !p.controller.ShowTabs() {
		return
	}
	p.controller.SetActiveTab(tab)
	p.syncBlocks()
}

// CycleTab flips between the primary and secondary tab.
func (p *Presentation) CycleTab() {
	if p.controller.ActiveTab() == presenter.TabPrimary {
		p.SetActiveTab(presenter.TabSecondary)
	} else {
		p.SetActiveTab(presenter.TabPrimary)
	}
}

// Copy copies the code of the block of the given kind, if it is on screen.
func (p *Presentation) Copy(kind presenter.PanelKind) tea.Cmd {
	if !p.isVisible(kind) {
		return nil
	}
	return p.blocks[kind].Copy(p.opts.Clipboard)
}

// CopyFirst copies the leftmost visible block.
func (p *Presentation) CopyFirst() tea.Cmd {
	return p.Copy(p.controller.Panels()[0].Kind)
}

// Copied reports whether the block of kind shows the "Copied" indicator.
func (p *Presentation) Copied(kind presenter.PanelKind) bool {
	return p.blocks[kind].Copied()
}

// CopyError returns the clipboard error carried by msg. Results for code
// that is no longer on the block are ignored.
func (p *Presentation) CopyError(msg CopiedMsg) error {
	if !p.blocks[msg.Kind].Accepts(msg) {
		return nil
	}
	return msg.Err
}

// Animating reports whether a slide transition is running.
func (p *Presentation) Animating() bool {
	return p.animating
}

func (p *Presentation) ScrollUp() {
	for _, panel := range p.controller.Panels() {
		p.blocks[panel.Kind].ScrollUp()
	}
}

func (p *Presentation) ScrollDown() {
	for _, panel := range p.controller.Panels() {
		p.blocks[panel.Kind].ScrollDown()
	}
}

// Update handles the messages produced by the presentation's own commands.
func (p *Presentation) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AnimationFrameMsg:
		now := p.now()
		for kind, t := range p.transitions {
			if t.Done(now) {
				delete(p.transitions, kind)
			}
		}
		if len(p.transitions) == 0 {
			p.animating = false
			return nil
		}
		return nextFrame()
	case CopiedMsg:
		return p.blocks[msg.Kind].HandleCopied(msg)
	case CopyResetMsg:
		p.blocks[msg.Kind].HandleReset(msg)
	}
	return nil
}

// View renders the current slide. Every visible block is highlighted with
// the theme's style on each call, so a theme change recolors running
// transitions in place.
func (p *Presentation) View(h *highlight.Highlighter, theme Theme) string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	slide := p.controller.Current()
	header := p.renderHeader(slide, theme)
	footer := p.renderFooter()
	bodyHeight := max(p.height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	panels := p.controller.Panels()
	now := p.now()
	highlighted := make([]string, len(panels))
	for i, panel := range panels {
		highlighted[i] = p.highlight(h, panel, theme, now)
	}

	var body string
	switch {
	case len(panels) == 2:
		leftWidth := (p.width - 1) / 2
		rightWidth := p.width - 1 - leftWidth
		left, right := p.blocks[panels[0].Kind], p.blocks[panels[1].Kind]
		left.SetFramed(true)
		right.SetFramed(true)
		left.SetSize(leftWidth, bodyHeight)
		right.SetSize(rightWidth, bodyHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left.Render(highlighted[0]), " ", right.Render(highlighted[1]))
	case p.controller.ShowTabs():
		p.tabbed.SetSize(p.width, bodyHeight)
		p.tabbed.SetTab(p.controller.ActiveTab())
		p.tabbed.SetBlock(p.blocks[panels[0].Kind])
		body = p.tabbed.Render(highlighted[0])
	default:
		block := p.blocks[panels[0].Kind]
		block.SetFramed(true)
		block.SetSize(p.width, bodyHeight)
		body = block.Render(highlighted[0])
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (p *Presentation) highlight(h *highlight.Highlighter, panel presenter.Panel, theme Theme, now time.Time) string {
	out, err := h.Render(panel.Code, p.opts.Language, theme.Style, highlight.RenderOptions{
		LineNumbers: p.opts.LineNumbers,
		Transition:  p.transitions[panel.Kind],
		Now:         now,
	})
	if err != nil {
		log.ErrorLog.Printf("failed to highlight %q: %v", panel.Title, err)
		return panel.Code
	}
	return out
}

func (p *Presentation) renderHeader(slide slides.Slide, theme Theme) string {
	title := slideTitleStyle.Render(slide.Title)

	var toggle string
	if p.controller.ShowSplitToggle() {
		if p.controller.IsSplitView() {
			toggle = hintStyle.Render("[s] ✕ close split")
		} else {
			toggle = hintStyle.Render("[s] ◫ split view")
		}
	}

	gap := max(p.width-ansi.PrintableRuneWidth(title)-ansi.PrintableRuneWidth(toggle), 1)
	lines := []string{title + strings.Repeat(" ", gap) + toggle}

	if slide.Description != "" {
		lines = append(lines, p.markdown.Render(slide.Description, p.width, theme.Dark))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p *Presentation) renderFooter() string {
	prevStyle, nextStyle := navButtonStyle, navButtonStyle
	if !p.controller.CanPrevious() {
		prevStyle = disabledNavButtonStyle
	}
	if !p.controller.CanNext() {
		nextStyle = disabledNavButtonStyle
	}
	prev := prevStyle.Render("← Previous")
	next := nextStyle.Render("Next →")

	cur, total := p.controller.Position()
	status := fmt.Sprintf("%d / %d", cur, total)
	if p.deckName != "" {
		status = p.deckName + " · " + status
	}
	middleWidth := max(p.width-lipgloss.Width(prev)-lipgloss.Width(next), 0)
	position := lipgloss.Place(middleWidth, lipgloss.Height(prev), lipgloss.Center, lipgloss.Center,
		hintStyle.Render(status))

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, position, next)
}

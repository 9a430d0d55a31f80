package ui

import (
	"codeslides/presenter"

	"github.com/charmbracelet/lipgloss"
)

func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}

var (
	inactiveTabBorder = tabBorderWithBottom("┴", "─", "┴")
	activeTabBorder   = tabBorderWithBottom("┘", " ", "└")
	highlightColor    = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	inactiveTabStyle  = lipgloss.NewStyle().
				Border(inactiveTabBorder, true).
				BorderForeground(highlightColor).
				Foreground(lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#6B6B6B"}).
				AlignHorizontal(lipgloss.Center)
	activeTabStyle = inactiveTabStyle.
			Border(activeTabBorder, true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}).
			Bold(true).
			AlignHorizontal(lipgloss.Center)
	windowStyle = lipgloss.NewStyle().
			BorderForeground(highlightColor).
			Border(lipgloss.NormalBorder(), false, true, true, true)
)

// TabbedWindow has tabs at the top of a pane which can be selected. It frames
// the single code block of the tabbed view.
type TabbedWindow struct {
	tabs      []string
	activeTab presenter.Tab

	block  *CodeBlock
	height int
	width  int
}

func NewTabbedWindow() *TabbedWindow {
	return &TabbedWindow{
		tabs: []string{
			presenter.TabPrimary.String(),
			presenter.TabSecondary.String(),
		},
	}
}

func tabRowHeight() int {
	return activeTabStyle.GetVerticalFrameSize() + 1
}

// SetSize sets the outer size, tabs included.
func (w *TabbedWindow) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// contentSize is the room left for the block inside the window frame.
func (w *TabbedWindow) contentSize() (int, int) {
	return w.width - windowStyle.GetHorizontalFrameSize(),
		w.height - tabRowHeight() - windowStyle.GetVerticalFrameSize()
}

func (w *TabbedWindow) SetTab(tab presenter.Tab) {
	w.activeTab = tab
}

// SetBlock mounts the block shown in the window and sizes it to fit.
func (w *TabbedWindow) SetBlock(block *CodeBlock) {
	w.block = block
	block.SetFramed(false)
	block.SetSize(w.contentSize())
}

// Render draws the tab row and the block with the given highlighted code.
func (w *TabbedWindow) Render(highlighted string) string {
	if w.width == 0 || w.height == 0 || w.block == nil {
		return ""
	}

	var renderedTabs []string

	tabWidth := w.width / len(w.tabs)
	lastTabWidth := w.width - tabWidth*(len(w.tabs)-1)

	for i, t := range w.tabs {
		width := tabWidth
		if i == len(w.tabs)-1 {
			width = lastTabWidth
		}

		var style lipgloss.Style
		isFirst, isLast, isActive := i == 0, i == len(w.tabs)-1, presenter.Tab(i) == w.activeTab
		if isActive {
			style = activeTabStyle
		} else {
			style = inactiveTabStyle
		}
		border, _, _, _, _ := style.GetBorder()
		if isFirst && isActive {
			border.BottomLeft = "│"
		} else if isFirst {
			border.BottomLeft = "├"
		} else if isLast && isActive {
			border.BottomRight = "│"
		} else if isLast {
			border.BottomRight = "┤"
		}
		style = style.Border(border)
		style = style.Width(width - style.GetHorizontalBorderSize())
		renderedTabs = append(renderedTabs, style.Render(t))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
	window := windowStyle.
		Width(w.width - windowStyle.GetHorizontalBorderSize()).
		Render(w.block.Render(highlighted))

	return lipgloss.JoinVertical(lipgloss.Left, row, window)
}

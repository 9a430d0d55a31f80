package ui

import (
	"strings"
	"time"

	"codeslides/log"
	"codeslides/presenter"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// CopiedIndicatorDuration is how long a block shows "Copied" after a copy.
const CopiedIndicatorDuration = 2000 * time.Millisecond

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// SystemClipboard writes through the OS clipboard tools.
var SystemClipboard ClipboardFunc = clipboard.WriteAll

// CopiedMsg reports the outcome of a clipboard write for one block.
type CopiedMsg struct {
	Kind    presenter.PanelKind
	CodeGen int
	Err     error
}

// CopyResetMsg clears the "Copied" indicator of a block, unless a newer copy
// or a code change happened since.
type CopyResetMsg struct {
	Kind presenter.PanelKind
	Gen  int
}

var (
	blockBorderColor = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#3A3A3A"}
	blockStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(blockBorderColor).
				Padding(0, 1)
	// bareBlockStyle is used when a TabbedWindow draws the frame instead.
	bareBlockStyle  = lipgloss.NewStyle().Padding(0, 1)
	blockTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9E9E9E"})
	copyButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#BDBDBD"})
	copiedButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true)
)

// CodeBlock is one code panel: a caption, a copy button and the highlighted
// code in a scrollable viewport.
type CodeBlock struct {
	kind  presenter.PanelKind
	title string
	code  string

	copied bool
	// codeGen changes with the snippet and invalidates clipboard results.
	codeGen int
	// copyGen changes with every successful copy and invalidates reset timers.
	copyGen int

	viewport viewport.Model
	framed   bool
	width    int
	height   int
}

func NewCodeBlock(kind presenter.PanelKind) *CodeBlock {
	return &CodeBlock{
		kind:     kind,
		viewport: viewport.New(0, 0),
		framed:   true,
	}
}

func (b *CodeBlock) style() lipgloss.Style {
	if b.framed {
		return blockStyle
	}
	return bareBlockStyle
}

// SetFramed toggles the block's own border.
func (b *CodeBlock) SetFramed(framed bool) {
	if b.framed == framed {
		return
	}
	b.framed = framed
	b.SetSize(b.width, b.height)
}

// SetCode points the block at a new snippet. A different snippet scrolls
// back to the top and drops the "Copied" indicator.
func (b *CodeBlock) SetCode(title, code string) {
	b.title = title
	if code == b.code {
		return
	}
	b.code = code
	b.copied = false
	b.codeGen++
	b.copyGen++
	b.viewport.GotoTop()
}

func (b *CodeBlock) Code() string {
	return b.code
}

func (b *CodeBlock) Copied() bool {
	return b.copied
}

// SetSize sets the outer size of the block including its border.
func (b *CodeBlock) SetSize(width, height int) {
	b.width = width
	b.height = height
	style := b.style()
	b.viewport.Width = max(width-style.GetHorizontalFrameSize(), 1)
	// One row for the caption line.
	b.viewport.Height = max(height-style.GetVerticalFrameSize()-1, 1)
}

// Copy writes the block's literal code to the clipboard off the UI loop.
func (b *CodeBlock) Copy(write ClipboardFunc) tea.Cmd {
	kind, gen, code := b.kind, b.codeGen, b.code
	return func() tea.Msg {
		return CopiedMsg{Kind: kind, CodeGen: gen, Err: write(code)}
	}
}

// Accepts reports whether msg was produced for the code the block shows now.
func (b *CodeBlock) Accepts(msg CopiedMsg) bool {
	return msg.CodeGen == b.codeGen
}

// HandleCopied applies a clipboard result. Failures are only logged and leave
// the indicator as it was.
func (b *CodeBlock) HandleCopied(msg CopiedMsg) tea.Cmd {
	if !b.Accepts(msg) {
		return nil
	}
	if msg.Err != nil {
		log.ErrorLog.Printf("failed to copy code to clipboard: %v", msg.Err)
		return nil
	}
	b.copied = true
	b.copyGen++
	kind, gen := b.kind, b.copyGen
	return tea.Tick(CopiedIndicatorDuration, func(time.Time) tea.Msg {
		return CopyResetMsg{Kind: kind, Gen: gen}
	})
}

// HandleReset clears the indicator if msg belongs to the latest copy.
func (b *CodeBlock) HandleReset(msg CopyResetMsg) {
	if msg.Gen == b.copyGen {
		b.copied = false
	}
}

func (b *CodeBlock) ScrollUp() {
	b.viewport.LineUp(1)
}

func (b *CodeBlock) ScrollDown() {
	b.viewport.LineDown(1)
}

// Render draws the block around already highlighted code.
func (b *CodeBlock) Render(highlighted string) string {
	if b.width == 0 || b.height == 0 {
		return ""
	}
	inner := b.viewport.Width

	button := copyButtonStyle.Render("⧉ Copy")
	if b.copied {
		button = copiedButtonStyle.Render("✓ Copied")
	}
	titleWidth := max(inner-lipgloss.Width(button)-1, 0)
	title := runewidth.Truncate(b.title, titleWidth, "…")
	gap := max(inner-runewidth.StringWidth(title)-lipgloss.Width(button), 1)
	caption := blockTitleStyle.Render(title) + strings.Repeat(" ", gap) + button

	lines := strings.Split(highlighted, "\n")
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(inner), "…")
	}
	b.viewport.SetContent(strings.Join(lines, "\n"))

	body := lipgloss.JoinVertical(lipgloss.Left, caption, b.viewport.View())
	style := b.style()
	return style.
		Width(b.width - style.GetHorizontalBorderSize()).
		Height(b.height - style.GetVerticalBorderSize()).
		Render(body)
}

package overlay

import (
	"codeslides/keys"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay represents a text screen overlay
type TextOverlay struct {
	// Whether the overlay has been dismissed
	Dismissed bool
	// Callback function to be called when the overlay is dismissed
	OnDismiss func()

	title   string
	content string

	viewport viewport.Model
	width    int
	height   int
	// Whether the content is taller than the overlay
	needsScrolling bool
}

var (
	textOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)
	textOverlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				MarginBottom(1)
	scrollInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewTextOverlay creates a new text screen overlay with the given title and content
func NewTextOverlay(title, content string) *TextOverlay {
	t := &TextOverlay{
		title:    title,
		content:  content,
		viewport: viewport.New(0, 0),
	}
	t.viewport.SetContent(content)
	return t
}

// HandleKeyPress processes a key press and updates the state.
// Returns true if the overlay should be closed.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	if t.needsScrolling {
		switch {
		case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyUp]):
			t.viewport.LineUp(1)
			return false
		case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyDown]):
			t.viewport.LineDown(1)
			return false
		case msg.String() == "pgup":
			t.viewport.HalfViewUp()
			return false
		case msg.String() == "pgdown":
			t.viewport.HalfViewDown()
			return false
		case msg.String() == "home", msg.String() == "g":
			t.viewport.GotoTop()
			return false
		case msg.String() == "end", msg.String() == "G":
			t.viewport.GotoBottom()
			return false
		}
	}

	// Close on any other key
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

// Render renders the text overlay
func (t *TextOverlay) Render() string {
	content := t.content
	if t.needsScrolling {
		content = lipgloss.JoinVertical(lipgloss.Left,
			t.viewport.View(),
			"",
			scrollInfoStyle.Render("↑/↓ to scroll • Press any other key to close"))
	}
	if t.title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, textOverlayTitleStyle.Render(t.title), content)
	}

	style := textOverlayStyle
	if t.width > 0 {
		style = style.Width(t.width)
	}
	return style.Render(content)
}

// SetSize updates the dimensions of the overlay
func (t *TextOverlay) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.updateViewport()
}

func (t *TextOverlay) updateViewport() {
	if t.height == 0 || t.width == 0 {
		return
	}

	// border + padding + scroll info, and the title with its margin
	overhead := textOverlayStyle.GetVerticalFrameSize() + 2
	if t.title != "" {
		overhead += lipgloss.Height(textOverlayTitleStyle.Render(t.title))
	}

	t.viewport.Width = max(t.width-textOverlayStyle.GetHorizontalFrameSize(), 1)
	t.viewport.Height = max(t.height-overhead, 1)
	t.needsScrolling = lipgloss.Height(t.content) > t.viewport.Height
}

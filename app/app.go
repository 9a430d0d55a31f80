package app

import (
	"context"
	"fmt"
	"time"

	"codeslides/config"
	"codeslides/highlight"
	"codeslides/keys"
	"codeslides/log"
	"codeslides/presenter"
	"codeslides/slides"
	"codeslides/ui"
	"codeslides/ui/overlay"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a presenter run.
type Options struct {
	Config *config.Config
	// Deck must name a registered deck.
	Deck string
	// SystemDark is the terminal background, detected before the program starts.
	SystemDark bool
	// Clipboard defaults to the system clipboard.
	Clipboard ui.ClipboardFunc
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, opts Options) error {
	m, err := newHome(ctx, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the help screen is displayed.
	stateHelp
	// stateDeckSelect is the state when the deck selector is displayed.
	stateDeckSelect
)

// readiness tells whether the highlighter can be used yet. The presentation
// is only drawn once it is ready.
type readiness interface {
	isReadiness()
}

type notReady struct{}

type ready struct {
	highlighter *highlight.Highlighter
}

func (notReady) isReadiness() {}
func (ready) isReadiness()    {}

type home struct {
	ctx context.Context

	cfg *config.Config
	// deckName is the deck currently presented.
	deckName string

	// -- State --

	state     state
	readiness readiness
	// initErr is set when the highlighter could not be created.
	initErr error
	// pendingCmd is returned after an overlay callback ran.
	pendingCmd tea.Cmd

	// newHighlighter builds the highlighter off the UI loop.
	newHighlighter func(ctx context.Context, opts highlight.Options) (*highlight.Highlighter, error)

	// -- UI Components --

	presentation *ui.Presentation
	theme        *ui.ThemeSignal
	errBox       *ui.ErrBox
	spinner      spinner.Model

	textOverlay  *overlay.TextOverlay
	deckSelector *overlay.DeckSelectorOverlay

	width  int
	height int
}

func newHome(ctx context.Context, opts Options) (*home, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	deck, ok := slides.Lookup(opts.Deck)
	if !ok {
		return nil, fmt.Errorf("unknown deck %q", opts.Deck)
	}

	return &home{
		ctx:      ctx,
		cfg:      cfg,
		deckName: opts.Deck,
		state:    stateDefault,
		presentation: ui.NewPresentation(deck, ui.PresentationOptions{
			DeckName:    slides.DisplayName(opts.Deck),
			Language:    cfg.Language,
			LineNumbers: cfg.LineNumbers,
			SplitView:   cfg.SplitView,
			Animation: highlight.AnimationOptions{
				Duration: time.Duration(cfg.AnimationDurationMs) * time.Millisecond,
				Stagger:  cfg.AnimationStagger,
			},
			Clipboard: opts.Clipboard,
		}),
		readiness:      notReady{},
		newHighlighter: highlight.New,
		theme:          ui.NewThemeSignal(cfg.Theme, opts.SystemDark, cfg.DarkStyle, cfg.LightStyle),
		errBox:         ui.NewErrBox(),
		spinner:        spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}, nil
}

// highlighterReadyMsg carries the result of the highlighter initialisation.
type highlighterReadyMsg struct {
	highlighter *highlight.Highlighter
	err         error
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

func (m *home) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadHighlighter())
}

func (m *home) loadHighlighter() tea.Cmd {
	opts := highlight.Options{
		Languages: config.SupportedLanguages,
		Themes:    m.cfg.Styles(),
	}
	return func() tea.Msg {
		h, err := m.newHighlighter(m.ctx, opts)
		return highlighterReadyMsg{highlighter: h, err: err}
	}
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	// The error box takes the last row.
	m.errBox.SetSize(int(float32(msg.Width)*0.9), 1)
	m.presentation.SetSize(msg.Width, msg.Height-1)

	if m.textOverlay != nil {
		m.textOverlay.SetSize(m.calculateOverlayDimensions())
	}
}

func (m *home) calculateOverlayDimensions() (int, int) {
	width := min(max(int(float32(m.width)*0.6), 50), m.width-4)
	height := max(int(float32(m.height)*0.8), 10)
	return width, height
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case spinner.TickMsg:
		// The spinner stops once the highlighter is ready.
		if _, loading := m.readiness.(notReady); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case highlighterReadyMsg:
		if msg.err != nil {
			m.initErr = fmt.Errorf("failed to initialise highlighter: %w", msg.err)
			log.ErrorLog.Print(m.initErr)
			return m, nil
		}
		log.InfoLog.Printf("highlighter ready with %d languages", msg.highlighter.Languages())
		m.readiness = ready{highlighter: msg.highlighter}
		return m, nil
	case ui.ThemeChangedMsg:
		// Blocks read the theme on every View, so there is nothing to store.
		log.InfoLog.Printf("theme changed to %s (dark=%t)", msg.Theme.Style, msg.Theme.Dark)
		return m, nil
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case ui.CopiedMsg:
		if err := m.presentation.CopyError(msg); err != nil {
			m.presentation.Update(msg)
			return m, m.handleError(fmt.Errorf("copy failed: %w", err))
		}
		cmd := m.presentation.Update(msg)
		return m, cmd
	case ui.AnimationFrameMsg, ui.CopyResetMsg:
		return m, m.presentation.Update(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateHelp:
		return m.handleHelpState(msg)
	case stateDeckSelect:
		return m.handleDeckSelectState(msg)
	}

	name, ok := keys.GetKeyName(msg.String())
	if !ok {
		return m, nil
	}
	if name == keys.KeyQuit {
		return m, tea.Quit
	}

	// Nothing but quit works until the presentation is mounted.
	if _, isReady := m.readiness.(ready); !isReady {
		return m, nil
	}

	p := m.presentation
	switch name {
	case keys.KeyPrev:
		return m, p.Previous()
	case keys.KeyNext:
		return m, p.Next()
	case keys.KeyFirst:
		return m, p.First()
	case keys.KeyLast:
		return m, p.Last()
	case keys.KeyScrollUp:
		p.ScrollUp()
	case keys.KeyScrollDown:
		p.ScrollDown()
	case keys.KeyToggleSplit:
		p.ToggleSplitView()
	case keys.KeyPrimaryTab:
		p.SetActiveTab(presenter.TabPrimary)
	case keys.KeySecondaryTab:
		p.SetActiveTab(presenter.TabSecondary)
	case keys.KeyTab:
		p.CycleTab()
	case keys.KeyTheme:
		return m, m.theme.Cycle()
	case keys.KeyCopy:
		return m, p.CopyFirst()
	case keys.KeyCopySecondary:
		return m, p.Copy(presenter.PanelSecondary)
	case keys.KeySelectDeck:
		m.showDeckSelector()
	case keys.KeyPrevDeck:
		return m, m.switchDeck(m.adjacentDeck(-1))
	case keys.KeyNextDeck:
		return m, m.switchDeck(m.adjacentDeck(1))
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	}
	return m, nil
}

func (m *home) showDeckSelector() {
	m.deckSelector = overlay.NewDeckSelectorOverlay(m.deckName, func(name string) {
		m.pendingCmd = m.switchDeck(name)
	})
	m.state = stateDeckSelect
}

func (m *home) handleDeckSelectState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.deckSelector.HandleKeyPress(msg) {
		return m, nil
	}
	m.state = stateDefault
	m.deckSelector = nil
	cmd := m.pendingCmd
	m.pendingCmd = nil
	return m, cmd
}

// adjacentDeck returns the deck registered offset places away, wrapping around.
func (m *home) adjacentDeck(offset int) string {
	names := slides.Names()
	for i, name := range names {
		if name == m.deckName {
			return names[(i+offset+len(names))%len(names)]
		}
	}
	return slides.Default()
}

// switchDeck presents the named deck from its first slide. Selecting the
// current deck again keeps the position.
func (m *home) switchDeck(name string) tea.Cmd {
	if name == m.deckName {
		return nil
	}
	deck, ok := slides.Lookup(name)
	if !ok {
		return m.handleError(fmt.Errorf("unknown deck %q", name))
	}
	log.InfoLog.Printf("switching to deck %s", name)
	m.deckName = name
	return m.presentation.SetDeck(slides.DisplayName(name), deck)
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}
		return hideErrMsg{}
	}
}

var (
	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9E9E9E"})
	deckLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}).
			Bold(true)
)

func (m *home) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var mainView string
	switch r := m.readiness.(type) {
	case ready:
		mainView = m.presentation.View(r.highlighter, m.theme.Current())
	default:
		mainView = m.loadingView()
	}
	mainView = lipgloss.JoinVertical(lipgloss.Center, mainView, m.errBox.String())

	switch m.state {
	case stateHelp:
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			m.state = stateDefault
			return mainView
		}
		return overlay.PlaceOverlay(m.textOverlay.Render(), mainView)
	case stateDeckSelect:
		if m.deckSelector == nil {
			log.ErrorLog.Printf("deck selector overlay is nil")
			m.state = stateDefault
			return mainView
		}
		return overlay.PlaceOverlay(m.deckSelector.Render(), mainView)
	}
	return mainView
}

func (m *home) loadingView() string {
	lines := []string{
		deckLabelStyle.Render(slides.DisplayName(m.deckName)),
		"",
		m.spinner.View() + " " + loadingStyle.Render("Loading syntax highlighter..."),
	}
	if m.initErr != nil {
		errBox := ui.NewErrBox()
		errBox.SetSize(m.width, 1)
		errBox.SetError(m.initErr)
		lines = append(lines, "", errBox.String())
	}
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

package highlight

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Options lists everything a Highlighter must be able to render. Identifiers
// that are not listed are rejected at render time.
type Options struct {
	Languages []string
	Themes    []string
}

// RenderOptions controls a single render.
type RenderOptions struct {
	LineNumbers bool
	// Transition, when set, hides or marks lines that are still animating in.
	Transition *Transition
	// Now is the frame time used for Transition.
	Now time.Time
}

// Highlighter turns source text into colored terminal output. It is immutable
// once New returns, so one handle can be shared by every code block.
type Highlighter struct {
	lexers    map[string]chroma.Lexer
	styles    map[string]*chroma.Style
	formatter chroma.Formatter
}

var (
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
)

// New resolves every requested language and theme. Loading the lexers is the
// slow part of start-up, so callers run it off the UI loop.
func New(ctx context.Context, opts Options) (*Highlighter, error) {
	h := &Highlighter{
		lexers:    make(map[string]chroma.Lexer, len(opts.Languages)),
		styles:    make(map[string]*chroma.Style, len(opts.Themes)),
		formatter: formatters.TTY256,
	}

	for _, lang := range opts.Languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lexer := lexers.Get(lang)
		if lexer == nil {
			return nil, fmt.Errorf("unsupported language %q", lang)
		}
		h.lexers[lang] = chroma.Coalesce(lexer)
	}

	for _, theme := range opts.Themes {
		style, ok := styles.Registry[theme]
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", theme)
		}
		h.styles[theme] = style
	}

	return h, nil
}

// Languages returns the number of loaded lexers.
func (h *Highlighter) Languages() int {
	return len(h.lexers)
}

// Render highlights code and returns one output line per source line.
func (h *Highlighter) Render(code, language, theme string, opts RenderOptions) (string, error) {
	lexer, ok := h.lexers[language]
	if !ok {
		return "", fmt.Errorf("language %q was not loaded", language)
	}
	style, ok := h.styles[theme]
	if !ok {
		return "", fmt.Errorf("theme %q was not loaded", theme)
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise: %w", err)
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	sourceLines := strings.Count(code, "\n") + 1
	digits := len(fmt.Sprint(sourceLines))

	rendered := make([]string, 0, sourceLines)
	for i := 0; i < sourceLines; i++ {
		var text string
		if i < len(tokenLines) {
			var buf bytes.Buffer
			if err := h.formatter.Format(&buf, style, chroma.Literator(trimLineEnd(tokenLines[i])...)); err != nil {
				return "", fmt.Errorf("failed to format line %d: %w", i+1, err)
			}
			text = buf.String()
		}

		state := LineVisible
		if opts.Transition != nil {
			state = opts.Transition.LineState(i, opts.Now)
		}
		if state == LineHidden {
			text = ""
		}

		var prefix string
		if opts.LineNumbers {
			prefix = gutterStyle.Render(fmt.Sprintf("%*d ", digits, i+1))
		}
		if opts.Transition != nil {
			if state == LineRevealing {
				prefix += markerStyle.Render("▌")
			} else {
				prefix += " "
			}
		}
		rendered = append(rendered, prefix+text)
	}

	return strings.Join(rendered, "\n"), nil
}

// trimLineEnd drops the newline SplitTokensIntoLines leaves in a line's last
// token. The formatter would otherwise wrap it in color codes.
func trimLineEnd(line []chroma.Token) []chroma.Token {
	if len(line) == 0 {
		return line
	}
	out := make([]chroma.Token, len(line))
	copy(out, line)
	last := &out[len(out)-1]
	last.Value = strings.TrimSuffix(last.Value, "\n")
	return out
}

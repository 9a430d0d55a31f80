package highlight

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/muesli/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHighlighter(t *testing.T) *Highlighter {
	t.Helper()
	h, err := New(context.Background(), Options{
		Languages: []string{"javascript", "typescript", "tsx", "jsx"},
		Themes:    []string{"monokai", "github"},
	})
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	h := newTestHighlighter(t)
	assert.Equal(t, 4, h.Languages())

	_, err := New(context.Background(), Options{Languages: []string{"not-a-language"}})
	assert.ErrorContains(t, err, "not-a-language")

	_, err = New(context.Background(), Options{Themes: []string{"not-a-theme"}})
	assert.ErrorContains(t, err, "not-a-theme")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(ctx, Options{Languages: []string{"javascript"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	h := newTestHighlighter(t)
	code := "const x = 42;\nfunction f() {\n  return x\n}"

	out, err := h.Render(code, "javascript", "monokai", RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, strings.Split(code, "\n"), plainLines(out))

	_, err = h.Render(code, "python", "monokai", RenderOptions{})
	assert.Error(t, err)
	_, err = h.Render(code, "javascript", "dracula", RenderOptions{})
	assert.Error(t, err)
}

func TestRenderOneLinePerSourceLine(t *testing.T) {
	h := newTestHighlighter(t)

	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "three statements",
			code: "const a = 1;\nconst b = 2;\nconst c = 3;",
			want: []string{"1 const a = 1;", "2 const b = 2;", "3 const c = 3;"},
		},
		{
			name: "blank line kept",
			code: "a;\n\nb;",
			want: []string{"1 a;", "2 ", "3 b;"},
		},
		{
			name: "trailing newline",
			code: "a;\n",
			want: []string{"1 a;", "2 "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Render(tt.code, "tsx", "monokai", RenderOptions{LineNumbers: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, plainLines(out))
		})
	}
}

func TestRenderLineNumbers(t *testing.T) {
	h := newTestHighlighter(t)
	code := strings.Repeat("x;\n", 9) + "y;"

	out, err := h.Render(code, "javascript", "github", RenderOptions{LineNumbers: true})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], " 1 ")
	assert.Contains(t, lines[9], "10 ")
}

func TestRenderThemesDiffer(t *testing.T) {
	h := newTestHighlighter(t)
	code := "const answer = 'yes'"

	dark, err := h.Render(code, "tsx", "monokai", RenderOptions{})
	require.NoError(t, err)
	light, err := h.Render(code, "tsx", "github", RenderOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, dark, light)
}

func TestRenderHidesPendingLines(t *testing.T) {
	h := newTestHighlighter(t)
	start := time.Now()
	tr := NewTransition("a;\n", "a;\nbbbbbbbb;", AnimationOptions{Duration: time.Second, Stagger: 0.5}, start)
	require.Equal(t, 1, tr.Inserted())

	out, err := h.Render("a;\nbbbbbbbb;", "javascript", "monokai", RenderOptions{Transition: tr, Now: start})
	require.NoError(t, err)
	assert.Contains(t, out, "bbbbbbbb")
	assert.Contains(t, out, "▌")

	out, err = h.Render("a;\nbbbbbbbb;", "javascript", "monokai", RenderOptions{Transition: tr, Now: start.Add(time.Second)})
	require.NoError(t, err)
	assert.NotContains(t, out, "▌")
}

func TestTransitionStaggersInsertedLines(t *testing.T) {
	start := time.Now()
	from := "a\nb\nc\n"
	to := "a\nx\nb\nc\ny"
	tr := NewTransition(from, to, AnimationOptions{Duration: 800 * time.Millisecond, Stagger: 0.3}, start)

	require.Equal(t, 2, tr.Inserted())
	at := func(d time.Duration) []LineState {
		states := make([]LineState, 5)
		for i := range states {
			states[i] = tr.LineState(i, start.Add(d))
		}
		return states
	}

	assert.Equal(t, []LineState{LineVisible, LineRevealing, LineVisible, LineVisible, LineHidden}, at(0))
	assert.Equal(t, []LineState{LineVisible, LineRevealing, LineVisible, LineVisible, LineRevealing}, at(200*time.Millisecond))
	assert.Equal(t, []LineState{LineVisible, LineVisible, LineVisible, LineVisible, LineRevealing}, at(600*time.Millisecond))
	assert.Equal(t, []LineState{LineVisible, LineVisible, LineVisible, LineVisible, LineVisible}, at(800*time.Millisecond))

	assert.False(t, tr.Done(start.Add(799*time.Millisecond)))
	assert.True(t, tr.Done(start.Add(800*time.Millisecond)))
}

func TestTransitionWithoutChanges(t *testing.T) {
	start := time.Now()
	tr := NewTransition("same\ncode", "same\ncode", AnimationOptions{Duration: time.Second}, start)
	assert.Equal(t, 0, tr.Inserted())
	assert.True(t, tr.Done(start))
	assert.Equal(t, LineVisible, tr.LineState(0, start))
}

func TestTransitionZeroDuration(t *testing.T) {
	start := time.Now()
	tr := NewTransition("", "new line", AnimationOptions{}, start)
	assert.Equal(t, LineVisible, tr.LineState(0, start))
	assert.True(t, tr.Done(start))
}

// plainLines splits rendered output into lines with the color codes removed.
func plainLines(s string) []string {
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

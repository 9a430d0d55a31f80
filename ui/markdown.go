package ui

import (
	"strings"

	"codeslides/log"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// RenderMarkdown renders markdown content for terminal display with the dark
// or light glamour style. On failure it returns the content unchanged along
// with the error.
func RenderMarkdown(content string, width int, isDark bool) (string, error) {
	styleName := styles.DarkStyle
	if !isDark {
		styleName = styles.LightStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		log.ErrorLog.Printf("Failed to create markdown renderer: %v", err)
		return content, err
	}

	rendered, err := r.Render(content)
	if err != nil {
		log.ErrorLog.Printf("Failed to render markdown: %v", err)
		return content, err
	}

	// Remove the blank lines glamour puts around the document.
	return strings.Trim(rendered, "\n"), nil
}

type markdownKey struct {
	content string
	width   int
	dark    bool
}

// MarkdownCache memoizes RenderMarkdown. Slide descriptions are redrawn on
// every animation frame, and building a glamour renderer is not cheap.
type MarkdownCache struct {
	entries map[markdownKey]string
}

func NewMarkdownCache() *MarkdownCache {
	return &MarkdownCache{entries: make(map[markdownKey]string)}
}

// Render returns the rendered content, falling back to stripped plain text
// when glamour fails.
func (c *MarkdownCache) Render(content string, width int, isDark bool) string {
	k := markdownKey{content: content, width: width, dark: isDark}
	if out, ok := c.entries[k]; ok {
		return out
	}
	out, err := RenderMarkdown(content, width, isDark)
	if err != nil {
		out = StripMarkdown(content)
	}
	c.entries[k] = out
	return out
}

// StripMarkdown removes markdown formatting from text
func StripMarkdown(content string) string {
	// Remove code blocks
	content = strings.ReplaceAll(content, "```", "")

	// Remove inline code
	content = strings.ReplaceAll(content, "`", "")

	// Remove bold and italic markers
	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")
	content = strings.ReplaceAll(content, "_", "")

	// Remove headers
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			lines[i] = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	content = strings.Join(lines, "\n")

	// [text](url) -> text
	for strings.Contains(content, "](") {
		start := strings.Index(content, "[")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "](")
		if end == -1 {
			break
		}
		end += start
		closeIdx := strings.Index(content[end:], ")")
		if closeIdx == -1 {
			break
		}
		closeIdx += end

		content = content[:start] + content[start+1:end] + content[closeIdx+1:]
	}

	return content
}

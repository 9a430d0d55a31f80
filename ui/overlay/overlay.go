package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// PlaceOverlay draws fg centered on top of bg. Both may contain ANSI
// sequences. If fg does not fit, it is returned alone.
func PlaceOverlay(fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	fgWidth, bgWidth := maxWidth(fgLines), maxWidth(bgLines)

	if fgWidth >= bgWidth || len(fgLines) >= len(bgLines) {
		return fg
	}

	x := (bgWidth - fgWidth) / 2
	y := (len(bgLines) - len(fgLines)) / 2

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}

		if w := ansi.PrintableRuneWidth(bgLine); w < bgWidth {
			bgLine += strings.Repeat(" ", bgWidth-w)
		}
		left := truncate.String(bgLine, uint(x))
		if w := ansi.PrintableRuneWidth(left); w < x {
			// A wide rune straddled the cut.
			left += strings.Repeat(" ", x-w)
		}

		fgLine := fgLines[i-y]
		if w := ansi.PrintableRuneWidth(fgLine); w < fgWidth {
			fgLine += strings.Repeat(" ", fgWidth-w)
		}

		b.WriteString(left)
		b.WriteString(resetSeq)
		b.WriteString(fgLine)
		b.WriteString(resetSeq)
		b.WriteString(cutLeft(bgLine, x+fgWidth))
	}
	return b.String()
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.PrintableRuneWidth(l))
	}
	return w
}

// cutLeft drops the first cells printable cells of s. Escape sequences are
// kept so the remainder is drawn with the style it had.
func cutLeft(s string, cells int) string {
	var b strings.Builder
	inEsc := false
	w := 0
	for _, r := range s {
		if r == ansi.Marker {
			inEsc = true
		}
		if inEsc {
			b.WriteRune(r)
			if ansi.IsTerminator(r) {
				inEsc = false
			}
			continue
		}
		if w >= cells {
			b.WriteRune(r)
			continue
		}
		w += runewidth.RuneWidth(r)
		if w > cells {
			b.WriteString(strings.Repeat(" ", w-cells))
		}
	}
	return b.String()
}

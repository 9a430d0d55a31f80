package highlight

import (
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AnimationOptions shapes the transition between two versions of a snippet.
type AnimationOptions struct {
	Duration time.Duration
	// Stagger is the share of Duration over which the start of inserted
	// lines is spread, in [0, 1]. Zero reveals all of them together.
	Stagger float64
}

// LineState is how a line of the new code looks at a given frame.
type LineState int

const (
	LineVisible LineState = iota
	LineRevealing
	LineHidden
)

// Transition animates the change from one snippet to the next. Lines kept from
// the old snippet stay put, inserted lines fade in one after another.
type Transition struct {
	start    time.Time
	opts     AnimationOptions
	inserted []int // reveal order per line of the new code, -1 when unchanged
	count    int
}

// NewTransition diffs from and to line by line.
func NewTransition(from, to string, opts AnimationOptions, start time.Time) *Transition {
	total := strings.Count(to, "\n") + 1
	t := &Transition{
		start:    start,
		opts:     opts,
		inserted: make([]int, total),
	}
	for i := range t.inserted {
		t.inserted[i] = -1
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	line := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffDelete {
			continue
		}
		for n := countLines(d.Text); n > 0 && line < total; n-- {
			if d.Type == diffmatchpatch.DiffInsert {
				t.inserted[line] = t.count
				t.count++
			}
			line++
		}
	}
	return t
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// Inserted returns how many lines of the new code are animated.
func (t *Transition) Inserted() int {
	return t.count
}

// LineState reports the state of line (0-based, in the new code) at now.
func (t *Transition) LineState(line int, now time.Time) LineState {
	if line < 0 || line >= len(t.inserted) || t.inserted[line] < 0 {
		return LineVisible
	}
	if t.opts.Duration <= 0 {
		return LineVisible
	}

	elapsed := now.Sub(t.start)
	order := t.inserted[line]
	stagger := clamp(t.opts.Stagger)
	lineStart := time.Duration(float64(t.opts.Duration) * stagger * float64(order) / float64(t.count))
	lineEnd := lineStart + time.Duration(float64(t.opts.Duration)*(1-stagger))

	switch {
	case elapsed < lineStart:
		return LineHidden
	case elapsed < lineEnd:
		return LineRevealing
	default:
		return LineVisible
	}
}

// Done reports whether every line has settled.
func (t *Transition) Done(now time.Time) bool {
	return t.count == 0 || now.Sub(t.start) >= t.opts.Duration
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

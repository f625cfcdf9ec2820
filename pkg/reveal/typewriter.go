package reveal

import (
	"time"

	"github.com/aretw0/termdialog/pkg/domain"
)

// Phase is the observable state of a Typewriter.
type Phase int

const (
	// Idle means a line is set and nothing is revealed yet.
	Idle Phase = iota
	// Revealing means some, but not all, graphemes are visible.
	Revealing
	// Complete means the whole line is visible, including empty lines.
	Complete
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Typewriter progressively reveals the graphemes of one styled line.
type Typewriter struct {
	graphemes []domain.Grapheme
	revealed  int
	elapsed   time.Duration
	interval  time.Duration
}

// New returns a Typewriter revealing one grapheme per interval.
// An interval of zero or less reveals every line instantly.
func New(interval time.Duration) *Typewriter {
	return &Typewriter{interval: interval}
}

// Interval returns the time per revealed grapheme.
func (t *Typewriter) Interval() time.Duration { return t.interval }

// SetInterval changes the reveal speed for subsequent advances.
// Switching to an instant interval completes the current line.
func (t *Typewriter) SetInterval(d time.Duration) {
	t.interval = d
	if t.instant() {
		t.Skip()
	}
}

// SetLine replaces the content and restarts the reveal from nothing.
func (t *Typewriter) SetLine(segments []domain.Segment) {
	t.graphemes = domain.Expand(segments)
	t.revealed = 0
	t.elapsed = 0
	if t.instant() {
		t.revealed = len(t.graphemes)
	}
}

// Advance moves the reveal forward by dt, revealing one grapheme for every
// full interval accumulated. Negative steps are ignored, and a completed line
// accumulates nothing.
func (t *Typewriter) Advance(dt time.Duration) {
	if dt <= 0 || t.IsComplete() {
		return
	}
	if t.instant() {
		t.Skip()
		return
	}

	// A step covering the rest of the line completes it; elapsed never overflows.
	if dt >= t.Remaining() {
		t.Skip()
		return
	}
	t.elapsed += dt
	n := min(int64(t.elapsed/t.interval), int64(t.Total()-t.revealed))
	t.revealed += int(n)
	t.elapsed -= time.Duration(n) * t.interval
}

// Skip reveals the whole line immediately.
func (t *Typewriter) Skip() {
	t.revealed = len(t.graphemes)
	t.elapsed = 0
}

// IsComplete reports whether every grapheme is visible.
func (t *Typewriter) IsComplete() bool { return t.revealed == len(t.graphemes) }

// Phase returns the current state of the reveal.
func (t *Typewriter) Phase() Phase {
	switch {
	case t.IsComplete():
		return Complete
	case t.revealed == 0:
		return Idle
	default:
		return Revealing
	}
}

// Revealed returns the number of visible graphemes.
func (t *Typewriter) Revealed() int { return t.revealed }

// Total returns the number of graphemes in the line.
func (t *Typewriter) Total() int { return len(t.graphemes) }

// VisiblePrefix returns the graphemes revealed so far, in order.
// The result must not be modified.
func (t *Typewriter) VisiblePrefix() []domain.Grapheme {
	return t.graphemes[:t.revealed:t.revealed]
}

// Remaining returns how long the reveal will take to complete at the current speed.
func (t *Typewriter) Remaining() time.Duration {
	if t.IsComplete() || t.instant() {
		return 0
	}
	return time.Duration(t.Total()-t.revealed)*t.interval - t.elapsed
}

func (t *Typewriter) instant() bool { return t.interval <= 0 }

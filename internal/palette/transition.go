package palette

import (
	"math"
	"time"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
)

// EaseOutQuart decelerates towards x = 1.
func EaseOutQuart(x float64) float64 {
	return 1 - math.Pow(1-x, 4)
}

// Transition is the live gradient. While idle From and To equal the current
// combo. While transitioning they move towards the target combo; a request
// that arrives mid-transition is parked and started the moment the active
// one finishes. Only the latest parked request survives.
//
// A Transition is not safe for concurrent use; the frame driver owns it.
type Transition struct {
	duration time.Duration
	ease     func(float64) float64

	current  int
	from, to geom.Color

	active   bool
	progress float64 // linear, 0..1
	eased    float64 // ease(progress) already applied
	fromDiff geom.Color
	toDiff   geom.Color

	pending    int
	hasPending bool
}

// NewTransition starts idle on combo start. An out-of-range start falls back
// to the first combo. A non-positive duration makes every transition finish
// on its first Step.
func NewTransition(start int, duration time.Duration) *Transition {
	c, ok := At(start)
	if !ok {
		start = 0
		c = combos[0]
	}
	return &Transition{
		duration: duration,
		ease:     EaseOutQuart,
		current:  start,
		from:     c.From,
		to:       c.To,
	}
}

// Request selects combo i. An idle transition starts moving immediately and
// Request returns true. While a transition is running the index is queued,
// replacing any earlier queued index, and Request returns false.
// Out-of-range indices are ignored.
func (t *Transition) Request(i int) bool {
	if _, ok := At(i); !ok {
		return false
	}
	if t.active {
		t.pending = i
		t.hasPending = true
		return false
	}
	t.begin(i)
	return true
}

// Cycle requests the combo step places away from the most recently
// requested one, wrapping around the table.
func (t *Transition) Cycle(step int) bool {
	base := t.current
	if t.hasPending {
		base = t.pending
	}
	n := Len()
	return t.Request(((base+step)%n + n) % n)
}

func (t *Transition) begin(i int) {
	target := combos[i]
	t.current = i
	t.active = true
	t.progress = 0
	t.eased = 0
	t.fromDiff = target.From.Sub(t.from)
	t.toDiff = target.To.Sub(t.to)
}

// Step advances the running transition by dt. The colours move by the diff
// captured at the start of the transition times the growth of the eased
// progress since the previous step. When progress reaches 1 the colours snap
// to the target and a queued request, if any, starts at once.
func (t *Transition) Step(dt time.Duration) {
	if !t.active {
		return
	}

	p := 1.0
	if t.duration > 0 {
		p = t.progress + float64(dt)/float64(t.duration)
	}
	if p >= 1 {
		t.finish()
		return
	}
	if p < t.progress {
		return
	}

	e := t.ease(p)
	inc := e - t.eased
	t.from = t.from.Add(t.fromDiff.Scale(inc))
	t.to = t.to.Add(t.toDiff.Scale(inc))
	t.progress = p
	t.eased = e
}

func (t *Transition) finish() {
	target := combos[t.current]
	t.from = target.From
	t.to = target.To
	t.active = false
	t.progress = 1
	t.eased = 1

	if t.hasPending {
		next := t.pending
		t.hasPending = false
		t.begin(next)
	}
}

// Sample returns the gradient colour at ratio r, 0 at the top and 1 at the
// bottom.
func (t *Transition) Sample(r float64) geom.Color {
	return t.from.Lerp(t.to, r)
}

// Colors returns the current gradient endpoints.
func (t *Transition) Colors() (from, to geom.Color) { return t.from, t.to }

// Gradient snapshots the current endpoints for one frame of shading.
func (t *Transition) Gradient() Gradient { return Gradient{From: t.from, To: t.to} }

// Current is the combo the colours are at or heading to.
func (t *Transition) Current() int { return t.current }

// Pending returns the queued combo index, if any.
func (t *Transition) Pending() (int, bool) { return t.pending, t.hasPending }

// Transitioning reports whether a transition is running.
func (t *Transition) Transitioning() bool { return t.active }

// Progress is the linear progress of the running transition, or 1 when idle.
func (t *Transition) Progress() float64 {
	if !t.active {
		return 1
	}
	return t.progress
}

// Gradient is an immutable pair of endpoints.
type Gradient struct {
	From, To geom.Color
}

// Sample returns From + (To - From) * r.
func (g Gradient) Sample(r float64) geom.Color {
	return g.From.Lerp(g.To, r)
}

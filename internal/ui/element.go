package ui

import (
	"time"

	"edgebubble/internal/geometry"
)

// Element is the on-screen bubble. Moves are either immediate or eased over
// the current transition duration, like a CSS transition on left/top.
type Element struct {
	now     func() time.Time
	width   float64
	height  float64
	label   string
	grabbed bool

	transition time.Duration

	// animation from -> to over duration starting at start; duration 0 means at rest on to
	from     geometry.Point
	to       geometry.Point
	start    time.Time
	duration time.Duration
}

// NewElement creates a bubble of the given size resting at the origin
func NewElement(width, height int, label string, now func() time.Time) *Element {
	if now == nil {
		now = time.Now
	}
	return &Element{
		now:    now,
		width:  float64(width),
		height: float64(height),
		label:  label,
	}
}

// Bounds returns the box at its current animated position
func (e *Element) Bounds() geometry.Rect {
	p := e.positionAt(e.now())
	return geometry.Rect{X: p.X, Y: p.Y, Width: e.width, Height: e.height}
}

// MoveTo starts a transition toward p, or jumps there when transitions are off
func (e *Element) MoveTo(p geometry.Point) {
	now := e.now()
	if e.transition <= 0 {
		e.from, e.to, e.duration = p, p, 0
		return
	}
	e.from = e.positionAt(now)
	e.to = p
	e.start = now
	e.duration = e.transition
}

// SetTransition sets the duration used by later moves. It does not interrupt
// a move already in flight.
func (e *Element) SetTransition(d time.Duration) {
	e.transition = d
}

// SetGrabbed toggles the "being dragged" style
func (e *Element) SetGrabbed(grabbed bool) {
	e.grabbed = grabbed
}

// Grabbed reports whether the bubble is drawn in its dragged style
func (e *Element) Grabbed() bool {
	return e.grabbed
}

// Label returns the text drawn inside the bubble
func (e *Element) Label() string {
	return e.label
}

// Animating reports whether a transition is still in flight
func (e *Element) Animating() bool {
	return e.duration > 0 && e.now().Sub(e.start) < e.duration
}

func (e *Element) positionAt(t time.Time) geometry.Point {
	if e.duration <= 0 {
		return e.to
	}
	elapsed := t.Sub(e.start)
	if elapsed >= e.duration {
		return e.to
	}
	if elapsed < 0 {
		elapsed = 0
	}
	f := easeInOut(float64(elapsed) / float64(e.duration))
	return geometry.Point{
		X: e.from.X + (e.to.X-e.from.X)*f,
		Y: e.from.Y + (e.to.Y-e.from.Y)*f,
	}
}

// easeInOut is a cubic ease-in-out on [0, 1]
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

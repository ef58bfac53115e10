package bubble

import (
	"log/slog"
	"time"

	"edgebubble/internal/eventbus"
	"edgebubble/internal/geometry"
	"edgebubble/internal/reactive"
)

// SnapDuration is the length of the snap animation. Overlays outlive a drag
// by the same amount so they stay visible while the element settles.
const SnapDuration = 300 * time.Millisecond

// Config holds the controller options
type Config struct {
	// IndicatorSize is the inset from each viewport edge the element snaps to
	IndicatorSize float64
}

// Option customizes a Controller
type Option func(*Controller)

// WithLogger sets the logger used for state transitions
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEventBus publishes lifecycle events to bus
func WithEventBus(bus eventbus.EventBus) Option {
	return func(c *Controller) {
		c.bus = bus
	}
}

// session is the state of one pointer-down..pointer-up interaction
type session struct {
	dragging    bool
	lastPointer geometry.Point
	// position is the element's top-left corner, seeded from Bounds at drag
	// start and only ever moved by pointer deltas afterwards
	position geometry.Point
}

// overlaySet is everything a drag session mounts. It outlives the session by
// SnapDuration.
type overlaySet struct {
	border    Handle
	shadow    Handle
	unsubMove func()
	unsubUp   func()
	teardown  Timer
	disposed  bool
}

// Controller drives one draggable element: pointer tracking, drag overlays
// and the snap to the nearest viewport edge.
// All methods must be called from a single goroutine.
type Controller struct {
	cfg    Config
	input  Input
	host   OverlayHost
	sched  Scheduler
	logger *slog.Logger
	bus    eventbus.EventBus

	el       Element
	viewport geometry.Viewport
	lines    geometry.Diagonals

	session  session
	overlays *overlaySet

	direction *reactive.Cell[geometry.Direction]
	rect      *reactive.Cell[geometry.Rect]

	unsubDown       func()
	unsubResize     func()
	transitionTimer Timer
}

// NewController creates a controller. Nothing happens until Mount.
func NewController(cfg Config, input Input, host OverlayHost, sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		input:     input,
		host:      host,
		sched:     sched,
		logger:    slog.New(slog.DiscardHandler),
		direction: reactive.NewCell(geometry.Right),
		rect:      reactive.NewCell(geometry.Rect{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Direction is the edge the element is heading toward
func (c *Controller) Direction() *reactive.Cell[geometry.Direction] {
	return c.direction
}

// Rect is the element box as tracked during a drag
func (c *Controller) Rect() *reactive.Cell[geometry.Rect] {
	return c.rect
}

// Dragging reports whether a drag session is active
func (c *Controller) Dragging() bool {
	return c.session.dragging
}

// Viewport returns the viewport captured by the last Initialize
func (c *Controller) Viewport() geometry.Viewport {
	return c.viewport
}

// Mount attaches the controller to el and runs Initialize
func (c *Controller) Mount(el Element) {
	if el == nil {
		return
	}
	c.el = el
	if c.unsubResize == nil {
		c.unsubResize = c.input.OnResize(func(vp geometry.Viewport) {
			c.initialize(vp)
		})
	}
	c.Initialize()
}

// Unmount detaches every listener, cancels pending timers, disposes any
// overlays and forgets the element. Later events are ignored.
func (c *Controller) Unmount() {
	if c.unsubDown != nil {
		c.unsubDown()
		c.unsubDown = nil
	}
	if c.unsubResize != nil {
		c.unsubResize()
		c.unsubResize = nil
	}
	c.flushOverlays()
	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
		c.transitionTimer = nil
	}
	c.session = session{}
	c.el = nil
	c.logger.Debug("bubble unmounted")
}

// Initialize captures the viewport, rebuilds the diagonals, re-attaches the
// pointer-down listener and snaps to the right edge.
func (c *Controller) Initialize() {
	c.initialize(c.input.Viewport())
}

func (c *Controller) initialize(vp geometry.Viewport) {
	if c.el == nil {
		return
	}

	c.viewport = vp
	c.lines = geometry.BuildDiagonals(vp)

	if c.unsubDown != nil {
		c.unsubDown()
	}
	c.unsubDown = c.input.OnPointerDown(c.StartDrag)

	c.logger.Debug("viewport captured", "width", vp.Width, "height", vp.Height)
	c.publish(eventbus.ViewportChangedEvent{Viewport: vp})

	c.Snap(geometry.Right)
}

// StartDrag begins a drag session at pointer p. No-op while already dragging.
func (c *Controller) StartDrag(p geometry.Point) {
	el := c.el
	if el == nil {
		return
	}
	if c.session.dragging {
		c.logger.Debug("pointer-down ignored, drag in progress")
		return
	}

	// A prior session may still be inside its grace window
	c.flushOverlays()
	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
		c.transitionTimer = nil
	}
	el.SetTransition(0)

	c.session = session{dragging: true, lastPointer: p}
	el.SetGrabbed(true)

	bounds := el.Bounds()
	c.session.position = bounds.Min()
	el.MoveTo(c.session.position)

	ov := &overlaySet{}
	ov.border = c.host.MountBorder()

	d := c.classify(p)
	c.rect.Set(bounds)
	c.direction.Set(d)
	ov.shadow = c.host.MountShadow(c.direction, c.rect)

	ov.unsubMove = c.input.OnPointerMove(c.Drag)
	ov.unsubUp = c.input.OnPointerUp(c.EndDrag)
	c.overlays = ov

	c.logger.Debug("drag started", "x", p.X, "y", p.Y, "direction", d)
	c.publish(eventbus.DragStartedEvent{Pointer: p, Bounds: bounds, Direction: d})
}

// Drag moves the element by the pointer delta since the last event
func (c *Controller) Drag(p geometry.Point) {
	el := c.el
	if el == nil || !c.session.dragging {
		return
	}

	delta := p.Sub(c.session.lastPointer)
	c.session.position = c.session.position.Add(delta)
	el.MoveTo(c.session.position)
	c.session.lastPointer = p

	c.rect.Set(c.rect.Get().WithPosition(c.session.position))

	// Direction follows the pointer, not the element
	from := c.direction.Get()
	to := c.classify(p)
	if c.direction.Set(to) {
		c.publish(eventbus.DirectionChangedEvent{From: from, To: to})
	}
}

// EndDrag finishes the session at pointer p and snaps to the edge p is nearest to
func (c *Controller) EndDrag(p geometry.Point) {
	el := c.el
	if el == nil || !c.session.dragging {
		return
	}

	c.session.dragging = false
	el.SetGrabbed(false)

	if ov := c.overlays; ov != nil {
		ov.teardown = c.sched.AfterFunc(SnapDuration, func() {
			c.disposeOverlays(ov, false)
		})
	}

	d := c.classify(p)
	c.logger.Debug("drag ended", "x", p.X, "y", p.Y, "direction", d)
	c.publish(eventbus.DragEndedEvent{Pointer: p, Direction: d})

	c.Snap(d)
}

// Snap animates the element flush against edge d, inset by IndicatorSize
func (c *Controller) Snap(d geometry.Direction) {
	el := c.el
	if el == nil {
		return
	}

	el.SetTransition(SnapDuration)

	target := c.snapTarget(el.Bounds(), d)
	el.MoveTo(target)
	c.direction.Set(d)

	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
	}
	c.transitionTimer = c.sched.AfterFunc(SnapDuration, func() {
		c.transitionTimer = nil
		if c.el != nil {
			c.el.SetTransition(0)
		}
	})

	c.logger.Debug("snapping", "direction", d, "x", target.X, "y", target.Y)
	c.publish(eventbus.SnappedEvent{Direction: d, Target: target})
}

func (c *Controller) snapTarget(b geometry.Rect, d geometry.Direction) geometry.Point {
	inset := c.cfg.IndicatorSize
	switch d {
	case geometry.Top:
		return geometry.Point{X: b.X, Y: inset}
	case geometry.Bottom:
		return geometry.Point{X: b.X, Y: c.viewport.Height - b.Height - inset}
	case geometry.Left:
		return geometry.Point{X: inset, Y: b.Y}
	case geometry.Right:
		return geometry.Point{X: c.viewport.Width - b.Width - inset, Y: b.Y}
	}
	return b.Min()
}

func (c *Controller) classify(p geometry.Point) geometry.Direction {
	return geometry.Classify(p, c.viewport, c.lines)
}

// flushOverlays tears the current overlays down immediately, cancelling
// their scheduled teardown
func (c *Controller) flushOverlays() {
	ov := c.overlays
	if ov == nil {
		return
	}
	if ov.teardown != nil {
		ov.teardown.Stop()
	}
	c.disposeOverlays(ov, true)
}

func (c *Controller) disposeOverlays(ov *overlaySet, flushed bool) {
	if ov.disposed {
		return
	}
	ov.disposed = true

	if ov.unsubMove != nil {
		ov.unsubMove()
	}
	if ov.unsubUp != nil {
		ov.unsubUp()
	}
	if ov.border != nil {
		ov.border.Dispose()
	}
	if ov.shadow != nil {
		ov.shadow.Dispose()
	}
	if c.overlays == ov {
		c.overlays = nil
	}

	c.logger.Debug("overlays disposed", "flushed", flushed)
	c.publish(eventbus.OverlaysDisposedEvent{Flushed: flushed})
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

// OverlaysMounted reports whether drag overlays are currently mounted
func (c *Controller) OverlaysMounted() bool {
	return c.overlays != nil
}

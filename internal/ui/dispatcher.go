package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"edgebubble/internal/geometry"
)

// listeners is an ordered handler list with removable entries
type listeners[T any] struct {
	nextID int
	ids    []int
	fns    map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.ids = append(l.ids, id)

	return func() {
		if _, ok := l.fns[id]; !ok {
			return
		}
		delete(l.fns, id)
		for i, existing := range l.ids {
			if existing == id {
				l.ids = append(l.ids[:i:i], l.ids[i+1:]...)
				break
			}
		}
	}
}

// emit calls every handler registered before the call began.
// Handlers removed mid-emit are skipped.
func (l *listeners[T]) emit(v T) {
	ids := append([]int(nil), l.ids...)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn(v)
		}
	}
}

func (l *listeners[T]) len() int {
	return len(l.ids)
}

// Dispatcher routes Bubble Tea mouse and window messages to the controller.
// Presses are element-scoped: they are only delivered when hit reports the
// pointer is on the element. Motion and releases are delivered for the whole
// screen so a fast drag cannot escape.
type Dispatcher struct {
	viewport geometry.Viewport
	hit      func(geometry.Point) bool

	down   listeners[geometry.Point]
	move   listeners[geometry.Point]
	up     listeners[geometry.Point]
	resize listeners[geometry.Viewport]
}

// NewDispatcher creates a dispatcher using hit for element hit-testing
func NewDispatcher(hit func(geometry.Point) bool) *Dispatcher {
	return &Dispatcher{hit: hit}
}

// Viewport returns the last known viewport
func (d *Dispatcher) Viewport() geometry.Viewport { return d.viewport }

// OnPointerDown registers a handler for presses on the element
func (d *Dispatcher) OnPointerDown(fn func(geometry.Point)) func() { return d.down.add(fn) }

// OnPointerMove registers a handler for screen-wide motion
func (d *Dispatcher) OnPointerMove(fn func(geometry.Point)) func() { return d.move.add(fn) }

// OnPointerUp registers a handler for screen-wide releases
func (d *Dispatcher) OnPointerUp(fn func(geometry.Point)) func() { return d.up.add(fn) }

// OnResize registers a handler for viewport changes
func (d *Dispatcher) OnResize(fn func(geometry.Viewport)) func() { return d.resize.add(fn) }

// SetViewport records vp without notifying anyone
func (d *Dispatcher) SetViewport(vp geometry.Viewport) {
	d.viewport = vp
}

// Resize records vp and notifies resize handlers
func (d *Dispatcher) Resize(vp geometry.Viewport) {
	d.viewport = vp
	d.resize.emit(vp)
}

// HandleMouse routes msg. Reports whether any handler could have received it.
func (d *Dispatcher) HandleMouse(msg tea.MouseMsg) bool {
	p := geometry.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || d.hit == nil || !d.hit(p) {
			return false
		}
		d.down.emit(p)
		return d.down.len() > 0
	case tea.MouseActionMotion:
		d.move.emit(p)
		return d.move.len() > 0
	case tea.MouseActionRelease:
		d.up.emit(p)
		return d.up.len() > 0
	}
	return false
}

// Listening reports how many handlers are attached, by kind
func (d *Dispatcher) Listening() (down, move, up, resize int) {
	return d.down.len(), d.move.len(), d.up.len(), d.resize.len()
}

package bubble

import (
	"sort"
	"time"

	"edgebubble/internal/eventbus"
	"edgebubble/internal/geometry"
	"edgebubble/internal/reactive"
)

type fakeElement struct {
	rect       geometry.Rect
	transition time.Duration
	grabbed    bool
	moves      []geometry.Point
}

func (e *fakeElement) Bounds() geometry.Rect { return e.rect }

func (e *fakeElement) MoveTo(p geometry.Point) {
	e.rect = e.rect.WithPosition(p)
	e.moves = append(e.moves, p)
}

func (e *fakeElement) SetTransition(d time.Duration) { e.transition = d }

func (e *fakeElement) SetGrabbed(grabbed bool) { e.grabbed = grabbed }

type handlerList[T any] struct {
	next     int
	handlers map[int]func(T)
}

func (l *handlerList[T]) add(h func(T)) func() {
	if l.handlers == nil {
		l.handlers = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.handlers[id] = h
	return func() { delete(l.handlers, id) }
}

func (l *handlerList[T]) emit(v T) {
	ids := make([]int, 0, len(l.handlers))
	for id := range l.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if h, ok := l.handlers[id]; ok {
			h(v)
		}
	}
}

type fakeInput struct {
	viewport geometry.Viewport
	down     handlerList[geometry.Point]
	move     handlerList[geometry.Point]
	up       handlerList[geometry.Point]
	resize   handlerList[geometry.Viewport]
}

func (in *fakeInput) Viewport() geometry.Viewport { return in.viewport }

func (in *fakeInput) OnPointerDown(h func(geometry.Point)) func() { return in.down.add(h) }
func (in *fakeInput) OnPointerMove(h func(geometry.Point)) func() { return in.move.add(h) }
func (in *fakeInput) OnPointerUp(h func(geometry.Point)) func()   { return in.up.add(h) }
func (in *fakeInput) OnResize(h func(geometry.Viewport)) func()   { return in.resize.add(h) }

func (in *fakeInput) Down(x, y float64) { in.down.emit(geometry.Point{X: x, Y: y}) }
func (in *fakeInput) Move(x, y float64) { in.move.emit(geometry.Point{X: x, Y: y}) }
func (in *fakeInput) Up(x, y float64)   { in.up.emit(geometry.Point{X: x, Y: y}) }

func (in *fakeInput) Resize(vp geometry.Viewport) {
	in.viewport = vp
	in.resize.emit(vp)
}

type fakeTimer struct {
	due     time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler fires timers only when Advance moves its clock past them
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{due: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.now += d
	for {
		var next *fakeTimer
		for _, t := range s.timers {
			if t.stopped || t.fired || t.due > s.now {
				continue
			}
			if next == nil || t.due < next.due {
				next = t
			}
		}
		if next == nil {
			return
		}
		next.fired = true
		next.f()
	}
}

func (s *fakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeHandle struct {
	host     *fakeHost
	disposed bool
	unsubs   []func()
}

func (h *fakeHandle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	h.host.live--
	for _, unsub := range h.unsubs {
		unsub()
	}
}

type shadowFrame struct {
	direction geometry.Direction
	rect      geometry.Rect
}

type fakeHost struct {
	borders int
	shadows int
	live    int
	frames  []shadowFrame
	handles []*fakeHandle
}

func (h *fakeHost) MountBorder() Handle {
	h.borders++
	h.live++
	handle := &fakeHandle{host: h}
	h.handles = append(h.handles, handle)
	return handle
}

func (h *fakeHost) MountShadow(dir *reactive.Cell[geometry.Direction], rect *reactive.Cell[geometry.Rect]) Handle {
	h.shadows++
	h.live++
	handle := &fakeHandle{host: h}
	render := func() {
		h.frames = append(h.frames, shadowFrame{direction: dir.Get(), rect: rect.Get()})
	}
	handle.unsubs = append(handle.unsubs,
		dir.Subscribe(func(geometry.Direction) { render() }),
		rect.Subscribe(func(geometry.Rect) { render() }),
	)
	render()
	h.handles = append(h.handles, handle)
	return handle
}

// recordingBus is a synchronous EventBus for assertions
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func (b *recordingBus) types() []eventbus.EventType {
	out := make([]eventbus.EventType, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type())
	}
	return out
}

package ui

import (
	"sync"

	"edgebubble/internal/bubble"
	"edgebubble/internal/geometry"
	"edgebubble/internal/reactive"
	"edgebubble/internal/ui/views"
)

// layer is something the overlay host paints over the screen
type layer interface {
	draw(c *views.Canvas, s *views.Styles, vp geometry.Viewport)
}

type borderLayer struct{}

func (borderLayer) draw(c *views.Canvas, s *views.Styles, vp geometry.Viewport) {
	views.DrawBorder(c, s, vp)
}

// shadowLayer keeps a cached frame that is rebuilt whenever either cell changes
type shadowLayer struct {
	frame   views.ShadowFrame
	renders int
}

func (l *shadowLayer) draw(c *views.Canvas, s *views.Styles, _ geometry.Viewport) {
	views.DrawShadow(c, s, l.frame)
}

// OverlayHost mounts the drag overlays as layers painted under the bubble
type OverlayHost struct {
	nextID int
	ids    []int
	layers map[int]layer
}

// NewOverlayHost creates a host with no layers
func NewOverlayHost() *OverlayHost {
	return &OverlayHost{layers: make(map[int]layer)}
}

type overlayHandle struct {
	once    sync.Once
	dispose func()
}

func (h *overlayHandle) Dispose() {
	h.once.Do(h.dispose)
}

func (o *OverlayHost) mount(l layer, cleanup func()) bubble.Handle {
	id := o.nextID
	o.nextID++
	o.layers[id] = l
	o.ids = append(o.ids, id)

	return &overlayHandle{dispose: func() {
		if cleanup != nil {
			cleanup()
		}
		delete(o.layers, id)
		for i, existing := range o.ids {
			if existing == id {
				o.ids = append(o.ids[:i:i], o.ids[i+1:]...)
				break
			}
		}
	}}
}

// MountBorder shows the viewport frame
func (o *OverlayHost) MountBorder() bubble.Handle {
	return o.mount(borderLayer{}, nil)
}

// MountShadow shows a shadow that follows direction and rect
func (o *OverlayHost) MountShadow(direction *reactive.Cell[geometry.Direction], rect *reactive.Cell[geometry.Rect]) bubble.Handle {
	l := &shadowLayer{}
	render := func() {
		l.frame = views.ShadowFrame{Direction: direction.Get(), Rect: rect.Get()}
		l.renders++
	}
	unsubDir := direction.Subscribe(func(geometry.Direction) { render() })
	unsubRect := rect.Subscribe(func(geometry.Rect) { render() })
	render()

	return o.mount(l, func() {
		unsubDir()
		unsubRect()
	})
}

// Len returns the number of mounted overlays
func (o *OverlayHost) Len() int {
	return len(o.ids)
}

// Draw paints every mounted overlay in mount order
func (o *OverlayHost) Draw(c *views.Canvas, s *views.Styles, vp geometry.Viewport) {
	for _, id := range o.ids {
		o.layers[id].draw(c, s, vp)
	}
}

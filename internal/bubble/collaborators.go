package bubble

import (
	"time"

	"edgebubble/internal/geometry"
	"edgebubble/internal/reactive"
)

// Element is the draggable surface the controller moves around
type Element interface {
	// Bounds returns the element's current on-screen box, mid-animation included
	Bounds() geometry.Rect
	// MoveTo sets the element's target top-left corner. With a transition
	// enabled the element animates there, otherwise it jumps.
	MoveTo(p geometry.Point)
	// SetTransition enables a timed ease-in-out transition; zero disables it
	SetTransition(d time.Duration)
	// SetGrabbed applies or reverts the "being dragged" style
	SetGrabbed(grabbed bool)
}

// Handle releases a mounted overlay. Dispose must be idempotent.
type Handle interface {
	Dispose()
}

// OverlayHost renders the transient drag overlays
type OverlayHost interface {
	MountBorder() Handle
	MountShadow(direction *reactive.Cell[geometry.Direction], rect *reactive.Cell[geometry.Rect]) Handle
}

// Input is the event source the controller taps into.
// Every On* method returns an unsubscribe function.
type Input interface {
	// Viewport returns the current surface size
	Viewport() geometry.Viewport
	// OnPointerDown delivers presses that land on the element
	OnPointerDown(handler func(geometry.Point)) func()
	// OnPointerMove delivers pointer motion anywhere on the surface
	OnPointerMove(handler func(geometry.Point)) func()
	// OnPointerUp delivers releases anywhere on the surface
	OnPointerUp(handler func(geometry.Point)) func()
	OnResize(handler func(geometry.Viewport)) func()
}

// Timer is a pending scheduled callback
type Timer interface {
	// Stop cancels the callback. Reports false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the controller's goroutine
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

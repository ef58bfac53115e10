package domain

import (
	"edgebubble/internal/geometry"
)

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventViewportChanged  EventType = "ViewportChanged"
	EventDragStarted      EventType = "DragStarted"
	EventDirectionChanged EventType = "DirectionChanged"
	EventDragEnded        EventType = "DragEnded"
	EventSnapped          EventType = "Snapped"
	EventOverlaysDisposed EventType = "OverlaysDisposed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ViewportChangedEvent is emitted when the controller captures a new viewport size
type ViewportChangedEvent struct {
	Viewport geometry.Viewport
}

func (e ViewportChangedEvent) Type() EventType { return EventViewportChanged }

// DragStartedEvent is emitted when a pointer-down begins a drag session
type DragStartedEvent struct {
	Pointer   geometry.Point
	Bounds    geometry.Rect
	Direction geometry.Direction
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DirectionChangedEvent is emitted when the pointer crosses a diagonal mid-drag
type DirectionChangedEvent struct {
	From geometry.Direction
	To   geometry.Direction
}

func (e DirectionChangedEvent) Type() EventType { return EventDirectionChanged }

// DragEndedEvent is emitted on pointer-up
type DragEndedEvent struct {
	Pointer   geometry.Point
	Direction geometry.Direction
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// SnappedEvent is emitted when the element starts animating to an edge
type SnappedEvent struct {
	Direction geometry.Direction
	Target    geometry.Point
}

func (e SnappedEvent) Type() EventType { return EventSnapped }

// OverlaysDisposedEvent is emitted when a session's overlays are torn down
type OverlaysDisposedEvent struct {
	// Flushed is true when a new drag tore the overlays down before the grace window ended
	Flushed bool
}

func (e OverlaysDisposedEvent) Type() EventType { return EventOverlaysDisposed }

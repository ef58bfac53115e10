package reactive

import "sync"

// Cell holds a value and notifies subscribers synchronously whenever Set
// stores a value different from the current one.
type Cell[T comparable] struct {
	mu       sync.Mutex
	value    T
	nextID   int
	handlers map[int]func(T)
	order    []int
}

// NewCell creates a cell holding initial
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value:    initial,
		handlers: make(map[int]func(T)),
	}
}

// Get returns the current value
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v and, if it changed, calls every subscriber in subscription order
// before returning. Reports whether the value changed.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	if c.value == v {
		c.mu.Unlock()
		return false
	}
	c.value = v
	// Copy so handlers may subscribe or unsubscribe while being notified
	handlers := make([]func(T), 0, len(c.order))
	for _, id := range c.order {
		handlers = append(handlers, c.handlers[id])
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(v)
	}
	return true
}

// Subscribe registers handler for future changes.
// Returns an unsubscribe function; calling it more than once is harmless.
func (c *Cell[T]) Subscribe(handler func(T)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.handlers[id] = handler
	c.order = append(c.order, id)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if _, ok := c.handlers[id]; !ok {
			return
		}
		delete(c.handlers, id)
		for i, existing := range c.order {
			if existing == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Watch calls handler with the current value and then on every change
func (c *Cell[T]) Watch(handler func(T)) func() {
	unsubscribe := c.Subscribe(handler)
	handler(c.Get())
	return unsubscribe
}

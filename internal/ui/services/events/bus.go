package events

import (
	"fmt"
	"sync"
)

// Bus is a synchronous event bus for UI services.
// Handlers run on the publishing goroutine, which for the list is always the
// bubbletea update loop, so they may touch UI state directly.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type.
// The event type is the %T name of the event, e.g. "events.RedrawEvent".
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := make([]func(interface{}), len(b.listeners[TypeOf(event)]))
	copy(handlers, b.listeners[TypeOf(event)])
	b.mu.RUnlock()

	// Handlers may subscribe again, so the lock is not held while they run.
	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the name an event is published under.
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}

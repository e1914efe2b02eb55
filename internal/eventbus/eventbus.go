package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"brochure/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType]map[int]EventHandler
	order    map[EventType][]int
	events   chan DomainEvent
	quit     chan struct{}
	wg       sync.WaitGroup
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers: make(map[EventType]map[int]EventHandler),
		order:    make(map[EventType][]int),
		events:   make(chan DomainEvent, 256),
		quit:     make(chan struct{}),
	}
	b.wg.Add(1)
	go b.dispatch()
	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.events <- event:
	default:
		log.Printf("event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]EventHandler)
	}
	b.handlers[eventType][id] = handler
	b.order[eventType] = append(b.order[eventType], id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
		ids := b.order[eventType]
		for i, v := range ids {
			if v == id {
				b.order[eventType] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatch loop. Pending events are dropped.
func (b *bus) Close() {
	close(b.quit)
	b.wg.Wait()
}

// dispatch delivers events to subscribers in subscription order
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.events:
			b.mu.RLock()
			handlers := make([]EventHandler, 0, len(b.order[event.Type()]))
			for _, id := range b.order[event.Type()] {
				if h, ok := b.handlers[event.Type()][id]; ok {
					handlers = append(handlers, h)
				}
			}
			b.mu.RUnlock()

			for _, h := range handlers {
				b.call(h, event)
			}

		case <-b.quit:
			return
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

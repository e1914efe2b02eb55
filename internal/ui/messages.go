package ui

import "brochure/internal/eventbus"

// EventMsg wraps a bus event for delivery into the Bubble Tea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

type glideTickMsg struct{}

type imageLoadedMsg struct {
	index int
	art   []string
	err   error
}

type helpPagerMsg struct {
	err error
}

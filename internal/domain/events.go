package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged    EventType = "SlideChanged"
	EventTabSelected     EventType = "TabSelected"
	EventModalOpened     EventType = "ModalOpened"
	EventModalClosed     EventType = "ModalClosed"
	EventSectionRevealed EventType = "SectionRevealed"
	EventImageLoaded     EventType = "ImageLoaded"
	EventNavActivated    EventType = "NavActivated"
	EventGateChanged     EventType = "GateChanged"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted when the carousel moves to a new slide
type SlideChangedEvent struct {
	Index int
	Total int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// TabSelectedEvent is emitted when an operations tab becomes active
type TabSelectedEvent struct {
	Index int
	Label string
}

func (e TabSelectedEvent) Type() EventType { return EventTabSelected }

// ModalOpenedEvent is emitted when the booking dialog opens
type ModalOpenedEvent struct{}

func (e ModalOpenedEvent) Type() EventType { return EventModalOpened }

// ModalClosedEvent is emitted when the booking dialog closes
type ModalClosedEvent struct{}

func (e ModalClosedEvent) Type() EventType { return EventModalClosed }

// SectionRevealedEvent is emitted the first time a section scrolls into view
type SectionRevealedEvent struct {
	Section SectionID
}

func (e SectionRevealedEvent) Type() EventType { return EventSectionRevealed }

// ImageLoadedEvent is emitted when a gallery image finishes loading
type ImageLoadedEvent struct {
	Path string
	Err  error
}

func (e ImageLoadedEvent) Type() EventType { return EventImageLoaded }

// NavActivatedEvent is emitted when a navigation link is clicked
type NavActivatedEvent struct {
	Target SectionID
}

func (e NavActivatedEvent) Type() EventType { return EventNavActivated }

// GateChangedEvent is emitted when carousel keyboard control attaches or detaches
type GateChangedEvent struct {
	Attached bool
}

func (e GateChangedEvent) Type() EventType { return EventGateChanged }

// ConfigLoadedEvent is emitted when the page definition is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when the page definition is written out
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOptionsLoaded      EventType = "OptionsLoaded"
	EventOptionsFailed      EventType = "OptionsFailed"
	EventSelectionChanged   EventType = "SelectionChanged"
	EventSelectionConfirmed EventType = "SelectionConfirmed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OptionsLoadedEvent is emitted once the option set is available
type OptionsLoadedEvent struct {
	Count    int
	Fallback bool // true when the built-in list replaced a failed load
}

func (e OptionsLoadedEvent) Type() EventType { return EventOptionsLoaded }

// OptionsFailedEvent is emitted when loading failed and no fallback applied
type OptionsFailedEvent struct {
	Err error
}

func (e OptionsFailedEvent) Type() EventType { return EventOptionsFailed }

// SelectionChangedEvent is emitted after every selection mutation
type SelectionChangedEvent struct {
	Selection []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionConfirmedEvent is emitted when the user accepts the selection
type SelectionConfirmedEvent struct {
	Selection []string
}

func (e SelectionConfirmedEvent) Type() EventType { return EventSelectionConfirmed }

package domain

// EventKind discriminates inbound transport events
type EventKind string

const (
	EventCommand EventKind = "command"
	EventButton  EventKind = "button"
	EventText    EventKind = "text"
)

// Event is one inbound user action delivered by the transport
type Event struct {
	UserID int64
	Kind   EventKind
	// Data carries the command name, callback token or message text,
	// depending on Kind
	Data string
}

// CommandEvent builds an Event for a typed slash command (without the slash)
func CommandEvent(userID int64, name string) Event {
	return Event{UserID: userID, Kind: EventCommand, Data: name}
}

// ButtonEvent builds an Event for an inline button press
func ButtonEvent(userID int64, token string) Event {
	return Event{UserID: userID, Kind: EventButton, Data: token}
}

// TextEvent builds an Event for a free-text message
func TextEvent(userID int64, text string) Event {
	return Event{UserID: userID, Kind: EventText, Data: text}
}

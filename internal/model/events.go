package model

import "fmt"

// Event is a year-stamped, human-readable narration of a
// simulation-significant occurrence. Events are observability only and
// never drive control flow.
type Event struct {
	Year    int
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("%d: %s", e.Year, e.Message)
}

// EventLog is the append-only record of events for a model run.
type EventLog struct {
	model  *Model
	events []Event
}

// Add appends an event stamped with the model's current year.
func (l *EventLog) Add(message string) {
	l.events = append(l.events, Event{Year: l.model.Year, Message: message})
}

// Addf appends a formatted event stamped with the current year.
func (l *EventLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Events returns all recorded events in order.
func (l *EventLog) Events() []Event {
	return l.events
}

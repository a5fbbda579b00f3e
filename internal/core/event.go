package core

// EventKind tags an inbound protocol event delivered by the transport.
type EventKind int

const (
	// EventJoin announces a participant's presence and role in a room.
	EventJoin EventKind = iota
	// EventLeave signals that a participant's presence became unavailable.
	EventLeave
	// EventSubject carries a room subject change. Informational only;
	// the core takes no action on it.
	EventSubject
	// EventMessage carries a chat message body.
	EventMessage
)

// Event is the closed set of things the transport can tell the core.
// Which fields are meaningful depends on Kind: Nick and Role for
// joins, Nick for leaves, Text for subjects and messages.
type Event struct {
	Kind EventKind
	Room string
	Nick string
	Role Role
	Text string
}

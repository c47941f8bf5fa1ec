package event

import "time"

// Notification kinds emitted by the lifecycle. The core only names what
// happened; any user-visible text or haptics belong to the collaborator
// that consumes these.
const (
	NoteZoneEntered = "zone_entered"
	NoteZoneExited  = "zone_exited"
	NoteEventJoined = "event_joined"
	NoteEventLeft   = "event_left"
)

type Notification struct {
	Kind    string    `json:"kind"`
	EventID string    `json:"event_id"`
	UserID  string    `json:"user_id"`
	At      time.Time `json:"at"`
}

// Notifier receives discrete lifecycle notifications. Implementations must
// not block; the service fires and forgets.
type Notifier interface {
	Notify(n Notification)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// File: game/messages.go
package game

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// --- WebSocket Messages (Client <-> Server) ---

// WelcomeMessage is the first message a subscriber receives.
type WelcomeMessage struct {
	MessageType string `json:"messageType"` // "welcome"
	ClientID    string `json:"clientId"`
}

// StateMessage carries a full snapshot of the match.
type StateMessage struct {
	MessageType string   `json:"messageType"` // "state"
	Snapshot    Snapshot `json:"snapshot"`
}

// ClientMessage is sent by clients. A key event uses Key (raw code) or Code
// (browser key name) with Down; a resize sets Width and Height; Reset
// restarts play and clears a halted match.
type ClientMessage struct {
	Key    int    `json:"key,omitempty"`
	Code   string `json:"code,omitempty"`
	Down   bool   `json:"down,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Reset  bool   `json:"reset,omitempty"`
}

// NewStateMessage wraps a snapshot for the wire.
func NewStateMessage(s Snapshot) StateMessage {
	return StateMessage{MessageType: "state", Snapshot: s}
}

// --- Actor Messages (Internal Communication) ---

// Subscriber receives JSON-serialisable values pushed by the broadcaster.
type Subscriber interface {
	Send(v interface{}) error
}

// --- GameActor Messages ---

// GameTick asks the GameActor to poll its tick gate and run the resolver.
type GameTick struct{}

// BroadcastTick asks the GameActor to push the current state to subscribers.
type BroadcastTick struct{}

// KeyEvent records a key press (Down) or release by one client.
type KeyEvent struct {
	ClientID string
	Key      Key
	Down     bool
}

// ResizeScreen updates the physical screen size used for border checks.
type ResizeScreen struct {
	Width  int
	Height int
}

// Subscribe registers a state subscriber under ID.
type Subscribe struct {
	ID         string
	Subscriber Subscriber
}

// Unsubscribe removes the subscriber registered under ID and releases any
// keys it still holds.
type Unsubscribe struct {
	ID string
}

// ResetMatch restarts play from the initial positions and clears a halt.
type ResetMatch struct{}

// GetSnapshotRequest is answered (via Ask) with a Snapshot.
type GetSnapshotRequest struct{}

// --- BroadcasterActor Messages ---

// AddSubscriber registers a subscriber with the broadcaster.
type AddSubscriber struct {
	ID         string
	Subscriber Subscriber
}

// RemoveSubscriber drops a subscriber from the broadcaster.
type RemoveSubscriber struct {
	ID string
}

// BroadcastMessage is fanned out to every subscriber, or only to Target when set.
type BroadcastMessage struct {
	Target  string
	Payload interface{}
}

// GetSubscriberCountRequest is answered (via Ask) with an int.
type GetSubscriberCountRequest struct{}

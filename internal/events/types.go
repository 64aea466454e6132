// Package events defines event types and payloads for the socwire event bus.
package events

// EventType represents the type of event emitted through the EventBus.
type EventType string

const (
	// Decode pipeline events
	EventMessageDecoded EventType = "message_decoded"
	EventDecodeFailed   EventType = "decode_failed"

	// Relay connection events
	EventClientConnected    EventType = "client_connected"
	EventClientDisconnected EventType = "client_disconnected"

	// System events
	EventConfigChanged EventType = "config_changed"
	EventShutdown      EventType = "shutdown"
)

// Event represents a single event in the system.
type Event struct {
	Type    EventType
	Source  string
	Payload interface{}
}

// MessageDecodedPayload carries one successfully decoded wire line.
type MessageDecodedPayload struct {
	Remote    string `json:"remote,omitempty"`
	Direction string `json:"direction"`
	TypeID    int    `json:"type"`
	Kind      string `json:"kind"`
	Game      string `json:"game,omitempty"`
	Line      string `json:"line"`
	Rendering string `json:"rendering"`
}

// DecodeFailedPayload carries a line the dispatcher rejected.
type DecodeFailedPayload struct {
	Remote string `json:"remote,omitempty"`
	Line   string `json:"line"`
}

// ClientConnectionPayload is emitted when a relay client connects or
// disconnects.
type ClientConnectionPayload struct {
	Remote    string `json:"remote"`
	Connected bool   `json:"connected"`
}

// ConfigChangedPayload is emitted when configuration changes occur.
type ConfigChangedPayload struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

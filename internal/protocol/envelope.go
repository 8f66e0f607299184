// Package protocol defines the WebSocket wire format: a typed envelope
// whose Type selects the payload schema, plus the message payloads
// exchanged between clients and a game hub.
package protocol

import "encoding/json"

// Envelope wraps every WebSocket message. The payload stays raw until the
// receiver knows, from Type, what to decode it into.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope creates an envelope with a JSON-encoded payload.
func NewEnvelope(typ string, payload interface{}) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: typ, Payload: data}, nil
}

// MustEnvelope is like NewEnvelope but panics on error.
func MustEnvelope(typ string, payload interface{}) Envelope {
	e, err := NewEnvelope(typ, payload)
	if err != nil {
		panic(err)
	}
	return e
}

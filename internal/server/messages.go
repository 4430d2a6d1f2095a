// internal/server/messages.go
package server

import "encoding/json"

// Frame is the envelope for every server-to-client message. Data carries a
// type-dependent payload: an app.Snapshot for "snapshot", an event payload
// for "event", an app.PlayCardResult for "playResult".
type Frame struct {
	Type  string          `json:"type"`
	Event string          `json:"event,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

const (
	frameSnapshot   = "snapshot"
	frameEvent      = "event"
	framePlayResult = "playResult"
	frameAck        = "ack"
	frameError      = "error"
)

// Command is a client-to-server message. Type selects the action; the other
// fields only apply to "playCard".
type Command struct {
	Type   string  `json:"type"`
	CardID string  `json:"cardId,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

const (
	cmdStart    = "start"
	cmdPlayCard = "playCard"
	cmdPause    = "pause"
	cmdResume   = "resume"
)

func marshalFrame(frameType, eventName string, payload interface{}) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		raw = data
	}
	return json.Marshal(Frame{Type: frameType, Event: eventName, Data: raw})
}

func errorFrame(message string) []byte {
	data, err := json.Marshal(Frame{Type: frameError, Error: message})
	if err != nil {
		return []byte(`{"type":"error"}`)
	}
	return data
}

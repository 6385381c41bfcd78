package websocket

import (
	"encoding/json"
	"fmt"
)

const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
	EventNewMessage = "new_message"
)

// Event is the JSON frame exchanged in both directions.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

func encodeEvent(name string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Name: name, Data: raw})
}

func encodeRaw(name string, data json.RawMessage) ([]byte, error) {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return json.Marshal(Event{Name: name, Data: data})
}

func disconnectText(sessionID string) string {
	return fmt.Sprintf("user %s disconnected", sessionID)
}

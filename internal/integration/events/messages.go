package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IngestionCompletedMessage is published by the ingestion service after it has
// written transactions or a profile row for a user.
type IngestionCompletedMessage struct {
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *IngestionCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// IngestionCompletedMessageFromJSON creates a message from JSON bytes
func IngestionCompletedMessageFromJSON(data []byte) (*IngestionCompletedMessage, error) {
	var msg IngestionCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.UserID == uuid.Nil {
		return nil, fmt.Errorf("message has no user_id")
	}
	return &msg, nil
}

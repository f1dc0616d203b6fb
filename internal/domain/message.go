// Package domain
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a general purpose envelope. Each payload type is its own routing
// key on the bus, so Message[Order] subscribers never see Message[Invoice].
type Message[T any] struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Payload   T         `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessage[T any](title, body string, payload T) Message[T] {
	return Message[T]{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

type MessagePublishRequest struct {
	Title   string          `json:"title" validate:"required,max=200"`
	Body    string          `json:"body" validate:"max=4000"`
	Payload json.RawMessage `json:"payload"`
}

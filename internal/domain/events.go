package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventCultureChanged struct {
	Previous  string    `json:"previous"`
	Current   string    `json:"current"`
	ChangedAt time.Time `json:"changed_at"`
}

type EventUnhandledError struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
	Stack      string    `json:"stack,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventHeartbeat struct {
	Sequence int64     `json:"sequence"`
	At       time.Time `json:"at"`
}

type CultureUpdateRequest struct {
	Culture string `json:"culture" validate:"required,bcp47_language_tag"`
}

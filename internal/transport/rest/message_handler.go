package rest

import (
	"encoding/json"
	"net/http"

	"herald/internal/core/event"
	"herald/internal/domain"
)

type MessageHandler struct {
	bus *event.Bus
}

func NewMessageHandler(bus *event.Bus) *MessageHandler {
	return &MessageHandler{bus: bus}
}

// Store publishes the request as a Message[json.RawMessage]. Subscribers run
// before the response is written.
func (h *MessageHandler) Store(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.MessagePublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	msg := domain.NewMessage(req.Title, req.Body, req.Payload)
	h.bus.Publish(msg)

	JSONSuccess(w, http.StatusAccepted, APIResponse{
		Message: "Message published",
		Data:    map[string]string{"id": msg.ID.String()},
	})
}

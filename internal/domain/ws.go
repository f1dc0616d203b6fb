package domain

import "encoding/json"

const (
	WsChannelCulture   = "culture"
	WsChannelErrors    = "errors"
	WsChannelHeartbeat = "heartbeat"
	WsChannelMessages  = "messages"
)

const (
	WsEventCultureChanged = "culture_changed"
	WsEventUnhandledError = "unhandled_error"
	WsEventHeartbeat      = "heartbeat"
	WsEventMessage        = "message"
	WsEventSubscribed     = "subscribed"
	WsEventUnsubscribed   = "unsubscribed"
)

type WsClientMessage struct {
	Type    string          `json:"type"`
	Channel string          `json:"channel,omitempty"`
	Event   string          `json:"event,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type WsServerEvent struct {
	Channel string `json:"channel"`
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

package ws

import (
	"encoding/json"

	"herald/internal/core/event"
	"herald/internal/domain"
)

// RegisterSubscribers forwards bus events to the matching hub channels. The
// caller disposes the returned subscriptions on shutdown.
func RegisterSubscribers(bus *event.Bus, hub *Hub) []*event.Subscription {
	return []*event.Subscription{
		event.Subscribe(bus, forward[domain.EventCultureChanged](hub, domain.WsChannelCulture, domain.WsEventCultureChanged)),
		event.Subscribe(bus, forward[domain.EventHeartbeat](hub, domain.WsChannelHeartbeat, domain.WsEventHeartbeat)),
		event.Subscribe(bus, forward[domain.Message[json.RawMessage]](hub, domain.WsChannelMessages, domain.WsEventMessage)),
		event.Subscribe(bus, func(evt domain.EventUnhandledError) {
			// stack traces stay server side
			evt.Stack = ""
			hub.Broadcast(&domain.WsServerEvent{
				Channel: domain.WsChannelErrors,
				Event:   domain.WsEventUnhandledError,
				Payload: evt,
			})
		}),
	}
}

func forward[T any](hub *Hub, channel, name string) func(T) {
	return func(evt T) {
		hub.Broadcast(&domain.WsServerEvent{
			Channel: channel,
			Event:   name,
			Payload: evt,
		})
	}
}

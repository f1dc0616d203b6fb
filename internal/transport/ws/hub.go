// Package ws pushes bus events to browser clients over websockets. Clients
// pick the channels they care about with subscribe/unsubscribe messages.
package ws

import (
	"context"
	"encoding/json"

	"herald/internal/domain"
	"herald/internal/logger"
)

type Hub struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	clients  map[*Client]bool
	channels map[string]map[*Client]bool

	register    chan *Client
	unregister  chan *Client
	subscribe   chan *Subscription
	unsubscribe chan *Subscription
	events      chan *domain.WsServerEvent

	log logger.Logger
}

type Subscription struct {
	client  *Client
	channel string
}

func NewHub(parent context.Context, log logger.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)

	return &Hub{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),

		clients:  make(map[*Client]bool),
		channels: make(map[string]map[*Client]bool),

		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan *Subscription),
		unsubscribe: make(chan *Subscription),
		events:      make(chan *domain.WsServerEvent, 256),

		log: log,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.log.Info("ws: hub shutting down")
			for client := range h.clients {
				close(client.send)
			}
			clear(h.clients)
			clear(h.channels)
			return

		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("ws: client registered", "id", client.ID, "total_clients", len(h.clients))

		case client := <-h.unregister:
			h.removeClient(client)

		case sub := <-h.subscribe:
			if !h.clients[sub.client] {
				continue
			}
			if h.channels[sub.channel] == nil {
				h.channels[sub.channel] = make(map[*Client]bool)
			}
			h.channels[sub.channel][sub.client] = true
			h.log.Debug("ws: client subscribed", "client_id", sub.client.ID, "channel", sub.channel)
			h.reply(sub.client, &domain.WsServerEvent{Channel: sub.channel, Event: domain.WsEventSubscribed})

		case sub := <-h.unsubscribe:
			if subs, ok := h.channels[sub.channel]; ok {
				delete(subs, sub.client)
				if len(subs) == 0 {
					delete(h.channels, sub.channel)
				}
				h.log.Debug("ws: client unsubscribed", "client_id", sub.client.ID, "channel", sub.channel)
			}
			if h.clients[sub.client] {
				h.reply(sub.client, &domain.WsServerEvent{Channel: sub.channel, Event: domain.WsEventUnsubscribed})
			}

		case event := <-h.events:
			h.handleEvent(event)
		}
	}
}

// Stop cancels the hub and waits for Run to return. Run must have been
// started.
func (h *Hub) Stop() {
	h.cancel()
	<-h.done
}

// Broadcast queues ev for delivery. Events sent after Stop are dropped.
func (h *Hub) Broadcast(ev *domain.WsServerEvent) {
	select {
	case h.events <- ev:
	case <-h.ctx.Done():
	}
}

func (h *Hub) handleEvent(event *domain.WsServerEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws: failed to marshal server event", "error", err)
		return
	}

	targetClients := h.clients

	if event.Channel != "" {
		subs, ok := h.channels[event.Channel]
		if !ok {
			h.log.Debug("ws: event channel has no subscribers", "channel", event.Channel)
			return
		}
		targetClients = subs
	}

	for client := range targetClients {
		select {
		case client.send <- message:
		default:
			h.log.Warn("ws: client channel full, force unregister", "id", client.ID)
			h.removeClient(client)
		}
	}
}

func (h *Hub) reply(client *Client, ev *domain.WsServerEvent) {
	message, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("ws: failed to marshal reply", "error", err)
		return
	}

	select {
	case client.send <- message:
	default:
		h.log.Warn("ws: client channel full, force unregister", "id", client.ID)
		h.removeClient(client)
	}
}

func (h *Hub) removeClient(client *Client) {
	if !h.clients[client] {
		return
	}

	delete(h.clients, client)
	close(client.send)
	h.log.Info("ws: client unregistered", "id", client.ID, "total_clients", len(h.clients))

	for channel, subs := range h.channels {
		if _, subscribed := subs[client]; subscribed {
			delete(subs, client)
			if len(subs) == 0 {
				delete(h.channels, channel)
			}
		}
	}
}

// the enqueue helpers give up once the hub is stopped so client goroutines
// never block on a hub that is no longer reading.

func (h *Hub) enqueueRegister(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.ctx.Done():
		return false
	}
}

func (h *Hub) enqueueUnregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.ctx.Done():
	}
}

func (h *Hub) enqueueSubscription(ch chan *Subscription, sub *Subscription) {
	select {
	case ch <- sub:
	case <-h.ctx.Done():
	}
}

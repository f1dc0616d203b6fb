// Package event is an in-process message aggregator. Messages are routed by
// the exact dynamic type of the published value: a subscriber for Base never
// sees a value of a type that embeds Base, and T and *T are different keys.
//
// Publish runs every subscriber synchronously on the caller's goroutine, in
// subscription order. A panicking subscriber is not recovered; the panic
// reaches the publisher and the rest of that fan-out is skipped.
package event

import (
	"fmt"
	"reflect"
	"sync"

	"herald/internal/logger"
)

type Bus struct {
	registries sync.Map // reflect.Type -> *registry
	log        logger.Logger
}

func New(log logger.Logger) *Bus {
	if log == nil {
		log = logger.Discard()
	}

	return &Bus{log: log}
}

// Subscribe registers fn for messages whose dynamic type is exactly T.
// It panics if T is an interface type, since no published value can have
// an interface as its dynamic type.
func Subscribe[T any](b *Bus, fn func(T)) *Subscription {
	if fn == nil {
		panic("event: nil handler")
	}

	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		panic(fmt.Sprintf("event: cannot subscribe to interface type %s", t))
	}

	r := b.registryFor(t)
	reg := r.add(func(event any) {
		fn(event.(T))
	})

	return &Subscription{registry: r, registration: reg}
}

// Publish delivers event to the subscribers of its dynamic type. Publishing a
// type nobody subscribed to, or a nil interface, does nothing.
func (b *Bus) Publish(event any) {
	t := reflect.TypeOf(event)
	if t == nil {
		return
	}

	v, ok := b.registries.Load(t)
	if !ok {
		return
	}

	v.(*registry).forEach(func(h handler) {
		h(event)
	})
}

// Count reports how many live subscriptions exist for T.
func Count[T any](b *Bus) int {
	v, ok := b.registries.Load(reflect.TypeFor[T]())
	if !ok {
		return 0
	}
	return v.(*registry).len()
}

// Types reports how many message types have a registry. Registries are never
// dropped, so this only grows.
func (b *Bus) Types() int {
	n := 0
	b.registries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (b *Bus) registryFor(t reflect.Type) *registry {
	if v, ok := b.registries.Load(t); ok {
		return v.(*registry)
	}

	v, loaded := b.registries.LoadOrStore(t, newRegistry())
	if !loaded {
		b.log.Debug("event: registry created", "type", t.String())
	}

	return v.(*registry)
}

package event

import (
	"slices"
	"sync"
	"sync/atomic"
)

// handler is the type-erased form of a subscriber callback. It is only ever
// built by Subscribe, which guarantees the dynamic type of its argument.
type handler func(event any)

type registration struct {
	fn     handler
	active atomic.Bool
}

// registry holds the subscribers of one message type. Writers copy the
// current slice under mu and swap it in; readers load the snapshot without
// locking, so a callback may freely call back into the registry.
type registry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[[]*registration]
}

func newRegistry() *registry {
	r := &registry{}
	r.snapshot.Store(&[]*registration{})
	return r
}

func (r *registry) add(fn handler) *registration {
	reg := &registration{fn: fn}
	reg.active.Store(true)

	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.snapshot.Load()
	next := make([]*registration, len(current), len(current)+1)
	copy(next, current)
	next = append(next, reg)
	r.snapshot.Store(&next)

	return reg
}

func (r *registry) remove(reg *registration) {
	if !reg.active.CompareAndSwap(true, false) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.snapshot.Load()
	idx := slices.Index(current, reg)
	if idx < 0 {
		return
	}

	next := make([]*registration, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	r.snapshot.Store(&next)
}

// forEach calls visit for every registration of the current snapshot, in
// registration order. Registrations disposed while the pass is running are
// skipped once their removal is visible.
func (r *registry) forEach(visit func(handler)) {
	for _, reg := range *r.snapshot.Load() {
		if !reg.active.Load() {
			continue
		}
		visit(reg.fn)
	}
}

func (r *registry) len() int {
	return len(*r.snapshot.Load())
}

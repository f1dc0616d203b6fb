// Package report collects unhandled errors announced on the event bus.
package report

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"herald/internal/core/event"
	"herald/internal/domain"
	"herald/internal/logger"

	"github.com/google/uuid"
)

type Reporter struct {
	log logger.Logger
	sub *event.Subscription

	mu        sync.Mutex
	reports   []domain.EventUnhandledError // oldest first
	limit     int
	retention time.Duration
}

func NewReporter(bus *event.Bus, log logger.Logger, limit int, retention time.Duration) *Reporter {
	if limit <= 0 {
		limit = 100
	}

	r := &Reporter{
		log:       log,
		limit:     limit,
		retention: retention,
	}
	r.sub = event.Subscribe(bus, r.handle)

	return r
}

func (r *Reporter) handle(evt domain.EventUnhandledError) {
	r.log.Error("unhandled error", "id", evt.ID.String(), "source", evt.Source, "error", evt.Message)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, evt)
	if over := len(r.reports) - r.limit; over > 0 {
		r.reports = append(r.reports[:0], r.reports[over:]...)
	}
}

// Recent returns the stored reports, newest first.
func (r *Reporter) Recent() []domain.EventUnhandledError {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.EventUnhandledError, len(r.reports))
	for i, evt := range r.reports {
		out[len(r.reports)-1-i] = evt
	}
	return out
}

// Prune drops reports that occurred before now minus the retention window
// and returns how many were removed. A zero retention keeps everything.
func (r *Reporter) Prune(now time.Time) int {
	if r.retention <= 0 {
		return 0
	}
	cutoff := now.Add(-r.retention)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.reports[:0]
	for _, evt := range r.reports {
		if !evt.OccurredAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	removed := len(r.reports) - len(kept)
	clear(r.reports[len(kept):])
	r.reports = kept

	return removed
}

// Close stops receiving reports. Safe to call more than once.
func (r *Reporter) Close() {
	r.sub.Unsubscribe()
}

// Capture turns a recovered panic value into an EventUnhandledError and
// publishes it.
func Capture(bus *event.Bus, source string, recovered any) domain.EventUnhandledError {
	var msg string
	switch v := recovered.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprintf("%v", v)
	}

	evt := domain.EventUnhandledError{
		ID:         uuid.New(),
		Source:     source,
		Message:    msg,
		Stack:      string(debug.Stack()),
		OccurredAt: time.Now().UTC(),
	}
	bus.Publish(evt)

	return evt
}

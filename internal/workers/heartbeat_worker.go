package workers

import (
	"context"
	"sync/atomic"
	"time"

	"herald/internal/core/event"
	"herald/internal/domain"
)

type HeartbeatWorker struct {
	bus *event.Bus
	seq atomic.Int64
}

func NewHeartbeatWorker(bus *event.Bus) *HeartbeatWorker {
	return &HeartbeatWorker{bus: bus}
}

func (w *HeartbeatWorker) Name() string {
	return "heartbeat"
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.bus.Publish(domain.EventHeartbeat{
		Sequence: w.seq.Add(1),
		At:       time.Now().UTC(),
	})

	return nil
}

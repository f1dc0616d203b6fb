// Package workers
package workers

import (
	"context"
	"time"

	"herald/internal/core/event"
	"herald/internal/core/report"
	"herald/internal/logger"
)

type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

type ManagerOptions struct {
	HeartbeatInterval time.Duration
	PruneInterval     time.Duration
}

type Manager struct {
	log logger.Logger

	scheduler *Scheduler
	bus       *event.Bus
	reporter  *report.Reporter
	opts      ManagerOptions
}

func NewManager(log logger.Logger, scheduler *Scheduler, bus *event.Bus, reporter *report.Reporter, opts ManagerOptions) *Manager {
	if opts.PruneInterval <= 0 {
		opts.PruneInterval = 10 * time.Minute
	}

	return &Manager{
		log: log,

		scheduler: scheduler,
		bus:       bus,
		reporter:  reporter,
		opts:      opts,
	}
}

// Start schedules the workers and returns a channel that is closed after all
// of them have stopped, which happens once ctx is done.
func (m *Manager) Start(ctx context.Context) <-chan struct{} {
	m.log.Info("worker: manager started")

	var loops []<-chan struct{}

	if m.opts.HeartbeatInterval > 0 {
		loops = append(loops, m.scheduler.RunByDuration(ctx, m.opts.HeartbeatInterval, NewHeartbeatWorker(m.bus)))
	}
	loops = append(loops, m.scheduler.RunByDuration(ctx, m.opts.PruneInterval, NewReportPruneWorker(m.reporter, m.log)))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, l := range loops {
			<-l
		}
	}()

	return done
}

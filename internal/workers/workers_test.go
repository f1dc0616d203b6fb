package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"herald/internal/core/event"
	"herald/internal/core/report"
	"herald/internal/domain"
	"herald/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHeartbeatWorker_SequenceIncreases(t *testing.T) {
	bus := event.New(nil)
	w := NewHeartbeatWorker(bus)

	var seen []int64
	sub := event.Subscribe(bus, func(evt domain.EventHeartbeat) { seen = append(seen, evt.Sequence) })
	defer sub.Unsubscribe()

	require.NoError(t, w.Run(context.Background()))
	require.NoError(t, w.Run(context.Background()))

	assert.Equal(t, []int64{1, 2}, seen)
	assert.Equal(t, "heartbeat", w.Name())
}

func TestHeartbeatWorker_CanceledContext(t *testing.T) {
	bus := event.New(nil)
	w := NewHeartbeatWorker(bus)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}

func TestReportPruneWorker(t *testing.T) {
	bus := event.New(nil)
	r := report.NewReporter(bus, logger.Discard(), 10, time.Minute)
	defer r.Close()

	bus.Publish(domain.EventUnhandledError{Message: "stale", OccurredAt: time.Now().Add(-time.Hour)})

	w := NewReportPruneWorker(r, logger.Discard())
	require.NoError(t, w.Run(context.Background()))
	assert.Empty(t, r.Recent())
}

func TestManager_RunsHeartbeatUntilCanceled(t *testing.T) {
	log := logger.Discard()
	bus := event.New(nil)
	r := report.NewReporter(bus, log, 10, time.Hour)
	defer r.Close()

	var beats atomic.Int32
	sub := event.Subscribe(bus, func(domain.EventHeartbeat) { beats.Add(1) })
	defer sub.Unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(log, NewScheduler(log), bus, r, ManagerOptions{
		HeartbeatInterval: 5 * time.Millisecond,
		PruneInterval:     5 * time.Millisecond,
	})
	done := m.Start(ctx)

	require.Eventually(t, func() bool { return beats.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestManager_HeartbeatDisabled(t *testing.T) {
	log := logger.Discard()
	bus := event.New(nil)
	r := report.NewReporter(bus, log, 10, time.Hour)
	defer r.Close()

	var beats atomic.Int32
	sub := event.Subscribe(bus, func(domain.EventHeartbeat) { beats.Add(1) })
	defer sub.Unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := NewManager(log, NewScheduler(log), bus, r, ManagerOptions{PruneInterval: time.Millisecond}).Start(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	assert.EqualValues(t, 0, beats.Load())
}

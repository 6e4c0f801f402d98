package store

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// SweepEvent reports a sweep pass that removed at least one task.
type SweepEvent struct {
	Removed int
}

// Sweeper periodically evicts expired tasks from the store.
type Sweeper struct {
	store    *Store
	interval time.Duration
	log      *zap.SugaredLogger
	events   chan SweepEvent
	stopCh   chan struct{}
	mu       sync.Mutex
	running  bool
	stopped  bool
}

// NewSweeper creates a sweeper that runs every interval. Non-positive
// intervals fall back to one minute.
func NewSweeper(s *Store, interval time.Duration, log *zap.SugaredLogger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		store:    s,
		interval: interval,
		log:      log,
		events:   make(chan SweepEvent, 16),
		stopCh:   make(chan struct{}),
	}
}

// Events delivers a SweepEvent whenever a sweep pass removes tasks, so the
// UI can refresh its view. Events are dropped rather than blocking the
// sweep loop when nobody is listening.
func (sw *Sweeper) Events() <-chan SweepEvent {
	return sw.events
}

// Start launches the background sweep loop. Calling Start on a running or
// stopped sweeper is a no-op.
func (sw *Sweeper) Start() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.running || sw.stopped {
		return
	}
	sw.running = true
	go sw.run()
}

// Stop halts the sweep loop. Idempotent.
func (sw *Sweeper) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running {
		return
	}
	close(sw.stopCh)
	sw.running = false
	sw.stopped = true
}

func (sw *Sweeper) run() {
	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-sw.stopCh:
			return
		case <-ticker.C:
			removed := sw.store.SweepExpired(sw.store.now())
			if removed == 0 {
				continue
			}
			sw.log.Infow("swept expired tasks", "removed", removed)
			select {
			case sw.events <- SweepEvent{Removed: removed}:
			default:
			}
		}
	}
}

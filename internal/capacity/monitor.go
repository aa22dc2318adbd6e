package capacity

import (
	"context"
	"sync"
	"time"

	"league-server/internal/observability"
)

// Monitor runs the capacity check on start and then on every tick
type Monitor struct {
	guard    *Guard
	logger   *observability.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	interval time.Duration
}

func NewMonitor(guard *Guard, logger *observability.Logger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Monitor{
		guard:    guard,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: interval,
	}
}

// Start blocks until Stop is called or ctx is cancelled
func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info(ctx, "Starting capacity monitor")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// Check immediately on start
	m.check(ctx)

	for {
		select {
		case <-ticker.C:
			m.check(ctx)
		case <-m.stopChan:
			m.logger.Info(ctx, "Stopping capacity monitor")
			return
		case <-ctx.Done():
			m.logger.Info(ctx, "Context cancelled, stopping capacity monitor")
			return
		}
	}
}

// Stop stops the monitor. It is safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *Monitor) check(ctx context.Context) {
	disabled, err := m.guard.CheckAndAutoDisable(ctx)
	if err != nil {
		// Already logged by the guard; try again next tick
		return
	}
	if disabled {
		m.logger.Warn(ctx, "capacity monitor disabled webhook acceptance")
	}
}

// Package queue serialises notification processing onto a single lane so
// that two notifications never race a delete-then-insert for the same week.
package queue

import (
	"context"
	"fmt"
	"sync"

	"league-server/internal/metrics"
	"league-server/internal/observability"
	"league-server/internal/webhooks/events"
)

// Processor handles one job to completion
type Processor interface {
	Process(ctx context.Context, job events.Job) error
}

// Queue is an unbounded in-memory FIFO drained by at most one goroutine
type Queue struct {
	processor Processor
	logger    *observability.Logger
	baseCtx   context.Context

	mu       sync.Mutex
	jobs     []events.Job
	draining bool
	closed   bool
	idle     chan struct{}
}

// New creates a queue. Jobs run with a context derived from ctx, detached
// from the request that enqueued them.
func New(ctx context.Context, processor Processor, logger *observability.Logger) *Queue {
	idle := make(chan struct{})
	close(idle)
	return &Queue{
		processor: processor,
		logger:    logger,
		baseCtx:   ctx,
		idle:      idle,
	}
}

// Enqueue appends a job and starts the drain loop if none is running.
// Returns false once the queue has been closed.
func (q *Queue) Enqueue(job events.Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.jobs = append(q.jobs, job)
	metrics.QueueDepth.Set(float64(len(q.jobs)))

	if !q.draining {
		q.draining = true
		q.idle = make(chan struct{})
		go q.drain(q.idle)
	}
	return true
}

// Len returns the number of jobs waiting, excluding the one in progress
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// Drain stops accepting jobs and waits for the queue to empty or ctx to end
func (q *Queue) Drain(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	idle := q.idle
	remaining := len(q.jobs)
	q.mu.Unlock()

	q.logger.Info(ctx, fmt.Sprintf("Draining webhook queue, %d jobs waiting", remaining))

	select {
	case <-idle:
		q.logger.Info(ctx, "Webhook queue drained")
		return nil
	case <-ctx.Done():
		q.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded with %d jobs waiting", q.Len()))
		return ctx.Err()
	}
}

func (q *Queue) drain(idle chan struct{}) {
	for {
		q.mu.Lock()
		if len(q.jobs) == 0 {
			q.draining = false
			close(idle)
			q.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs[0] = events.Job{}
		q.jobs = q.jobs[1:]
		metrics.QueueDepth.Set(float64(len(q.jobs)))
		q.mu.Unlock()

		q.run(job)
	}
}

// run processes one job, containing errors and panics so the lane keeps
// draining
func (q *Queue) run(job events.Job) {
	ctx := observability.WithFields(q.baseCtx, observability.Field{Key: "event_id", Value: job.EventID})

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error(ctx, "panic while processing webhook event", fmt.Errorf("%v", r))
		}
	}()

	if err := q.processor.Process(ctx, job); err != nil {
		q.logger.WarnWithError(ctx, "webhook event processing failed", err)
	}
}

// Package worker provides a small fixed-size goroutine pool for model calls
// that can run side by side.
package worker

import (
	"sync"

	"github.com/ewilliams-labs/moodreel/internal/logging"
)

// Job is one unit of work. Jobs report their own results.
type Job func()

// Pool manages background workers for async jobs.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool creates a worker pool with the given queue size. Call Start to
// launch workers.
func NewPool(queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// Submit queues a job without blocking. It returns false when the queue is
// full or the pool is stopped; the caller should then run the job itself.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case p.jobs <- job:
		return true
	default:
		l := logging.WithComponent("worker")
		l.Warn().Msg("queue full, running job inline")
		return false
	}
}

func (p *Pool) processJob(job Job) {
	defer func() {
		if r := recover(); r != nil {
			l := logging.WithComponent("worker")
			l.Error().Interface("panic", r).Msg("job panicked")
		}
	}()
	job()
}

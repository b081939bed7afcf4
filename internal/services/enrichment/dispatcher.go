package enrichment

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Dispatcher fans enrichment tasks out to a fixed set of workers over
// a bounded queue. Dispatch is fire-and-forget and at-most-once: a
// full queue drops the task, failures are logged and never retried.
type Dispatcher struct {
	enricher    Enricher
	queue       chan Task
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	started     bool
}

// NewDispatcher creates a dispatcher with workerCount workers reading
// from a queue of queueSize pending tasks
func NewDispatcher(enricher Enricher, workerCount, queueSize int) *Dispatcher {
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		enricher:    enricher,
		queue:       make(chan Task, queueSize),
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

// Start launches the worker goroutines
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return fmt.Errorf("enrichment dispatcher already started")
	}

	log.Printf("[INFO] Starting enrichment dispatcher with %d workers (queue %d)", d.workerCount, cap(d.queue))
	for i := 0; i < d.workerCount; i++ {
		d.wg.Add(1)
		go d.run(ctx, fmt.Sprintf("enricher-%d", i+1))
	}

	d.started = true
	return nil
}

// Stop stops the workers. Tasks still in the queue are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return
	}

	log.Printf("[INFO] Stopping enrichment dispatcher")
	close(d.stopChan)
	d.wg.Wait()
	d.started = false
}

// Dispatch queues a task without blocking. It reports false when the
// queue is full and the task was dropped.
func (d *Dispatcher) Dispatch(task Task) bool {
	select {
	case d.queue <- task:
		return true
	default:
		log.Printf("[WARN] Enrichment queue full, dropping shard %s", task.ShardID)
		return false
	}
}

func (d *Dispatcher) run(ctx context.Context, id string) {
	defer d.wg.Done()

	log.Printf("[DEBUG] Enrichment worker %s starting", id)
	defer log.Printf("[DEBUG] Enrichment worker %s stopped", id)

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stopChan:
			return
		case task := <-d.queue:
			d.process(ctx, id, task)
		}
	}
}

// process shields the worker loop from a panicking pass
func (d *Dispatcher) process(ctx context.Context, id string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Enrichment worker %s: panic on shard %s: %v", id, task.ShardID, r)
		}
	}()

	if err := d.enricher.Enrich(ctx, task); err != nil {
		log.Printf("[WARN] Enrichment worker %s: shard %s failed: %v", id, task.ShardID, err)
	}
}

// Constants for default configuration
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 64
)

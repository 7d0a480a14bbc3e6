package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/servarr-tui/internal/network"
)

const (
	DefaultWorkers     = 4
	DefaultMinInterval = 25 * time.Millisecond
	queueSize          = 64
	eventBuffer        = 16
)

// Executor performs one request. *network.Client satisfies it.
type Executor interface {
	Execute(ctx context.Context, req network.Request) network.Result
}

// Event carries the result of one executed request back to the UI.
type Event struct {
	Result  network.Result
	Elapsed time.Duration
}

// Options tunes a Worker. Zero values select the defaults.
type Options struct {
	Workers     int
	Timeout     time.Duration
	MinInterval time.Duration
}

// Worker executes submitted requests on a fixed pool of goroutines and
// publishes their results in completion order.
type Worker struct {
	exec     Executor
	timeout  time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	jobs   chan network.Request
	events chan Event
	wg     sync.WaitGroup
}

// NewWorker starts the pool.
func NewWorker(exec Executor, opts Options) *Worker {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Timeout <= 0 {
		opts.Timeout = network.DefaultTimeout
	}
	if opts.MinInterval < 0 {
		opts.MinInterval = 0
	} else if opts.MinInterval == 0 {
		opts.MinInterval = DefaultMinInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		exec:     exec,
		timeout:  opts.Timeout,
		throttle: newThrottle(opts.MinInterval),
		ctx:      ctx,
		cancel:   cancel,
		jobs:     make(chan network.Request, queueSize),
		events:   make(chan Event, eventBuffer),
	}

	for i := 0; i < opts.Workers; i++ {
		w.wg.Add(1)
		go w.run()
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the result channel. It is closed once every worker has
// exited after Stop.
func (w *Worker) Events() <-chan Event {
	return w.events
}

// Submit queues req without blocking. It reports false when the worker is
// stopped or the queue is full.
func (w *Worker) Submit(req network.Request) bool {
	if w.ctx.Err() != nil {
		return false
	}
	select {
	case w.jobs <- req:
		return true
	default:
		return false
	}
}

// Stop cancels in-flight requests and stops the workers.
func (w *Worker) Stop() {
	w.cancel()
}

// Wait blocks until every worker has exited and the events channel is closed.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case req := <-w.jobs:
			if !w.execute(req) {
				return
			}
		}
	}
}

func (w *Worker) execute(req network.Request) bool {
	if err := w.throttle.wait(w.ctx); err != nil {
		return false
	}
	start := time.Now()
	ctx, cancel := context.WithTimeout(w.ctx, w.timeout)
	res := w.exec.Execute(ctx, req)
	cancel()

	select {
	case <-w.ctx.Done():
		return false
	case w.events <- Event{Result: res, Elapsed: time.Since(start)}:
		return true
	}
}

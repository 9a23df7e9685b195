package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sandeepkv93/scheduleplanner/internal/commands"
)

var ErrStopped = errors.New("dispatch: dispatcher stopped")

// ExecFunc runs one raw command line to completion.
type ExecFunc func(ctx context.Context, raw string) (commands.Result, error)

type outcome struct {
	result commands.Result
	err    error
}

type request struct {
	ctx   context.Context
	raw   string
	reply chan outcome
}

// Dispatcher feeds submitted command lines to a single worker goroutine, so
// commands never overlap and run in submission order.
type Dispatcher struct {
	mu        sync.Mutex
	exec      ExecFunc
	queue     chan request
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
	stopped   bool
	processed uint64
}

func NewDispatcher(exec ExecFunc, bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Dispatcher{
		exec:   exec,
		queue:  make(chan request, bufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	go d.loop()
}

// Stop waits for the command in flight, if any, then discards the queue.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.stopCh)
	started := d.started
	d.mu.Unlock()
	if started {
		<-d.doneCh
	}
}

// Submit queues raw and blocks until it has run or ctx is done. A command
// whose context is already cancelled when dequeued is skipped.
func (d *Dispatcher) Submit(ctx context.Context, raw string) (commands.Result, error) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return commands.Result{}, ErrStopped
	}
	d.mu.Unlock()

	req := request{ctx: ctx, raw: raw, reply: make(chan outcome, 1)}
	select {
	case d.queue <- req:
	case <-ctx.Done():
		return commands.Result{}, ctx.Err()
	case <-d.stopCh:
		return commands.Result{}, ErrStopped
	}

	select {
	case out := <-req.reply:
		return out.result, out.err
	case <-ctx.Done():
		return commands.Result{}, ctx.Err()
	case <-d.doneCh:
		select {
		case out := <-req.reply:
			return out.result, out.err
		default:
			return commands.Result{}, ErrStopped
		}
	}
}

// Processed counts commands that reached the executor.
func (d *Dispatcher) Processed() uint64 {
	return atomic.LoadUint64(&d.processed)
}

func (d *Dispatcher) loop() {
	defer close(d.doneCh)
	for {
		select {
		case req := <-d.queue:
			if err := req.ctx.Err(); err != nil {
				req.reply <- outcome{err: err}
				continue
			}
			res, err := d.exec(req.ctx, req.raw)
			atomic.AddUint64(&d.processed, 1)
			req.reply <- outcome{result: res, err: err}
		case <-d.stopCh:
			return
		}
	}
}

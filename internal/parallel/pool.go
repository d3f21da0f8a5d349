// Package parallel provides the worker pool behind batch table generation.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines for embarrassingly parallel batch work.
//
// Work is distributed round-robin across per-worker queues; an idle worker
// steals from its peers, which keeps the pool balanced when some entries
// are slower than others (coverage-mode footprints, long paths).
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	mine := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(mine)
			return
		case work := <-mine:
			if work != nil {
				work()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing to steal; block on own queue.
			select {
			case <-p.done:
				p.drain(mine)
				return
			case work := <-mine:
				if work != nil {
					work()
				}
			}
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one work item from another worker's queue, or returns nil.
func (p *Pool) steal(myID int) func() {
	for i := range p.queues {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// Each runs fn(0) .. fn(n-1) across the pool and waits for completion.
//
// Cancellation is at entry granularity: once ctx is done, not-yet-started
// entries are skipped, entries already running finish normally, and Each
// returns ctx.Err(). Callers may keep whatever results the completed
// entries produced.
func (p *Pool) Each(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		return ctx.Err()
	}
	if !p.running.Load() {
		// Pool already closed; run inline so callers still make progress.
		for i := 0; i < n; i++ {
			if ctx.Err() != nil {
				break
			}
			fn(i)
		}
		return ctx.Err()
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy: go directive is below 1.22
		item := func() {
			defer wg.Done()
			if ctx.Err() == nil {
				fn(i)
			}
		}
		select {
		case p.queues[i%p.workers] <- item:
		case <-p.done:
			// Pool closing mid-batch; finish this entry inline.
			item()
		}
	}
	wg.Wait()
	return ctx.Err()
}

// Close stops accepting work, finishes everything already queued, and
// stops all workers. Safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

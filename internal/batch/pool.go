// Package batch runs independent render jobs on a fixed set of workers.
package batch

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("batch: pool closed")

// Pool is a set of worker goroutines, each with its own queue. An idle
// worker steals from the other queues before blocking on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// New starts a pool of n workers, GOMAXPROCS when n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	size := max(n*4, 8)
	p := &Pool{
		workers: n,
		queues:  make([]chan func(), n),
		done:    make(chan struct{}),
	}
	for i := range n {
		p.queues[i] = make(chan func(), size)
	}
	p.running.Store(true)
	p.wg.Add(n)
	for i := range n {
		go p.work(i)
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}
		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run executes every job and waits for them all. The returned error joins
// the job errors in job order.
func (p *Pool) Run(jobs []func() error) error {
	if !p.running.Load() {
		return ErrClosed
	}
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		fn := func() {
			defer wg.Done()
			errs[i] = job()
		}
		select {
		case p.queues[i%p.workers] <- fn:
		case <-p.done:
			errs[i] = ErrClosed
			wg.Done()
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Close stops the workers after they finish queued jobs. It is safe to
// call more than once.
func (p *Pool) Close() {
	if p.running.CompareAndSwap(true, false) {
		close(p.done)
		p.wg.Wait()
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

import (
	"runtime"
	"sync"
)

// Executor is a fixed pool of workers executing submitted tasks.
// The queue is unbounded: Submit never blocks, so continuations scheduled
// from a worker cannot deadlock the pool.
type Executor struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	wg     sync.WaitGroup
}

// NewExecutor creates an executor with the given number of workers.
// A non-positive count defaults to GOMAXPROCS.
func NewExecutor(workers int) *Executor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	e := &Executor{}
	e.cond = sync.NewCond(&e.mu)
	e.wg.Add(workers)
	for range workers {
		go e.worker()
	}
	return e
}

func (e *Executor) worker() {
	defer e.wg.Done()
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.queue) == 0 && e.closed {
			e.mu.Unlock()
			return
		}
		task := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()
		task()
	}
}

// Submit enqueues a task for execution on a worker.
// Panics if the executor has been closed.
func (e *Executor) Submit(task func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		panic("free: submit on closed executor")
	}
	e.queue = append(e.queue, task)
	e.cond.Signal()
	e.mu.Unlock()
}

// Close stops the executor after draining the queue and waits for the
// workers to exit. Tasks submitted by in-flight tasks are still run.
func (e *Executor) Close() {
	e.mu.Lock()
	e.closed = true
	e.cond.Broadcast()
	e.mu.Unlock()
	e.wg.Wait()
}

// Future[A] is a write-once container for a value of type A produced by
// the executor. Continuations registered with OnComplete fire exactly once,
// in registration order, after the value is written.
type Future[A any] struct {
	mu      sync.Mutex
	done    bool
	value   A
	ready   chan struct{}
	waiters []func(A)
}

func newFuture[A any]() *Future[A] {
	return &Future[A]{ready: make(chan struct{})}
}

// Completed creates an already-completed future holding a pure value.
func Completed[A any](a A) *Future[A] {
	f := newFuture[A]()
	f.complete(a)
	return f
}

// Fork submits work to the executor and returns a future for its result.
func Fork[A any](e *Executor, work func() A) *Future[A] {
	f := newFuture[A]()
	e.Submit(func() { f.complete(work()) })
	return f
}

func (f *Future[A]) complete(a A) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		panic("free: future completed twice")
	}
	f.value = a
	f.done = true
	waiters := f.waiters
	f.waiters = nil
	close(f.ready)
	f.mu.Unlock()
	for _, w := range waiters {
		w(a)
	}
}

// OnComplete registers a continuation to run with the future's value.
// If the future is already complete, the continuation runs immediately
// on the calling goroutine.
func (f *Future[A]) OnComplete(fn func(A)) {
	f.mu.Lock()
	if f.done {
		v := f.value
		f.mu.Unlock()
		fn(v)
		return
	}
	f.waiters = append(f.waiters, fn)
	f.mu.Unlock()
}

// Await blocks until the future completes and returns its value.
func (f *Future[A]) Await() A {
	<-f.ready
	return f.value
}

// ThenFuture sequences a future through a continuation producing another
// future. The continuation is submitted to the executor when the first
// future completes; the completing goroutine is never blocked on it.
func ThenFuture[A, B any](e *Executor, f *Future[A], next func(A) *Future[B]) *Future[B] {
	out := newFuture[B]()
	f.OnComplete(func(a A) {
		e.Submit(func() {
			next(a).OnComplete(out.complete)
		})
	})
	return out
}

// MapFuture applies a pure function to a future's value on the executor.
func MapFuture[A, B any](e *Executor, f *Future[A], fn func(A) B) *Future[B] {
	return ThenFuture(e, f, func(a A) *Future[B] {
		return Completed(fn(a))
	})
}

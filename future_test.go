// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/free"
)

func TestCompletedFuture(t *testing.T) {
	f := free.Completed(42)
	if got := f.Await(); got != 42 {
		t.Errorf("Completed(42).Await() = %v, want 42", got)
	}
}

func TestForkRunsOnExecutor(t *testing.T) {
	e := free.NewExecutor(2)
	defer e.Close()

	f := free.Fork(e, func() string { return "done" })
	if got := f.Await(); got != "done" {
		t.Errorf("Fork.Await() = %q, want %q", got, "done")
	}
}

func TestOnCompleteAfterCompletion(t *testing.T) {
	f := free.Completed(7)
	var got int
	f.OnComplete(func(v int) { got = v })
	if got != 7 {
		t.Errorf("OnComplete after completion got %v, want 7", got)
	}
}

func TestOnCompleteOrder(t *testing.T) {
	e := free.NewExecutor(1)
	defer e.Close()

	var mu sync.Mutex
	var order []int
	release := make(chan struct{})
	f := free.Fork(e, func() int {
		<-release
		return 0
	})
	for i := range 3 {
		f.OnComplete(func(int) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	close(release)
	f.Await()

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		if v != i {
			t.Fatalf("continuation order = %v", order)
		}
	}
}

func TestThenFuture(t *testing.T) {
	e := free.NewExecutor(2)
	defer e.Close()

	f := free.ThenFuture(e, free.Fork(e, func() int { return 6 }),
		func(x int) *free.Future[int] {
			return free.Fork(e, func() int { return x * 7 })
		})
	if got := f.Await(); got != 42 {
		t.Errorf("ThenFuture = %v, want 42", got)
	}
}

func TestMapFuture(t *testing.T) {
	e := free.NewExecutor(2)
	defer e.Close()

	f := free.MapFuture(e, free.Completed(21), func(x int) int { return x * 2 })
	if got := f.Await(); got != 42 {
		t.Errorf("MapFuture = %v, want 42", got)
	}
}

// TestSequencingDoesNotBlockWorker: a single-worker executor can still run
// a ThenFuture chain, since sequencing schedules rather than waits.
func TestSequencingDoesNotBlockWorker(t *testing.T) {
	e := free.NewExecutor(1)
	defer e.Close()

	f := free.Fork(e, func() int { return 1 })
	for range 50 {
		f = free.ThenFuture(e, f, func(x int) *free.Future[int] {
			return free.Fork(e, func() int { return x + 1 })
		})
	}
	if got := f.Await(); got != 51 {
		t.Errorf("chained futures = %v, want 51", got)
	}
}

func TestExecutorDrainsOnClose(t *testing.T) {
	e := free.NewExecutor(2)

	var n atomic.Int64
	for range 100 {
		e.Submit(func() { n.Add(1) })
	}
	e.Close()
	if got := n.Load(); got != 100 {
		t.Errorf("ran %v tasks before close, want 100", got)
	}
}

func TestSubmitAfterClosePanics(t *testing.T) {
	e := free.NewExecutor(1)
	e.Close()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on submit after close")
		}
	}()
	e.Submit(func() {})
}

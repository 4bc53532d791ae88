// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// The four standard target contexts. Each pairs a value shape with a
// [Target] implementation supplying lift and sequence for that shape.

// Thunk is the value shape of the immediate execution context:
// a deferred computation forced by calling it.
type Thunk func() Erased

// ThunkTarget is the immediate execution context. Sequencing builds a
// thunk that forces the first computation, then the continuation's.
//
// Forcing nests one call frame per sequenced effect: the thunk context
// trades stack safety for zero scheduling machinery. Programs with very
// long effect chains belong on [FutureTarget] or [StateTarget].
type ThunkTarget struct{}

// Lift implements Target.
func (ThunkTarget) Lift(v Erased) Erased {
	return Thunk(func() Erased { return v })
}

// Sequence implements Target.
func (ThunkTarget) Sequence(v Erased, k func(Erased) Erased) Erased {
	t := v.(Thunk)
	return Thunk(func() Erased {
		return k(t()).(Thunk)()
	})
}

// FutureTarget is the parallel execution context over an [Executor].
// Sequencing schedules the continuation on the executor when the first
// value completes; it never blocks the goroutine driving the interpreter.
type FutureTarget struct {
	Ex *Executor
}

// Lift implements Target.
func (FutureTarget) Lift(v Erased) Erased {
	return Completed[Erased](v)
}

// Sequence implements Target.
func (t FutureTarget) Sequence(v Erased, k func(Erased) Erased) Erased {
	f := v.(*Future[Erased])
	return ThenFuture(t.Ex, f, func(a Erased) *Future[Erased] {
		return k(a).(*Future[Erased])
	})
}

// StateFn is the value shape of the pure state-threading context:
// a function from input/output buffers to a result and new buffers.
type StateFn func(Buffers) (Erased, Buffers)

// StateTarget is the pure state-threading context. Each step consumes one
// [Buffers] value and produces a new one; nothing is shared or mutated,
// so the same program can be replayed under different buffers freely.
type StateTarget struct{}

// Lift implements Target.
func (StateTarget) Lift(v Erased) Erased {
	return StateFn(func(b Buffers) (Erased, Buffers) { return v, b })
}

// Sequence implements Target.
func (StateTarget) Sequence(v Erased, k func(Erased) Erased) Erased {
	f := v.(StateFn)
	return StateFn(func(b Buffers) (Erased, Buffers) {
		a, next := f(b)
		return k(a).(StateFn)(next)
	})
}

// ReaderFn is the value shape of the pure reader context:
// a function from a single fixed input line to a result.
type ReaderFn func(input string) Erased

// ReaderTarget is the pure reader context. Every step sees the same fixed
// input; there is no output capture.
type ReaderTarget struct{}

// Lift implements Target.
func (ReaderTarget) Lift(v Erased) Erased {
	return ReaderFn(func(string) Erased { return v })
}

// Sequence implements Target.
func (ReaderTarget) Sequence(v Erased, k func(Erased) Erased) Erased {
	f := v.(ReaderFn)
	return ReaderFn(func(input string) Erased {
		return k(f(input)).(ReaderFn)(input)
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Async[A] is a trampolined computation whose suspended leaves run on an
// [Executor]. It has the same shape as [Comp], with the deferred thunk
// replaced by a [Future]; reducing it yields a future rather than a value.
type Async[A any] struct {
	node asyncNode
}

type asyncNode interface {
	asyncNode()
}

type asyncDone struct {
	value Erased
}

func (asyncDone) asyncNode() {}

type asyncLeaf struct {
	fut *Future[Erased]
}

func (*asyncLeaf) asyncNode() {}

type asyncBind struct {
	sub  asyncNode
	next func(Erased) asyncNode
}

func (*asyncBind) asyncNode() {}

// AsyncReturn lifts a pure value into a completed async computation.
func AsyncReturn[A any](a A) Async[A] {
	return Async[A]{node: asyncDone{value: a}}
}

// AsyncFuture suspends an executor value as an async computation leaf.
func AsyncFuture[A any](f *Future[A]) Async[A] {
	return Async[A]{node: &asyncLeaf{fut: eraseFuture(f)}}
}

// AsyncBind sequences two async computations.
func AsyncBind[A, B any](m Async[A], f func(A) Async[B]) Async[B] {
	return Async[B]{node: &asyncBind{
		sub:  m.node,
		next: func(a Erased) asyncNode { return f(a.(A)).node },
	}}
}

// AsyncMap applies a pure function to the result of an async computation.
func AsyncMap[A, B any](m Async[A], f func(A) B) Async[B] {
	return AsyncBind(m, func(a A) Async[B] { return AsyncReturn(f(a)) })
}

// AsyncThen sequences two async computations, discarding the first result.
func AsyncThen[A, B any](m Async[A], n Async[B]) Async[B] {
	return AsyncBind(m, func(_ A) Async[B] { return n })
}

// stepAsync normalizes an async node tree to one of: asyncDone, a bare
// asyncLeaf, or an asyncBind whose sub is an asyncLeaf. Same iterative
// re-association as runComp; only the leaf case differs.
func stepAsync(n asyncNode) asyncNode {
	for {
		b, ok := n.(*asyncBind)
		if !ok {
			return n
		}
		switch sub := b.sub.(type) {
		case asyncDone:
			n = b.next(sub.value)
		case *asyncBind:
			inner, outer := sub.next, b.next
			n = &asyncBind{
				sub: sub.sub,
				next: func(a Erased) asyncNode {
					return &asyncBind{sub: inner(a), next: outer}
				},
			}
		default:
			return n
		}
	}
}

// RunAsync reduces an async computation to a single future on the executor.
// The trampoline loop itself stays on the calling goroutine; awaiting other
// work happens only inside the executor's own sequencing.
func RunAsync[A any](e *Executor, m Async[A]) *Future[A] {
	out := newFuture[A]()
	runAsync(e, m.node).OnComplete(func(v Erased) { out.complete(v.(A)) })
	return out
}

func runAsync(e *Executor, n asyncNode) *Future[Erased] {
	switch t := stepAsync(n).(type) {
	case asyncDone:
		return Completed[Erased](t.value)
	case *asyncLeaf:
		return t.fut
	case *asyncBind:
		leaf, ok := t.sub.(*asyncLeaf)
		if !ok {
			// stepAsync eliminates every other sub shape
			panic("free: step normalized to a bind without a suspended leaf")
		}
		next := t.next
		return ThenFuture(e, leaf.fut, func(a Erased) *Future[Erased] {
			return runAsync(e, next(a))
		})
	default:
		panic("free: unknown async node")
	}
}

// eraseFuture bridges a typed future into the erased node representation.
func eraseFuture[A any](f *Future[A]) *Future[Erased] {
	out := newFuture[Erased]()
	f.OnComplete(func(a A) { out.complete(a) })
	return out
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Comp[A] is a trampolined computation producing a value of type A.
//
// A Comp is inert data: building one performs no work. [Run] reduces it
// iteratively, so chains of any length evaluate in constant stack space.
// A Comp may be reduced any number of times; reduction never mutates it.
type Comp[A any] struct {
	node compNode
}

// compNode is the internal tagged union behind Comp.
// The intermediate type of a bind is erased; constructors recover
// concrete types via assertions at node boundaries.
type compNode interface {
	compNode()
}

// compDone is a completed computation holding its result.
type compDone struct {
	value Erased
}

func (compDone) compNode() {}

// compDelay is a deferred pure computation, forced at most once per reduction.
type compDelay struct {
	thunk func() Erased
}

func (*compDelay) compNode() {}

// compBind sequences sub through next. The type flowing between the two
// is existential: it never appears in Comp's own type parameter.
type compBind struct {
	sub  compNode
	next func(Erased) compNode
}

func (*compBind) compNode() {}

// Return lifts a pure value into a completed computation.
func Return[A any](a A) Comp[A] {
	return Comp[A]{node: compDone{value: a}}
}

// Delay defers a pure computation. The thunk is not invoked until the
// computation is reduced with [Run].
func Delay[A any](thunk func() A) Comp[A] {
	return Comp[A]{node: &compDelay{thunk: func() Erased { return thunk() }}}
}

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to get the next computation.
func Bind[A, B any](m Comp[A], f func(A) Comp[B]) Comp[B] {
	return Comp[B]{node: &compBind{
		sub:  m.node,
		next: func(a Erased) compNode { return f(a.(A)).node },
	}}
}

// Map applies a pure function to the result of a computation.
// Derived from Bind and Return.
func Map[A, B any](m Comp[A], f func(A) B) Comp[B] {
	return Bind(m, func(a A) Comp[B] { return Return(f(a)) })
}

// Then sequences two computations, discarding the first result.
func Then[A, B any](m Comp[A], n Comp[B]) Comp[B] {
	return Bind(m, func(_ A) Comp[B] { return n })
}

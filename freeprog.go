// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Free[A] is a trampolined program over an open effect vocabulary.
// It generalizes [Comp]: the suspended leaf is an effect operation
// description rather than a thunk. A Free value describes effects without
// performing them; interpretation is chosen at run time by pairing the
// program with a [Translator] and a [Target] in [RunFree].
type Free[A any] struct {
	node freeNode
}

type freeNode interface {
	freeNode()
}

type freeDone struct {
	value Erased
}

func (freeDone) freeNode() {}

type freeEffect struct {
	op Operation
}

func (*freeEffect) freeNode() {}

type freeBind struct {
	sub  freeNode
	next func(Erased) freeNode
}

func (*freeBind) freeNode() {}

// FreeReturn lifts a pure value into a completed program.
func FreeReturn[A any](a A) Free[A] {
	return Free[A]{node: freeDone{value: a}}
}

// Perform describes an effect operation as a program leaf.
// Nothing is executed; the operation is interpreted by a Translator
// when the program is run.
//
// Type inference handles calls: Perform(ReadLine{}) infers O=ReadLine,
// A=Option[string] from the op's result marker.
func Perform[O Op[O, A], A any](op O) Free[A] {
	return Free[A]{node: &freeEffect{op: op}}
}

// FreeBind sequences two programs (monadic bind).
func FreeBind[A, B any](m Free[A], f func(A) Free[B]) Free[B] {
	return Free[B]{node: &freeBind{
		sub:  m.node,
		next: func(a Erased) freeNode { return f(a.(A)).node },
	}}
}

// FreeMap applies a pure function to the result of a program.
func FreeMap[A, B any](m Free[A], f func(A) B) Free[B] {
	return FreeBind(m, func(a A) Free[B] { return FreeReturn(f(a)) })
}

// FreeThen sequences two programs, discarding the first result.
func FreeThen[A, B any](m Free[A], n Free[B]) Free[B] {
	return FreeBind(m, func(_ A) Free[B] { return n })
}

// stepFree normalizes a program node tree to one of: freeDone, a bare
// freeEffect, or a freeBind whose sub is a freeEffect. Same iterative
// re-association as runComp and stepAsync with the effect leaf substituted.
func stepFree(n freeNode) freeNode {
	for {
		b, ok := n.(*freeBind)
		if !ok {
			return n
		}
		switch sub := b.sub.(type) {
		case freeDone:
			n = b.next(sub.value)
		case *freeBind:
			inner, outer := sub.next, b.next
			n = &freeBind{
				sub: sub.sub,
				next: func(a Erased) freeNode {
					return &freeBind{sub: inner(a), next: outer}
				},
			}
		default:
			return n
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Erased represents a type-erased value flowing through node trees and
// target contexts. Concrete types are recovered via type assertions at
// the typed entry points.
type Erased = any

// Operation is the interface for effect operations in translator dispatch.
// All values passed to Translator.Translate implement this interface.
type Operation = any

// Op is the F-bounded interface for effect operations.
// Each vocabulary defines concrete types implementing Op with the
// appropriate result type parameter. The self-referencing constraint gives
// the compiler knowledge of both the operation type and its result type.
type Op[O Op[O, A], A any] interface {
	OpResult() A // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result
// marker. Embed Phantom[A] in an operation struct to satisfy [Op] without
// writing a manual OpResult method.
type Phantom[A any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A]) OpResult() A { panic("phantom") }

// Translator maps every operation of an effect vocabulary to a value of
// a target execution context. It must be total over the vocabulary: an
// operation it does not recognize is a construction defect, reported by
// panicking on first use (see unhandledOp), never silently skipped.
type Translator interface {
	Translate(op Operation) Erased
}

// TranslateFunc adapts a dispatch function into a Translator.
type TranslateFunc func(op Operation) Erased

// Translate implements Translator.
func (f TranslateFunc) Translate(op Operation) Erased { return f(op) }

// Target describes an execution context by the two capabilities the
// interpreter driver needs: lifting a pure value into the context, and
// sequencing a context value through a continuation producing another.
type Target interface {
	Lift(v Erased) Erased
	Sequence(v Erased, k func(Erased) Erased) Erased
}

// RunFree interprets a program in a target context.
//
// The program is first normalized by stepFree, then reduced by cases:
// a completed program lifts its value, a bare effect translates directly,
// and a bind of an effect sequences the translated operation through the
// rest of the program using the target's own sequencing. Effects are
// interpreted strictly in their original left-to-right order.
//
// The result is the target context's value carrying A, type-erased; the
// ready-made Console runners recover the concrete shape.
func RunFree[A any](m Free[A], tr Translator, tgt Target) Erased {
	return runFree(m.node, tr, tgt)
}

func runFree(n freeNode, tr Translator, tgt Target) Erased {
	switch t := stepFree(n).(type) {
	case freeDone:
		return tgt.Lift(t.value)
	case *freeEffect:
		return tr.Translate(t.op)
	case *freeBind:
		eff, ok := t.sub.(*freeEffect)
		if !ok {
			// stepFree eliminates every other sub shape
			panic("free: step normalized to a bind without an effect leaf")
		}
		next := t.next
		return tgt.Sequence(tr.Translate(eff.op), func(a Erased) Erased {
			return runFree(next(a), tr, tgt)
		})
	default:
		panic("free: unknown program node")
	}
}

// unhandledOp panics with a descriptive message for unmatched operations.
// Extracted as a noinline function so that Translate methods remain
// inlineable.
//
//go:noinline
func unhandledOp(translator string) {
	panic("free: unhandled operation in " + translator)
}

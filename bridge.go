// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Bridge between the fixed-leaf trampoline and the free representation.
// A [Comp] is exactly a [Free] program over a one-operation vocabulary
// whose only effect is forcing a thunk.

// Force is the effect operation of the thunk vocabulary: run a deferred
// pure computation and resume with its value.
type Force struct {
	Thunk func() Erased
}

func (Force) OpResult() Erased { panic("phantom") }

// TranslateDirect renders Force in the immediate context.
func (o Force) TranslateDirect(*ConsoleIO) Erased {
	return Thunk(o.Thunk)
}

// FromComp converts a trampolined computation into a free program over the
// [Force] vocabulary. The result runs under any Translator handling Force.
//
// Conversion is lazy in continuations: the right side of a bind is
// converted only when reduction reaches it.
func FromComp[A any](m Comp[A]) Free[A] {
	return Free[A]{node: compToFree(m.node)}
}

func compToFree(n compNode) freeNode {
	switch t := n.(type) {
	case compDone:
		return freeDone{value: t.value}
	case *compDelay:
		return &freeEffect{op: Force{Thunk: t.thunk}}
	case *compBind:
		next := t.next
		return &freeBind{
			sub:  compToFree(t.sub),
			next: func(a Erased) freeNode { return compToFree(next(a)) },
		}
	default:
		panic("free: unknown computation node")
	}
}

// forceThunks translates the Force vocabulary into thunks.
type forceThunks struct{}

// Translate implements Translator.
func (forceThunks) Translate(op Operation) Erased {
	if f, ok := op.(Force); ok {
		return Thunk(f.Thunk)
	}
	unhandledOp("ForceThunks")
	return nil
}

// ForceThunks creates the translator for the Force vocabulary in the
// immediate context: RunFree(FromComp(m), ForceThunks(), ThunkTarget{})
// agrees with Run(m).
func ForceThunks() forceThunks {
	return forceThunks{}
}

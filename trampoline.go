// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

// Run reduces a trampolined computation to its final value.
//
// Reduction is an explicit loop over the current node, never a recursive
// call, so call-stack usage is O(1) in the number of sequenced steps.
func Run[A any](m Comp[A]) A {
	return runComp(m.node).(A)
}

// runComp is the iterative reducer for Comp node trees.
//
// The bind-of-bind case re-associates Bind(Bind(y, g), k) into
// Bind(y, a => Bind(g(a), k)). Left-nested binds would otherwise need
// unbounded recursion to peel; the rewrite turns them into a
// right-associated chain the loop consumes one node at a time.
// Re-association preserves evaluation order: g still runs before k.
func runComp(n compNode) Erased {
	for {
		switch t := n.(type) {
		case compDone:
			return t.value
		case *compDelay:
			return t.thunk()
		case *compBind:
			switch sub := t.sub.(type) {
			case compDone:
				n = t.next(sub.value)
			case *compDelay:
				n = t.next(sub.thunk())
			case *compBind:
				inner, outer := sub.next, t.next
				n = &compBind{
					sub: sub.sub,
					next: func(a Erased) compNode {
						return &compBind{sub: inner(a), next: outer}
					},
				}
			default:
				panic("free: unknown computation node in bind")
			}
		default:
			panic("free: unknown computation node")
		}
	}
}

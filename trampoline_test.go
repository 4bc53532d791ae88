// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free_test

import (
	"testing"

	"code.hybscloud.com/free"
)

func TestRunReturn(t *testing.T) {
	c := free.Return(42)
	result := free.Run(c)
	if result != 42 {
		t.Errorf("Run(Return(42)) = %v, want 42", result)
	}
}

func TestRunDelay(t *testing.T) {
	c := free.Delay(func() int { return 21 * 2 })
	result := free.Run(c)
	if result != 42 {
		t.Errorf("Run(Delay) = %v, want 42", result)
	}
}

func TestRunBind(t *testing.T) {
	c := free.Bind(free.Return(21), func(x int) free.Comp[int] {
		return free.Return(x * 2)
	})
	result := free.Run(c)
	if result != 42 {
		t.Errorf("Run(Bind(Return(21), *2)) = %v, want 42", result)
	}
}

func TestRunMap(t *testing.T) {
	c := free.Map(free.Return(21), func(x int) int { return x * 2 })
	result := free.Run(c)
	if result != 42 {
		t.Errorf("Run(Map(Return(21), *2)) = %v, want 42", result)
	}
}

func TestRunThen(t *testing.T) {
	c := free.Then(free.Return(999), free.Return(42))
	result := free.Run(c)
	if result != 42 {
		t.Errorf("Run(Then(Return(999), Return(42))) = %v, want 42", result)
	}
}

func TestRunMixedChain(t *testing.T) {
	c := free.Return(1)
	c = free.Map(c, func(x int) int { return x + 1 }) // 2
	c = free.Bind(c, func(x int) free.Comp[int] { // 4
		return free.Delay(func() int { return x * 2 })
	})
	c = free.Map(c, func(x int) int { return x + 3 }) // 7
	result := free.Run(c)
	if result != 7 {
		t.Errorf("mixed chain = %v, want 7", result)
	}
}

func TestRunLeftIdentity(t *testing.T) {
	f := func(x int) free.Comp[int] { return free.Return(x * 3) }
	left := free.Run(free.Bind(free.Return(14), f))
	right := free.Run(f(14))
	if left != right {
		t.Errorf("left identity: %v != %v", left, right)
	}
}

func TestRunReturnIdentity(t *testing.T) {
	if got := free.Run(free.Return("x")); got != "x" {
		t.Errorf("Run(Return(%q)) = %q", "x", got)
	}
}

// TestStackSafetyLeftNested binds 100k steps in the pathological
// left-nested shape; the run loop must re-associate, not recurse.
func TestStackSafetyLeftNested(t *testing.T) {
	const n = 100_000
	c := free.Return(0)
	for range n {
		c = free.Bind(c, func(x int) free.Comp[int] {
			return free.Return(x + 1)
		})
	}
	result := free.Run(c)
	if result != n {
		t.Errorf("left-nested chain = %v, want %v", result, n)
	}
}

// TestStackSafetyDelayed is the same chain over Delay leaves.
func TestStackSafetyDelayed(t *testing.T) {
	const n = 100_000
	c := free.Return(0)
	for range n {
		c = free.Bind(c, func(x int) free.Comp[int] {
			return free.Delay(func() int { return x + 1 })
		})
	}
	result := free.Run(c)
	if result != n {
		t.Errorf("delayed chain = %v, want %v", result, n)
	}
}

// rightNested hides the nesting inside continuations, so both
// construction and reduction stay shallow.
func rightNested(i, n, acc int) free.Comp[int] {
	if i == n {
		return free.Return(acc)
	}
	return free.Bind(free.Return(acc+1), func(x int) free.Comp[int] {
		return rightNested(i+1, n, x)
	})
}

// TestAssociationInvariance: left-nested and right-nested binds over the
// same steps yield the same value.
func TestAssociationInvariance(t *testing.T) {
	const n = 50_000
	left := free.Return(0)
	for range n {
		left = free.Bind(left, func(x int) free.Comp[int] {
			return free.Return(x + 1)
		})
	}
	l := free.Run(left)
	r := free.Run(rightNested(0, n, 0))
	if l != r {
		t.Errorf("association invariance: left=%v right=%v", l, r)
	}
}

// TestRunReusable: the same Comp value reduces to the same result twice;
// the delayed leaf is forced once per reduction.
func TestRunReusable(t *testing.T) {
	forced := 0
	c := free.Map(free.Delay(func() int {
		forced++
		return 21
	}), func(x int) int { return x * 2 })

	first := free.Run(c)
	second := free.Run(c)
	if first != 42 || second != 42 {
		t.Errorf("reuse: first=%v second=%v, want 42 both", first, second)
	}
	if forced != 2 {
		t.Errorf("thunk forced %d times over two runs, want 2", forced)
	}
}

func TestDelayNotForcedAtConstruction(t *testing.T) {
	forced := false
	c := free.Delay(func() int {
		forced = true
		return 1
	})
	if forced {
		t.Fatal("Delay forced its thunk at construction")
	}
	_ = free.Run(c)
	if !forced {
		t.Fatal("Run did not force the delayed thunk")
	}
}

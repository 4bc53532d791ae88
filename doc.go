// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package free provides stack-safe descriptions of sequential, effectful
// computations and interchangeable interpreters for them.
//
// A program is built once, as inert data, from sequencing combinators; how
// it executes is decided later by the interpreter it is handed to. The same
// program value can be reduced many times, under different interpreters,
// without interference.
//
// # Design Philosophy
//
// free provides:
//   - Tagged-union program representations reduced by explicit loops —
//     never self-recursion — so call-stack usage stays O(1) regardless of
//     how many steps a program sequences
//   - An open effect vocabulary: operations are plain descriptions tagged
//     with their result type, interpreted by a [Translator] into an
//     execution context chosen at run time
//   - Pure simulators alongside real executors, so effectful programs are
//     testable deterministically
//
// # Trampoline
//
// [Comp] is the fixed-leaf trampoline: a computation is completed
// ([Return]), deferred ([Delay]), or a sequence ([Bind], with [Map] and
// [Then] derived). [Run] reduces it iteratively. The crux of the loop is
// re-association: a left-nested Bind(Bind(y, g), k) is rewritten to
// Bind(y, a => Bind(g(a), k)) — an associativity-preserving rewrite that
// turns arbitrarily left-nested chains into right-associated ones the loop
// can consume without recursion.
//
// # Async Computations
//
// [Async] is the same shape with the deferred leaf replaced by a [Future]
// running on an [Executor]. [RunAsync] reduces to a single future: pure
// rewriting happens on the calling goroutine; suspension only ever occurs
// inside the executor's own sequencing.
//
// # Free Programs
//
// [Free] generalizes both: the suspended leaf is an arbitrary effect
// operation. Operations implement the F-bounded [Op] constraint (or embed
// [Phantom]); [Perform] describes one as a program leaf. [RunFree] drives
// a program against a [Translator] (operation → context value) and a
// [Target] (lift + sequence), so supplying a different translator changes
// execution semantics with zero changes to the program.
//
// Normalization eliminates every shape except a completed program, a bare
// effect leaf, and a bind of an effect leaf; any other shape reaching the
// driver is an internal defect and panics. An operation a translator does
// not recognize panics on first use — translator totality is a
// construction-time obligation, never a recoverable condition.
//
// # Console
//
// [ReadLine] and [PrintLine] form the example vocabulary (built with
// [ReadLn] and [PrintLn]), with four ready-made interpreters:
//
//   - [RunConsole]: real I/O, immediate, on the calling goroutine
//   - [RunConsoleFuture]: real I/O, each effect a unit of work on an
//     [Executor]
//   - [RunConsoleState]: pure, threading [Buffers] (input queue + output
//     log) by value — the deterministic testing interpreter
//   - [RunConsoleReader]: pure, one fixed input line, output discarded
//
// A failed read yields [None]; absence is data and callers branch on it.
//
// # Bridge
//
// A [Comp] is a [Free] program over a one-operation thunk vocabulary;
// [FromComp] converts, and [ForceThunks] interprets the [Force] operation
// in the immediate context.
//
// # Example
//
//	greet := free.FreeBind(free.ReadLn(), func(name free.Option[string]) free.Free[struct{}] {
//		return free.PrintLn("hello, " + name.GetOrElse("nobody"))
//	})
//
//	_, sim := free.RunConsoleState(greet, free.Buffers{In: []string{"gopher"}})
//	// sim.Out == []string{"hello, gopher"}
package free

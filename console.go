// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package free

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console effect vocabulary: read a line, print a line.
// Each operation carries its own rendering into the four standard target
// contexts as TranslateDirect/TranslateFuture/TranslateBuffers/
// TranslateReader methods; the translators dispatch on these through
// structural interface assertions.

// ReadLine is the effect operation for reading a line of input.
// Its result is None on any read failure.
type ReadLine struct{}

func (ReadLine) OpResult() Option[string] { panic("phantom") }

// TranslateDirect renders ReadLine in the immediate context.
func (ReadLine) TranslateDirect(c *ConsoleIO) Erased {
	return Thunk(func() Erased { return c.ReadLine() })
}

// TranslateFuture renders ReadLine as a unit of work on the executor.
func (ReadLine) TranslateFuture(e *Executor, c *ConsoleIO) Erased {
	return Fork(e, func() Erased { return c.ReadLine() })
}

// TranslateBuffers renders ReadLine in the pure state-threading context.
func (ReadLine) TranslateBuffers() Erased {
	return StateFn(func(b Buffers) (Erased, Buffers) {
		line, next := b.ReadLine()
		return line, next
	})
}

// TranslateReader renders ReadLine in the pure reader context.
func (ReadLine) TranslateReader() Erased {
	return ReaderFn(func(input string) Erased { return Some(input) })
}

// PrintLine is the effect operation for printing a line of output.
type PrintLine struct {
	Line string
}

func (PrintLine) OpResult() struct{} { panic("phantom") }

// TranslateDirect renders PrintLine in the immediate context.
func (o PrintLine) TranslateDirect(c *ConsoleIO) Erased {
	return Thunk(func() Erased {
		c.PrintLine(o.Line)
		return struct{}{}
	})
}

// TranslateFuture renders PrintLine as a unit of work on the executor.
func (o PrintLine) TranslateFuture(e *Executor, c *ConsoleIO) Erased {
	return Fork(e, func() Erased {
		c.PrintLine(o.Line)
		return struct{}{}
	})
}

// TranslateBuffers renders PrintLine in the pure state-threading context.
func (o PrintLine) TranslateBuffers() Erased {
	return StateFn(func(b Buffers) (Erased, Buffers) {
		return struct{}{}, b.PrintLine(o.Line)
	})
}

// TranslateReader renders PrintLine in the pure reader context: a no-op.
func (PrintLine) TranslateReader() Erased {
	return ReaderFn(func(string) Erased { return struct{}{} })
}

// ReadLn describes reading one line of input.
func ReadLn() Free[Option[string]] {
	return Perform(ReadLine{})
}

// PrintLn describes printing one line of output.
func PrintLn(line string) Free[struct{}] {
	return Perform(PrintLine{Line: line})
}

// ConsoleIO performs real console reads and writes for the direct and
// parallel interpreters.
type ConsoleIO struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleIO creates console I/O over the given reader and writer.
func NewConsoleIO(in io.Reader, out io.Writer) *ConsoleIO {
	return &ConsoleIO{in: bufio.NewReader(in), out: out}
}

// Stdio creates console I/O over the process's stdin and stdout.
func Stdio() *ConsoleIO {
	return NewConsoleIO(os.Stdin, os.Stdout)
}

// ReadLine reads one line, without its trailing newline.
// Any failure, including EOF, yields None; errors do not propagate.
func (c *ConsoleIO) ReadLine() Option[string] {
	line, err := c.in.ReadString('\n')
	if err != nil {
		return None[string]()
	}
	return Some(strings.TrimRight(line, "\r\n"))
}

// PrintLine writes one line followed by a newline.
func (c *ConsoleIO) PrintLine(line string) {
	fmt.Fprintln(c.out, line)
}

// Buffers is the simulated console of the state-threaded interpreter:
// an input queue consumed front to back and an output log appended to.
// Buffers is threaded by value; reads and prints return new values and
// never mutate shared memory, so one initial Buffers can seed many runs.
type Buffers struct {
	In  []string
	Out []string
}

// ReadLine takes the head of the input queue, or None when it is empty.
func (b Buffers) ReadLine() (Option[string], Buffers) {
	if len(b.In) == 0 {
		return None[string](), b
	}
	head := b.In[0]
	b.In = b.In[1:]
	return Some(head), b
}

// PrintLine appends a line to the output log.
// The full slice expression forces a fresh backing array, keeping runs
// that share an initial Buffers value independent.
func (b Buffers) PrintLine(line string) Buffers {
	b.Out = append(b.Out[:len(b.Out):len(b.Out)], line)
	return b
}

// consoleDirect translates Console operations into thunks over real I/O.
type consoleDirect struct {
	io *ConsoleIO
}

// Translate implements Translator.
func (t consoleDirect) Translate(op Operation) Erased {
	if o, ok := op.(interface{ TranslateDirect(*ConsoleIO) Erased }); ok {
		return o.TranslateDirect(t.io)
	}
	unhandledOp("DirectConsole")
	return nil
}

// DirectConsole creates the translator for the immediate interpreter.
func DirectConsole(io *ConsoleIO) consoleDirect {
	return consoleDirect{io: io}
}

// consoleFuture translates Console operations into executor futures.
type consoleFuture struct {
	ex *Executor
	io *ConsoleIO
}

// Translate implements Translator.
func (t consoleFuture) Translate(op Operation) Erased {
	if o, ok := op.(interface {
		TranslateFuture(*Executor, *ConsoleIO) Erased
	}); ok {
		return o.TranslateFuture(t.ex, t.io)
	}
	unhandledOp("FutureConsole")
	return nil
}

// FutureConsole creates the translator for the parallel interpreter.
func FutureConsole(ex *Executor, io *ConsoleIO) consoleFuture {
	return consoleFuture{ex: ex, io: io}
}

// consoleBuffers translates Console operations into pure state functions.
type consoleBuffers struct{}

// Translate implements Translator.
func (consoleBuffers) Translate(op Operation) Erased {
	if o, ok := op.(interface{ TranslateBuffers() Erased }); ok {
		return o.TranslateBuffers()
	}
	unhandledOp("BufferedConsole")
	return nil
}

// BufferedConsole creates the translator for the state-threaded interpreter.
func BufferedConsole() consoleBuffers {
	return consoleBuffers{}
}

// consoleReader translates Console operations into pure reader functions.
type consoleReader struct{}

// Translate implements Translator.
func (consoleReader) Translate(op Operation) Erased {
	if o, ok := op.(interface{ TranslateReader() Erased }); ok {
		return o.TranslateReader()
	}
	unhandledOp("ReaderConsole")
	return nil
}

// ReaderConsole creates the translator for the reader interpreter.
func ReaderConsole() consoleReader {
	return consoleReader{}
}

// RunConsole runs a Console program against real I/O, immediately, on the
// calling goroutine.
func RunConsole[A any](m Free[A], io *ConsoleIO) A {
	t := RunFree(m, DirectConsole(io), ThunkTarget{}).(Thunk)
	return t().(A)
}

// RunConsoleFuture runs a Console program against real I/O on the executor,
// each effect as its own unit of work. The returned future completes when
// the program does.
func RunConsoleFuture[A any](e *Executor, m Free[A], io *ConsoleIO) *Future[A] {
	f := RunFree(m, FutureConsole(e, io), FutureTarget{Ex: e}).(*Future[Erased])
	out := newFuture[A]()
	f.OnComplete(func(v Erased) { out.complete(v.(A)) })
	return out
}

// RunConsoleState runs a Console program purely against simulated buffers,
// returning the result and the final buffers. No external I/O occurs; this
// is the deterministic testing interpreter.
func RunConsoleState[A any](m Free[A], b Buffers) (A, Buffers) {
	s := RunFree(m, BufferedConsole(), StateTarget{}).(StateFn)
	v, final := s(b)
	return v.(A), final
}

// RunConsoleReader runs a Console program purely against one fixed input
// line. Every ReadLine sees the same input; output is discarded.
func RunConsoleReader[A any](m Free[A], input string) A {
	r := RunFree(m, ReaderConsole(), ReaderTarget{}).(ReaderFn)
	return r(input).(A)
}

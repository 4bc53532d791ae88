// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"code.hybscloud.com/free"
)

// The demo programs are pure descriptions: building them performs no I/O.
// They run under any console interpreter, which is what the tests rely on.

func fahrenheitToCelsius(f float64) float64 {
	return (f - 32.0) * 5.0 / 9.0
}

// convertProgram prompts for a Fahrenheit temperature and prints the
// Celsius equivalent.
func convertProgram() free.Free[struct{}] {
	return free.FreeThen(
		free.PrintLn("Enter a temperature in degrees Fahrenheit:"),
		free.FreeBind(free.ReadLn(), func(line free.Option[string]) free.Free[struct{}] {
			s, ok := line.Get()
			if !ok {
				return free.PrintLn("no input")
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return free.PrintLn(fmt.Sprintf("not a number: %q", s))
			}
			return free.PrintLn(strconv.FormatFloat(fahrenheitToCelsius(f), 'f', 2, 64))
		}),
	)
}

// factorialProgram reads numbers and prints their factorials until a blank
// line, "q", or end of input. The result is how many numbers it processed.
func factorialProgram(banner bool) free.Free[int] {
	loop := factorialLoop(0)
	if !banner {
		return loop
	}
	return free.FreeThen(
		free.PrintLn("The Amazing Factorial REPL"),
		free.FreeThen(free.PrintLn("Enter a number, or a blank line to quit."), loop),
	)
}

func factorialLoop(count int) free.Free[int] {
	return free.FreeBind(free.ReadLn(), func(line free.Option[string]) free.Free[int] {
		s, ok := line.Get()
		if !ok {
			return free.FreeReturn(count)
		}
		s = strings.TrimSpace(s)
		if s == "" || s == "q" {
			return free.FreeReturn(count)
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return free.FreeThen(
				free.PrintLn(fmt.Sprintf("not a natural number: %q", s)),
				factorialLoop(count),
			)
		}
		return free.FreeThen(
			free.PrintLn(fmt.Sprintf("factorial(%d) = %s", n, factorial(n).String())),
			factorialLoop(count+1),
		)
	})
}

// factorial computes n! exactly.
func factorial(n int) *big.Int {
	acc := big.NewInt(1)
	for i := 2; i <= n; i++ {
		acc.Mul(acc, big.NewInt(int64(i)))
	}
	return acc
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"code.hybscloud.com/free"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The state-threaded interpreter makes the demo programs testable without
// touching a real console.

func TestConvertProgramBoiling(t *testing.T) {
	_, buf := free.RunConsoleState(convertProgram(), free.Buffers{In: []string{"212"}})
	require.Equal(t, []string{
		"Enter a temperature in degrees Fahrenheit:",
		"100.00",
	}, buf.Out)
}

func TestConvertProgramFreezing(t *testing.T) {
	_, buf := free.RunConsoleState(convertProgram(), free.Buffers{In: []string{"32"}})
	require.Len(t, buf.Out, 2)
	assert.Equal(t, "0.00", buf.Out[1])
}

func TestConvertProgramBadInput(t *testing.T) {
	_, buf := free.RunConsoleState(convertProgram(), free.Buffers{In: []string{"warm"}})
	require.Len(t, buf.Out, 2)
	assert.Equal(t, `not a number: "warm"`, buf.Out[1])
}

func TestConvertProgramNoInput(t *testing.T) {
	_, buf := free.RunConsoleState(convertProgram(), free.Buffers{})
	require.Len(t, buf.Out, 2)
	assert.Equal(t, "no input", buf.Out[1])
}

func TestConvertProgramReaderInterpreter(t *testing.T) {
	// The reader interpreter feeds the same fixed line to every read and
	// swallows output; the program must still terminate normally.
	assert.NotPanics(t, func() {
		free.RunConsoleReader(convertProgram(), "41")
	})
}

func TestFactorialProgram(t *testing.T) {
	count, buf := free.RunConsoleState(factorialProgram(false),
		free.Buffers{In: []string{"3", "5", ""}})
	assert.Equal(t, 2, count)
	require.Equal(t, []string{
		"factorial(3) = 6",
		"factorial(5) = 120",
	}, buf.Out)
}

func TestFactorialProgramQuitsOnEOF(t *testing.T) {
	count, buf := free.RunConsoleState(factorialProgram(false),
		free.Buffers{In: []string{"4"}})
	assert.Equal(t, 1, count)
	require.Equal(t, []string{"factorial(4) = 24"}, buf.Out)
}

func TestFactorialProgramRejectsNonNumbers(t *testing.T) {
	count, buf := free.RunConsoleState(factorialProgram(false),
		free.Buffers{In: []string{"x", "-1", "0", "q"}})
	assert.Equal(t, 1, count)
	require.Equal(t, []string{
		`not a natural number: "x"`,
		`not a natural number: "-1"`,
		"factorial(0) = 1",
	}, buf.Out)
}

func TestFactorialProgramBanner(t *testing.T) {
	_, buf := free.RunConsoleState(factorialProgram(true), free.Buffers{})
	require.Equal(t, []string{
		"The Amazing Factorial REPL",
		"Enter a number, or a blank line to quit.",
	}, buf.Out)
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, "1", factorial(0).String())
	assert.Equal(t, "1", factorial(1).String())
	assert.Equal(t, "3628800", factorial(10).String())
	assert.Equal(t, "2432902008176640000", factorial(20).String())
}

func TestFahrenheitToCelsius(t *testing.T) {
	assert.InDelta(t, 100.0, fahrenheitToCelsius(212), 1e-9)
	assert.InDelta(t, 0.0, fahrenheitToCelsius(32), 1e-9)
	assert.InDelta(t, -40.0, fahrenheitToCelsius(-40), 1e-9)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var factorialCmd = &cobra.Command{
	Use:   "factorial",
	Short: "Read numbers and print their factorials until a blank line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Piped input gets no banner and no summary line.
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		count, err := interpret(cmd, factorialProgram(interactive))
		if err != nil {
			return err
		}
		if interactive {
			fmt.Printf("processed %d numbers\n", count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factorialCmd)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/free"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "freedemo",
	Short: "Demonstration programs for the free computation library",
	Long: `freedemo runs small console programs described with code.hybscloud.com/free.

Each program is built once as inert data; the --interpreter flag selects
how it executes without changing the program itself.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("interpreter", "direct", "Execution strategy: direct or parallel")
	rootCmd.PersistentFlags().Int("workers", 0, "Worker count for the parallel interpreter (0 = GOMAXPROCS)")
}

// interpret runs a console program under the selected execution strategy.
func interpret[A any](cmd *cobra.Command, program free.Free[A]) (A, error) {
	name, _ := cmd.Flags().GetString("interpreter")
	switch name {
	case "direct":
		return free.RunConsole(program, free.Stdio()), nil
	case "parallel":
		workers, _ := cmd.Flags().GetInt("workers")
		e := free.NewExecutor(workers)
		defer e.Close()
		return free.RunConsoleFuture(e, program, free.Stdio()).Await(), nil
	default:
		var zero A
		return zero, fmt.Errorf("unknown interpreter %q (want direct or parallel)", name)
	}
}

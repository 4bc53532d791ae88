// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Fahrenheit temperature to Celsius",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := interpret(cmd, convertProgram())
		return err
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfmarks/internal/toolkit"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the external tools are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := toolkit.New(toolsConfig(), logger)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "backend: %s\n", tk.Backend())

		missing := 0
		for _, s := range tk.Check() {
			if s.OK() {
				fmt.Fprintf(w, "ok       %s (%s)\n", s.Name, s.Path)
				continue
			}
			fmt.Fprintf(w, "missing  %s: %v\n", s.Name, s.Err)
			missing++
		}
		if missing > 0 {
			return fmt.Errorf("%d required tool(s) not found", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

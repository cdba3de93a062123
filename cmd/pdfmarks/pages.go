// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfmarks/internal/toolkit"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <input.pdf>",
	Short: "Print the number of pages in a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		tk, err := toolkit.New(toolsConfig(), logger)
		if err != nil {
			return err
		}
		n, err := tk.Pages.PageCount(cmd.Context(), path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

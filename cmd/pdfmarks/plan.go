// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfmarks/internal/mark"
	"github.com/pdiddy/pdfmarks/internal/outline"
	"github.com/pdiddy/pdfmarks/internal/toolkit"
	"github.com/pdiddy/pdfmarks/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan <input.pdf>",
	Short: "Resolve a table of contents and print the bookmarks without writing",
	Long: `Plan resolves every row of the table of contents to a physical page and
prints the result. The YAML output can be edited and passed back with
'pdfmarks apply --from-plan'; --format info prints the pdftk bookmark
description instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	addPlanFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "table of contents CSV with Title, Page, Level columns")
	addSchemeFlags(cmd)
	cmd.Flags().Int("pages", 0, "total page count (default: read from the input document)")
	cmd.Flags().String("format", "yaml", "output format: yaml or info")
}

func runPlan(cmd *cobra.Command, args []string) error {
	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath == "" {
		return fmt.Errorf("--csv is required")
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "info" {
		return fmt.Errorf("unknown format %q (want yaml or info)", format)
	}
	schemes, err := schemesFromFlags(cmd)
	if err != nil {
		return err
	}
	pages, _ := cmd.Flags().GetInt("pages")

	cfg := types.MarkConfig{
		InputPath:  args[0],
		CSVPath:    csvPath,
		Schemes:    schemes,
		TotalPages: pages,
	}

	deps := mark.Deps{Logger: logger}
	if pages <= 0 {
		tk, err := toolkit.New(toolsConfig(), logger)
		if err != nil {
			return err
		}
		deps = mark.FromToolkit(tk, logger)
	}

	plan, _, err := mark.Plan(cmd.Context(), cfg, deps)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if format == "info" {
		return outline.WriteInfo(w, plan.Bookmarks)
	}
	return outline.WritePlan(w, *plan)
}

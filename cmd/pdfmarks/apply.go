// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfmarks/internal/mark"
	"github.com/pdiddy/pdfmarks/internal/toolkit"
	"github.com/pdiddy/pdfmarks/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply <input.pdf> <output.pdf>",
	Short: "Write bookmarks and page labels into a copy of a PDF",
	Long: `Apply reads the table of contents, resolves each printed page label to
a physical page, writes page labels for every configured numbering scheme,
and embeds the bookmarks into the output document. The input is never
modified.

Example: front matter numbered i, ii, ... from the first page and the body
numbered 1, 2, ... from physical page 13:

  pdfmarks apply book.pdf book-marked.pdf --csv toc.csv --roman 1,1 --arabic 13,1`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	addApplyFlags(applyCmd)
	rootCmd.AddCommand(applyCmd)
}

func addApplyFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "table of contents CSV with Title, Page, Level columns")
	cmd.Flags().String("from-plan", "", "use a plan exported by 'pdfmarks plan' instead of --csv")
	addSchemeFlags(cmd)
	cmd.Flags().Int("pages", 0, "total page count (default: read from the input document)")
	cmd.Flags().Bool("no-labels", false, "do not write page-label metadata")
	cmd.Flags().String("info-file", "", "keep the bookmark description at this path")
	cmd.Flags().Bool("dry-run", false, "print the resolved plan without writing a PDF")
}

// tableSource returns the --csv and --from-plan values. Exactly one must be
// set, and a plan already carries its numbering schemes.
func tableSource(cmd *cobra.Command) (csvPath, planPath string, err error) {
	csvPath, _ = cmd.Flags().GetString("csv")
	planPath, _ = cmd.Flags().GetString("from-plan")
	if (csvPath == "") == (planPath == "") {
		return "", "", fmt.Errorf("provide exactly one of --csv or --from-plan")
	}
	if planPath != "" {
		for _, name := range []string{"roman", "arabic"} {
			if cmd.Flags().Changed(name) {
				return "", "", fmt.Errorf("--%s cannot be combined with --from-plan; edit the schemes in the plan instead", name)
			}
		}
	}
	return csvPath, planPath, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	csvPath, planPath, err := tableSource(cmd)
	if err != nil {
		return err
	}

	schemes, err := schemesFromFlags(cmd)
	if err != nil {
		return err
	}
	pages, _ := cmd.Flags().GetInt("pages")
	noLabels, _ := cmd.Flags().GetBool("no-labels")
	infoFile, _ := cmd.Flags().GetString("info-file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg := types.MarkConfig{
		InputPath:  args[0],
		OutputPath: args[1],
		CSVPath:    csvPath,
		PlanPath:   planPath,
		Schemes:    schemes,
		TotalPages: pages,
		InfoFile:   infoFile,
		SkipLabels: noLabels,
		DryRun:     dryRun,
	}

	tk, err := toolkit.New(toolsConfig(), logger)
	if err != nil {
		return err
	}

	res, err := mark.Run(cmd.Context(), cfg, mark.FromToolkit(tk, logger), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !dryRun {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d bookmark(s) across %d page(s), page labels: %v, warnings: %d\n",
			res.Bookmarks, res.TotalPages, res.Labels, len(res.Warnings))
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "apply"}
	addApplyFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestTableSource(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCSV  string
		wantPlan string
		errMsg   string
	}{
		{name: "csv", args: []string{"--csv", "toc.csv"}, wantCSV: "toc.csv"},
		{name: "csv with schemes", args: []string{"--csv", "toc.csv", "--roman", "1,1", "--arabic", "9,1"}, wantCSV: "toc.csv"},
		{name: "plan", args: []string{"--from-plan", "plan.yaml"}, wantPlan: "plan.yaml"},
		{name: "neither", errMsg: "exactly one"},
		{name: "both", args: []string{"--csv", "toc.csv", "--from-plan", "plan.yaml"}, errMsg: "exactly one"},
		{name: "plan with roman", args: []string{"--from-plan", "plan.yaml", "--roman", "1,1"}, errMsg: "--roman cannot be combined"},
		{name: "plan with default arabic spelled out", args: []string{"--from-plan", "plan.yaml", "--arabic", "1,1"}, errMsg: "--arabic cannot be combined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csvPath, planPath, err := tableSource(applyFlagsCmd(t, tt.args...))
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCSV, csvPath)
			assert.Equal(t, tt.wantPlan, planPath)
		})
	}
}

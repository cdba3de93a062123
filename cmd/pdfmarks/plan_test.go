// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPlanWith(t *testing.T, csv string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "toc.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	cmd := &cobra.Command{Use: "plan"}
	addPlanFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(append([]string{"--csv", csvPath, "--pages", "40"}, args...)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	err := runPlan(cmd, []string{filepath.Join(dir, "book.pdf")})
	return out.String(), err
}

func TestRunPlan_WritesToCommandOutput(t *testing.T) {
	csv := "Title,Page,Level\nPreface,iii,1\nCh1,1,1\n"

	out, err := runPlanWith(t, csv, "--roman", "1,1", "--arabic", "9,1")
	require.NoError(t, err)
	assert.Contains(t, out, "total_pages: 40")
	assert.Contains(t, out, "title: Preface")
	assert.Contains(t, out, "page: 9")

	out, err = runPlanWith(t, csv, "--roman", "1,1", "--arabic", "9,1", "--format", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "BookmarkTitle: Preface\nBookmarkLevel: 1\nBookmarkPageNumber: 3\n")
}

func TestRunPlan_Errors(t *testing.T) {
	_, err := runPlanWith(t, "Title,Page,Level\nCh1,1,1\n", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown format")

	out, err := runPlanWith(t, "Title,Page,Level\nPreface,iii,1\n")
	assert.ErrorContains(t, err, "missing numbering scheme")
	assert.Empty(t, out)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

func TestWriteInfo(t *testing.T) {
	bms := []types.Bookmark{
		{Title: "Intro", Level: 1, Page: 5},
		{Title: "Über\nalles", Level: 2, Page: 19},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteInfo(&buf, bms))

	want := "BookmarkBegin\n" +
		"BookmarkTitle: Intro\n" +
		"BookmarkLevel: 1\n" +
		"BookmarkPageNumber: 5\n" +
		"BookmarkBegin\n" +
		"BookmarkTitle: Über alles\n" +
		"BookmarkLevel: 2\n" +
		"BookmarkPageNumber: 19\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteInfoFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content from an earlier run\n"), 0o644))

	require.NoError(t, WriteInfoFile(path, []types.Bookmark{{Title: "A", Level: 1, Page: 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "BookmarkTitle: A\n")
}

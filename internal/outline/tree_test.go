// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

func TestTree(t *testing.T) {
	bms := []types.Bookmark{
		{Title: "Part I", Level: 1, Page: 1},
		{Title: "Ch 1", Level: 2, Page: 2},
		{Title: "Sec 1.1", Level: 3, Page: 3},
		{Title: "Ch 2", Level: 2, Page: 8},
		{Title: "Part II", Level: 1, Page: 20},
		{Title: "Ch 3", Level: 2, Page: 21},
	}
	roots := Tree(bms)
	require.Len(t, roots, 2)

	assert.Equal(t, "Part I", roots[0].Title)
	require.Len(t, roots[0].Kids, 2)
	assert.Equal(t, "Ch 1", roots[0].Kids[0].Title)
	require.Len(t, roots[0].Kids[0].Kids, 1)
	assert.Equal(t, "Sec 1.1", roots[0].Kids[0].Kids[0].Title)
	assert.Equal(t, "Ch 2", roots[0].Kids[1].Title)

	assert.Equal(t, "Part II", roots[1].Title)
	require.Len(t, roots[1].Kids, 1)
	assert.Equal(t, 21, roots[1].Kids[0].Page)
}

func TestTree_Flat(t *testing.T) {
	roots := Tree([]types.Bookmark{{Title: "a", Level: 1}, {Title: "b", Level: 1}})
	assert.Len(t, roots, 2)
	assert.Empty(t, Tree(nil))
}

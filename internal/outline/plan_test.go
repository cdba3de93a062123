// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

func TestWritePlan_ReadPlan(t *testing.T) {
	p := Plan{
		Input:      "/books/thesis.pdf",
		Source:     "/books/toc.csv",
		TotalPages: 120,
		Schemes: types.Schemes{
			Roman:  &types.NumberingScheme{StartPage: 1, FirstLabel: 1},
			Arabic: &types.NumberingScheme{StartPage: 9, FirstLabel: 1},
		},
		Bookmarks: []types.Bookmark{
			{Title: "Preface", Level: 1, Page: 3, Label: "iii", System: types.Roman},
			{Title: "Chapter 1", Level: 1, Page: 9, Label: "1", System: types.Arabic},
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, p))
	assert.Contains(t, buf.String(), "system: roman")
	assert.Contains(t, buf.String(), "start_page: 9")

	got, err := ReadPlan(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.TotalPages, got.TotalPages)
	assert.Equal(t, p.Bookmarks, got.Bookmarks)
	assert.Equal(t, 8, got.Schemes.Arabic.Offset())
}

func TestReadPlan_UnknownSystem(t *testing.T) {
	in := "total_pages: 3\nbookmarks:\n  - title: A\n    level: 1\n    page: 1\n    system: greek\n"
	_, err := ReadPlan(strings.NewReader(in))
	assert.Error(t, err)
}

func TestPlanCheck(t *testing.T) {
	p := &Plan{Bookmarks: []types.Bookmark{
		{Title: "A", Level: 1, Page: 1},
		{Title: "B", Level: 2, Page: 4},
	}}
	assert.NoError(t, p.Check(4))

	err := p.Check(3)
	assert.ErrorIs(t, err, types.ErrPageOutOfRange)
	assert.Contains(t, err.Error(), `bookmark 2 ("B")`)
	assert.NotContains(t, err.Error(), "row")

	p.Bookmarks[1].Level = 3
	err = p.Check(4)
	assert.ErrorIs(t, err, types.ErrInvalidPlan)
	assert.NotErrorIs(t, err, types.ErrInvalidCSV)
	assert.Contains(t, err.Error(), "bookmark 2")
}

func TestPlanCheck_Empty(t *testing.T) {
	p := &Plan{TotalPages: 10}
	assert.ErrorIs(t, p.Check(10), types.ErrInvalidPlan)
}

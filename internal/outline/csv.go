// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline reads tables of contents and writes the bookmark
// descriptions consumed by the PDF toolkits.
package outline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

// Required CSV header names, matched case-insensitively.
const (
	colTitle = "title"
	colPage  = "page"
	colLevel = "level"
)

// LoadCSV reads the table of contents at path.
func LoadCSV(path string) ([]types.BookmarkEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table of contents %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ReadCSV parses a table with a header row naming Title, Page and Level
// columns in any order. Extra columns are ignored. A table must hold at
// least one row besides the header.
func ReadCSV(r io.Reader) ([]types.BookmarkEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", types.ErrInvalidCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidCSV, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var entries []types.BookmarkEntry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidCSV, err)
		}
		line, _ := reader.FieldPos(0)

		entry, err := parseRecord(record, cols, line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no bookmark rows after the header", types.ErrInvalidCSV)
	}
	return entries, nil
}

type columns struct {
	title, page, level int
}

func (c columns) max() int {
	return max(c.title, c.page, c.level)
}

func locateColumns(header []string) (columns, error) {
	cols := columns{-1, -1, -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colTitle:
			cols.title = i
		case colPage:
			cols.page = i
		case colLevel:
			cols.level = i
		}
	}

	var missing []string
	if cols.title < 0 {
		missing = append(missing, "Title")
	}
	if cols.page < 0 {
		missing = append(missing, "Page")
	}
	if cols.level < 0 {
		missing = append(missing, "Level")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: header %q is missing column(s) %s",
			types.ErrInvalidCSV, strings.Join(header, ","), strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRecord(record []string, cols columns, line int) (types.BookmarkEntry, error) {
	fail := func(title, label, format string, args ...any) error {
		return &types.RowError{
			Row:   line,
			Title: title,
			Label: label,
			Err:   fmt.Errorf("%w: "+format, append([]any{types.ErrInvalidCSV}, args...)...),
		}
	}

	if len(record) <= cols.max() {
		return types.BookmarkEntry{}, fail("", "", "expected at least %d fields, got %d", cols.max()+1, len(record))
	}

	title := strings.TrimSpace(record[cols.title])
	label := strings.TrimSpace(record[cols.page])
	levelText := strings.TrimSpace(record[cols.level])

	if title == "" {
		return types.BookmarkEntry{}, fail(title, label, "empty title")
	}
	if label == "" {
		return types.BookmarkEntry{}, fail(title, label, "empty page")
	}
	level, err := strconv.Atoi(levelText)
	if err != nil || level < 1 {
		return types.BookmarkEntry{}, fail(title, label, "level %q is not a positive integer", levelText)
	}

	return types.BookmarkEntry{
		Row:       line,
		Title:     title,
		PageLabel: label,
		Level:     level,
	}, nil
}

// ValidateLevels checks that the first entry is top-level and that no entry
// is nested more than one level below its predecessor.
func ValidateLevels(entries []types.BookmarkEntry) error {
	prev := 0
	for _, e := range entries {
		if e.Level > prev+1 {
			return &types.RowError{
				Row:   e.Row,
				Title: e.Title,
				Label: e.PageLabel,
				Err:   fmt.Errorf("%w: level %d follows level %d", types.ErrInvalidCSV, e.Level, prev),
			}
		}
		prev = e.Level
	}
	return nil
}

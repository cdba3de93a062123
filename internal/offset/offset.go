// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package offset converts printed page labels into physical page numbers.
//
// Each numeral system in a document has a NumberingScheme: the physical page
// it starts on and the label printed there. A label's physical page is its
// nominal value plus that scheme's offset (start page minus first label).
package offset

import (
	"fmt"

	"github.com/pdiddy/pdfmarks/internal/numeral"
	"github.com/pdiddy/pdfmarks/pkg/types"
)

// Resolve maps every entry to its physical page, preserving order. It stops
// at the first entry that cannot be resolved and returns a *types.RowError
// naming it. Results are never clamped into range.
func Resolve(entries []types.BookmarkEntry, totalPages int, schemes types.Schemes) ([]types.Bookmark, error) {
	if totalPages < 1 {
		return nil, fmt.Errorf("%w: document has %d pages", types.ErrPageOutOfRange, totalPages)
	}

	out := make([]types.Bookmark, 0, len(entries))
	for _, e := range entries {
		bm, err := ResolveEntry(e, totalPages, schemes)
		if err != nil {
			return nil, err
		}
		out = append(out, bm)
	}
	return out, nil
}

// ResolveEntry resolves a single entry.
func ResolveEntry(e types.BookmarkEntry, totalPages int, schemes types.Schemes) (types.Bookmark, error) {
	rowErr := func(err error) error {
		return &types.RowError{Row: e.Row, Title: e.Title, Label: e.PageLabel, Err: err}
	}

	sys, nominal, err := numeral.Classify(e.PageLabel)
	if err != nil {
		return types.Bookmark{}, rowErr(err)
	}

	scheme := schemes.For(sys)
	if scheme == nil {
		return types.Bookmark{}, rowErr(fmt.Errorf("%w: label %q is %s but no %s scheme is configured",
			types.ErrMissingScheme, e.PageLabel, sys, sys))
	}

	actual := nominal + scheme.Offset()
	if actual < 1 || actual > totalPages {
		return types.Bookmark{}, rowErr(fmt.Errorf("%w: %s page %d with offset %d is physical page %d, document has %d pages",
			types.ErrPageOutOfRange, sys, nominal, scheme.Offset(), actual, totalPages))
	}

	return types.Bookmark{
		Title:  e.Title,
		Level:  e.Level,
		Page:   actual,
		Label:  e.PageLabel,
		System: sys,
	}, nil
}

// Warning describes a bookmark that points before its predecessor.
type Warning struct {
	Index    int
	Title    string
	Page     int
	PrevPage int
}

func (w Warning) String() string {
	return fmt.Sprintf("bookmark %d %q on page %d precedes previous bookmark on page %d",
		w.Index+1, w.Title, w.Page, w.PrevPage)
}

// CheckOrder reports bookmarks whose page is lower than the one before.
// A table of contents in reading order never produces warnings.
func CheckOrder(bookmarks []types.Bookmark) []Warning {
	var warnings []Warning
	for i := 1; i < len(bookmarks); i++ {
		if bookmarks[i].Page < bookmarks[i-1].Page {
			warnings = append(warnings, Warning{
				Index:    i,
				Title:    bookmarks[i].Title,
				Page:     bookmarks[i].Page,
				PrevPage: bookmarks[i-1].Page,
			})
		}
	}
	return warnings
}

// SystemsUsed lists the numeral systems that appear in bookmarks, Roman first.
func SystemsUsed(bookmarks []types.Bookmark) []types.NumeralSystem {
	var roman, arabic bool
	for _, b := range bookmarks {
		switch b.System {
		case types.Roman:
			roman = true
		case types.Arabic:
			arabic = true
		}
	}
	var out []types.NumeralSystem
	if roman {
		out = append(out, types.Roman)
	}
	if arabic {
		out = append(out, types.Arabic)
	}
	return out
}

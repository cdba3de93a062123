// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pdfmarks pipeline:
// table-of-contents rows as read from CSV, numbering schemes, resolved
// bookmarks, configuration, and the error taxonomy reported to the user.
package types

import "fmt"

// NumeralSystem identifies how a page label is written in the source document.
type NumeralSystem int

const (
	Arabic NumeralSystem = iota
	Roman
)

func (s NumeralSystem) String() string {
	switch s {
	case Arabic:
		return "arabic"
	case Roman:
		return "roman"
	default:
		return fmt.Sprintf("NumeralSystem(%d)", int(s))
	}
}

// MarshalText encodes the system by name so YAML plans stay readable.
func (s NumeralSystem) MarshalText() ([]byte, error) {
	switch s {
	case Arabic, Roman:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown numeral system %d", int(s))
}

// UnmarshalText accepts "arabic" or "roman".
func (s *NumeralSystem) UnmarshalText(b []byte) error {
	switch string(b) {
	case "arabic":
		*s = Arabic
	case "roman":
		*s = Roman
	default:
		return fmt.Errorf("unknown numeral system %q", string(b))
	}
	return nil
}

// BookmarkEntry is one row of the table-of-contents CSV.
type BookmarkEntry struct {
	// Row is the 1-based line of the row in the source table; the header is row 1.
	Row int `json:"row" yaml:"row"`

	// Title is the bookmark display text.
	Title string `json:"title" yaml:"title"`

	// PageLabel is the page number as printed in the document ("12", "xiv").
	PageLabel string `json:"page" yaml:"page"`

	// Level is the bookmark nesting depth; 1 is top-level.
	Level int `json:"level" yaml:"level"`
}

// Bookmark is a BookmarkEntry resolved to an absolute page of the document.
type Bookmark struct {
	Title string `json:"title" yaml:"title"`
	Level int    `json:"level" yaml:"level"`

	// Page is the 1-based physical page index in the document file.
	Page int `json:"page" yaml:"page"`

	// Label and System record where Page came from.
	Label  string        `json:"label,omitempty" yaml:"label,omitempty"`
	System NumeralSystem `json:"system" yaml:"system"`
}

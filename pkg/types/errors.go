// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// Failure categories. Every error returned by the pipeline wraps exactly one
// of these so callers can test with errors.Is.
var (
	ErrInvalidCSV            = errors.New("invalid csv format")
	ErrUnclassifiableNumeral = errors.New("unclassifiable numeral")
	ErrMissingScheme         = errors.New("missing numbering scheme")
	ErrPageOutOfRange        = errors.New("page out of range")
	ErrExternalTool          = errors.New("external tool failure")
	ErrInvalidScheme         = errors.New("invalid numbering scheme")
	ErrInvalidPlan           = errors.New("invalid plan")
)

// RowError ties a failure to the table row that caused it.
type RowError struct {
	Row   int
	Title string
	Label string
	Err   error
}

func (e *RowError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "row %d", e.Row)
	if e.Title != "" {
		fmt.Fprintf(&b, " (%q", e.Title)
		if e.Label != "" {
			fmt.Fprintf(&b, ", page %q", e.Label)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *RowError) Unwrap() error { return e.Err }

// ToolError reports a delegated process that failed or exited non-zero.
type ToolError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%v: %s %s: %v", ErrExternalTool, e.Tool, strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Is matches ErrExternalTool in addition to the wrapped cause.
func (e *ToolError) Is(target error) bool { return target == ErrExternalTool }

func (e *ToolError) Unwrap() error { return e.Err }

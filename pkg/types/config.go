// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Backend identifies which toolkit reads page counts and writes bookmarks.
type Backend string

const (
	BackendPdftk  Backend = "pdftk"
	BackendPdfcpu Backend = "pdfcpu"
)

// LabelStyle is the numbering style written into the page-label dictionary.
type LabelStyle string

const (
	StyleRomanLower LabelStyle = "roman-lowercase"
	StyleArabic     LabelStyle = "arabic"
)

// StyleFor returns the label style used for pages numbered in sys.
func StyleFor(sys NumeralSystem) LabelStyle {
	if sys == Roman {
		return StyleRomanLower
	}
	return StyleArabic
}

// ToolsConfig holds settings for the external collaborators.
type ToolsConfig struct {
	// Backend selects the page counter and bookmark writer: pdftk or pdfcpu.
	Backend Backend `json:"backend" yaml:"backend"`

	// Pdftk is the pdftk binary name or path (default "pdftk").
	Pdftk string `json:"pdftk" yaml:"pdftk"`

	// PageLabels is the page-labeling utility binary (default "pagelabels").
	PageLabels string `json:"pagelabels" yaml:"pagelabels"`

	// Timeout bounds each external invocation (default 2m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Attempts is how many times a failing invocation is tried (default 1).
	Attempts int `json:"attempts" yaml:"attempts"`

	// RetryDelay is the pause between attempts (default 1s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// LogConfig selects slog level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format"`
}

// MarkConfig describes one invocation: which document to mark, where the
// table of contents comes from, and where to write the result.
type MarkConfig struct {
	// InputPath is the source PDF.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the PDF to produce. It must differ from InputPath.
	OutputPath string `json:"output" yaml:"output"`

	// CSVPath is the table of contents (Title, Page, Level).
	CSVPath string `json:"csv,omitempty" yaml:"csv,omitempty"`

	// PlanPath, when set, replaces CSVPath with a previously exported plan.
	PlanPath string `json:"plan,omitempty" yaml:"plan,omitempty"`

	Schemes Schemes `json:"schemes" yaml:"schemes"`

	// TotalPages overrides the page count reported by the metadata reader.
	TotalPages int `json:"total_pages,omitempty" yaml:"total_pages,omitempty"`

	// InfoFile keeps the bookmark description at this path instead of a
	// temporary file that is removed after the run.
	InfoFile string `json:"info_file,omitempty" yaml:"info_file,omitempty"`

	// SkipLabels disables the page-labeling step.
	SkipLabels bool `json:"skip_labels,omitempty" yaml:"skip_labels,omitempty"`

	// DryRun resolves bookmarks and prints the plan without writing a PDF.
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Config is the on-disk configuration file layout.
type Config struct {
	Tools ToolsConfig `json:"tools" yaml:"tools"`
	Log   LogConfig   `json:"log" yaml:"log"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

// PageCounter is the metadata reader: it reports how many pages a document has.
type PageCounter interface {
	PageCount(ctx context.Context, path string) (int, error)
}

// BookmarkWriter embeds bookmarks into in and writes the result to out.
// infoFile holds the same bookmarks in pdftk update_info format.
type BookmarkWriter interface {
	WriteBookmarks(ctx context.Context, in, infoFile, out string, bookmarks []types.Bookmark) error
}

// Labeler rewrites a document's page-label metadata for one numbering range.
type Labeler interface {
	Label(ctx context.Context, in, out string, spec LabelSpec) error
}

// Toolkit bundles the collaborators selected by configuration.
type Toolkit struct {
	Pages     PageCounter
	Bookmarks BookmarkWriter
	Labels    Labeler

	backend  types.Backend
	binaries []string
	runner   *runner
}

// New builds the toolkit for cfg.Backend. Page labels are always written by
// the external pagelabels utility.
func New(cfg types.ToolsConfig, logger *slog.Logger) (*Toolkit, error) {
	return newToolkit(defaultExec, cfg, logger)
}

func newToolkit(exec executor, cfg types.ToolsConfig, logger *slog.Logger) (*Toolkit, error) {
	r := newRunner(exec, cfg, logger)
	labels := newPageLabels(cfg.PageLabels, r)

	t := &Toolkit{
		Labels:  labels,
		backend: cfg.Backend,
		runner:  r,
	}

	switch cfg.Backend {
	case types.BackendPdftk, "":
		pdftk := newPdftk(cfg.Pdftk, r)
		t.Pages = pdftk
		t.Bookmarks = pdftk
		t.backend = types.BackendPdftk
		t.binaries = []string{pdftk.bin, labels.bin}
	case types.BackendPdfcpu:
		p := newPdfcpu(r.logger)
		t.Pages = p
		t.Bookmarks = p
		t.binaries = []string{labels.bin}
	default:
		return nil, fmt.Errorf("unknown toolkit backend %q (want %s or %s)",
			cfg.Backend, types.BackendPdftk, types.BackendPdfcpu)
	}
	return t, nil
}

// Backend returns the selected backend name.
func (t *Toolkit) Backend() types.Backend { return t.backend }

// Check looks up every external binary the toolkit needs.
func (t *Toolkit) Check() []ToolStatus {
	return t.runner.lookup(t.binaries...)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolkit

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfmarks/internal/outline"
	"github.com/pdiddy/pdfmarks/pkg/types"
)

const toolPdfcpu = "pdfcpu"

// Pdfcpu counts pages and writes bookmarks in-process.
type Pdfcpu struct {
	conf   *model.Configuration
	logger *slog.Logger
}

func newPdfcpu(logger *slog.Logger) *Pdfcpu {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	// Keep pdfcpu from installing its user config directory.
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Pdfcpu{conf: conf, logger: logger}
}

func (p *Pdfcpu) PageCount(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, &types.ToolError{Tool: toolPdfcpu, Args: []string{"pagecount", path}, Err: err}
	}
	defer f.Close()

	n, err := api.PageCount(f, p.conf)
	if err != nil {
		return 0, &types.ToolError{Tool: toolPdfcpu, Args: []string{"pagecount", path}, Err: err}
	}
	return n, nil
}

// WriteBookmarks replaces the outline of in with bookmarks and writes out.
// The description file is not read; pdfcpu takes the tree directly.
func (p *Pdfcpu) WriteBookmarks(ctx context.Context, in, _, out string, bookmarks []types.Bookmark) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bms := toPdfcpu(outline.Tree(bookmarks))
	p.logger.Debug("adding bookmarks with pdfcpu", "input", in, "output", out, "roots", len(bms))
	if err := api.AddBookmarksFile(in, out, bms, true, p.conf); err != nil {
		return &types.ToolError{Tool: toolPdfcpu, Args: []string{"bookmarks", "import", in, out}, Err: err}
	}
	return nil
}

func toPdfcpu(nodes []*outline.Node) []pdfcpu.Bookmark {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]pdfcpu.Bookmark, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, pdfcpu.Bookmark{
			Title:    n.Title,
			PageFrom: n.Page,
			Kids:     toPdfcpu(n.Kids),
		})
	}
	return out
}

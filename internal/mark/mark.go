// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mark runs one bookmarking job: it loads the table of contents,
// resolves printed page labels to physical pages, writes page labels and
// hands the bookmark description to the configured toolkit.
package mark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/pdfmarks/internal/offset"
	"github.com/pdiddy/pdfmarks/internal/outline"
	"github.com/pdiddy/pdfmarks/internal/toolkit"
	"github.com/pdiddy/pdfmarks/pkg/types"
)

const infoFileName = "bookmarks.txt"

// Deps are the collaborators a run delegates to.
type Deps struct {
	Pages     toolkit.PageCounter
	Bookmarks toolkit.BookmarkWriter
	Labels    toolkit.Labeler
	Logger    *slog.Logger

	// Now stamps plans; defaults to time.Now.
	Now func() time.Time
}

// FromToolkit wires a Toolkit into Deps.
func FromToolkit(t *toolkit.Toolkit, logger *slog.Logger) Deps {
	return Deps{Pages: t.Pages, Bookmarks: t.Bookmarks, Labels: t.Labels, Logger: logger}
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Result summarizes a completed run.
type Result struct {
	Output     string
	InfoFile   string
	TotalPages int
	Bookmarks  int
	Labels     []types.NumeralSystem
	Warnings   []offset.Warning
}

// Plan loads the table of contents named by cfg and resolves it against the
// input document. Order warnings are logged and returned, not treated as
// errors.
func Plan(ctx context.Context, cfg types.MarkConfig, deps Deps) (*outline.Plan, []offset.Warning, error) {
	log := deps.logger()

	input, err := absPath("input", cfg.InputPath)
	if err != nil {
		return nil, nil, err
	}

	var plan *outline.Plan
	switch {
	case cfg.PlanPath != "":
		plan, err = outline.LoadPlan(cfg.PlanPath)
		if err != nil {
			return nil, nil, err
		}
		if err := plan.Schemes.Validate(); err != nil {
			return nil, nil, err
		}
	case cfg.CSVPath != "":
		if err := cfg.Schemes.Validate(); err != nil {
			return nil, nil, err
		}
		plan = &outline.Plan{Schemes: cfg.Schemes}
		if plan.Source, err = absPath("csv", cfg.CSVPath); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, errors.New("a table of contents is required: set a csv file or a plan")
	}
	plan.Input = input

	total := cfg.TotalPages
	if total <= 0 {
		if total, err = deps.Pages.PageCount(ctx, input); err != nil {
			return nil, nil, fmt.Errorf("counting pages of %s: %w", input, err)
		}
	}
	plan.TotalPages = total
	log.Debug("document page count", "input", input, "pages", total)

	if cfg.PlanPath != "" {
		if err := plan.Check(total); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", cfg.PlanPath, err)
		}
	} else {
		entries, err := outline.LoadCSV(plan.Source)
		if err != nil {
			return nil, nil, err
		}
		if err := outline.ValidateLevels(entries); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", plan.Source, err)
		}
		plan.Bookmarks, err = offset.Resolve(entries, total, plan.Schemes)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", plan.Source, err)
		}
	}
	plan.CreatedAt = deps.now().UTC()

	warnings := offset.CheckOrder(plan.Bookmarks)
	for _, w := range warnings {
		log.Warn("bookmark out of reading order", "title", w.Title, "page", w.Page, "previous_page", w.PrevPage)
	}
	return plan, warnings, nil
}

// Run executes the whole job and writes the marked document to
// cfg.OutputPath. With cfg.DryRun it prints the plan to w instead.
func Run(ctx context.Context, cfg types.MarkConfig, deps Deps, w io.Writer) (Result, error) {
	log := deps.logger()

	var output string
	if !cfg.DryRun {
		var err error
		if output, err = absPath("output", cfg.OutputPath); err != nil {
			return Result{}, err
		}
		if input, err := absPath("input", cfg.InputPath); err == nil && input == output {
			return Result{}, fmt.Errorf("output %s would overwrite the input document", output)
		}
	}

	plan, warnings, err := Plan(ctx, cfg, deps)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Output:     output,
		TotalPages: plan.TotalPages,
		Bookmarks:  len(plan.Bookmarks),
		Warnings:   warnings,
	}

	if cfg.DryRun {
		return res, outline.WritePlan(w, *plan)
	}

	workspace, err := os.MkdirTemp("", "pdfmarks-*")
	if err != nil {
		return res, fmt.Errorf("creating workspace: %w", err)
	}
	defer os.RemoveAll(workspace)

	current := plan.Input
	if !cfg.SkipLabels {
		for _, sys := range []types.NumeralSystem{types.Roman, types.Arabic} {
			scheme := plan.Schemes.For(sys)
			if scheme == nil {
				continue
			}
			next := filepath.Join(workspace, fmt.Sprintf("labels-%s.pdf", sys))
			spec := toolkit.LabelSpecFor(sys, *scheme)
			log.Info("writing page labels", "system", sys.String(), "start_page", spec.StartPage, "first_label", spec.FirstLabel)
			if err := deps.Labels.Label(ctx, current, next, spec); err != nil {
				return res, fmt.Errorf("writing %s page labels: %w", sys, err)
			}
			current = next
			res.Labels = append(res.Labels, sys)
		}
	}

	infoPath := filepath.Join(workspace, infoFileName)
	if cfg.InfoFile != "" {
		if infoPath, err = absPath("info file", cfg.InfoFile); err != nil {
			return res, err
		}
		res.InfoFile = infoPath
	}
	if err := outline.WriteInfoFile(infoPath, plan.Bookmarks); err != nil {
		return res, err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}
	log.Info("writing bookmarks", "count", len(plan.Bookmarks), "output", output)
	if err := deps.Bookmarks.WriteBookmarks(ctx, current, infoPath, output, plan.Bookmarks); err != nil {
		return res, fmt.Errorf("writing bookmarks: %w", err)
	}

	fmt.Fprintf(w, "Bookmarks written to %s\n", output)
	return res, nil
}

func absPath(what, p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%s path is required", what)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s path %s: %w", what, p, err)
	}
	return abs, nil
}

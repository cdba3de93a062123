// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolkit

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

const binPageLabels = "pagelabels"

// LabelSpec is one page-label range: from StartPage on, pages are numbered
// in Style beginning at FirstLabel.
type LabelSpec struct {
	StartPage  int
	FirstLabel int
	Style      types.LabelStyle
}

// LabelSpecFor builds the label range for a numbering scheme.
func LabelSpecFor(sys types.NumeralSystem, s types.NumberingScheme) LabelSpec {
	return LabelSpec{StartPage: s.StartPage, FirstLabel: s.FirstLabel, Style: types.StyleFor(sys)}
}

// PageLabels drives the pagelabels command-line utility.
type PageLabels struct {
	bin    string
	runner *runner
}

func newPageLabels(bin string, r *runner) *PageLabels {
	if bin == "" {
		bin = binPageLabels
	}
	return &PageLabels{bin: bin, runner: r}
}

// Label writes a copy of in to out with spec added to its page labels.
func (p *PageLabels) Label(ctx context.Context, in, out string, spec LabelSpec) error {
	style, err := labelType(spec.Style)
	if err != nil {
		return err
	}
	_, err = p.runner.run(ctx, p.bin,
		"--startpage", strconv.Itoa(spec.StartPage),
		"--type", style,
		"--firstpagenum", strconv.Itoa(spec.FirstLabel),
		"--outfile", out,
		in,
	)
	return err
}

func labelType(s types.LabelStyle) (string, error) {
	switch s {
	case types.StyleRomanLower:
		return "roman lowercase", nil
	case types.StyleArabic:
		return "arabic", nil
	}
	return "", fmt.Errorf("unsupported label style %q", s)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolkit

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

const binPdftk = "pdftk"

// Pdftk reads page counts with dump_data_utf8 and writes bookmarks with
// update_info_utf8.
type Pdftk struct {
	bin    string
	runner *runner
}

func newPdftk(bin string, r *runner) *Pdftk {
	if bin == "" {
		bin = binPdftk
	}
	return &Pdftk{bin: bin, runner: r}
}

// PageCount returns the NumberOfPages reported by pdftk for path.
func (p *Pdftk) PageCount(ctx context.Context, path string) (int, error) {
	out, err := p.runner.run(ctx, p.bin, path, "dump_data_utf8")
	if err != nil {
		return 0, err
	}
	n, err := parseNumberOfPages(out)
	if err != nil {
		return 0, &types.ToolError{Tool: p.bin, Args: []string{path, "dump_data_utf8"}, Err: err}
	}
	return n, nil
}

// WriteBookmarks embeds the bookmark description in infoFile into in and
// writes the result to out.
func (p *Pdftk) WriteBookmarks(ctx context.Context, in, infoFile, out string, _ []types.Bookmark) error {
	_, err := p.runner.run(ctx, p.bin, in, "update_info_utf8", infoFile, "output", out)
	return err
}

func parseNumberOfPages(dump []byte) (int, error) {
	sc := bufio.NewScanner(bytes.NewReader(dump))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "NumberOfPages" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("parsing NumberOfPages %q: %w", value, err)
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading dump_data output: %w", err)
	}
	return 0, fmt.Errorf("dump_data output has no NumberOfPages line")
}

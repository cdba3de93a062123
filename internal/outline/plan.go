// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

// Plan is the resolved outline for one document. It can be reviewed, edited
// and fed back to apply without re-reading the CSV.
type Plan struct {
	Input      string           `yaml:"input,omitempty"`
	Source     string           `yaml:"source,omitempty"`
	TotalPages int              `yaml:"total_pages"`
	Schemes    types.Schemes    `yaml:"schemes"`
	Bookmarks  []types.Bookmark `yaml:"bookmarks"`
	CreatedAt  time.Time        `yaml:"created_at"`
}

// WritePlan encodes p as YAML.
func WritePlan(w io.Writer, p Plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&p); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return enc.Close()
}

// ReadPlan decodes a YAML plan.
func ReadPlan(r io.Reader) (*Plan, error) {
	var p Plan
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &p, nil
}

// LoadPlan reads the plan file at path.
func LoadPlan(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}

// Check verifies that the plan holds at least one bookmark, that every
// bookmark lands inside a document of totalPages pages and that levels nest
// properly. Failures name the 1-based bookmark position in the plan.
func (p *Plan) Check(totalPages int) error {
	if len(p.Bookmarks) == 0 {
		return fmt.Errorf("%w: no bookmarks", types.ErrInvalidPlan)
	}
	prev := 0
	for i, b := range p.Bookmarks {
		if b.Page < 1 || b.Page > totalPages {
			return fmt.Errorf("bookmark %d (%q): %w: page %d, document has %d pages",
				i+1, b.Title, types.ErrPageOutOfRange, b.Page, totalPages)
		}
		if b.Level < 1 || b.Level > prev+1 {
			return fmt.Errorf("bookmark %d (%q): %w: level %d follows level %d",
				i+1, b.Title, types.ErrInvalidPlan, b.Level, prev)
		}
		prev = b.Level
	}
	return nil
}

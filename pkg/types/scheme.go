// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberingScheme locates one numeral system inside the physical document.
type NumberingScheme struct {
	// StartPage is the physical page on which the system begins.
	StartPage int `json:"start_page" yaml:"start_page"`

	// FirstLabel is the nominal value printed on StartPage.
	FirstLabel int `json:"first_label" yaml:"first_label"`
}

// Offset is the amount added to a nominal page to reach the physical page.
func (n NumberingScheme) Offset() int {
	return n.StartPage - n.FirstLabel
}

func (n NumberingScheme) String() string {
	return fmt.Sprintf("%d,%d", n.StartPage, n.FirstLabel)
}

// ParseScheme reads a "start,first" pair such as "5,1".
func ParseScheme(s string) (NumberingScheme, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return NumberingScheme{}, fmt.Errorf("%w: %q is not of the form start,first", ErrInvalidScheme, s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return NumberingScheme{}, fmt.Errorf("%w: start page %q: %v", ErrInvalidScheme, parts[0], err)
	}
	first, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return NumberingScheme{}, fmt.Errorf("%w: first label %q: %v", ErrInvalidScheme, parts[1], err)
	}
	return NumberingScheme{StartPage: start, FirstLabel: first}, nil
}

// Schemes holds the numbering scheme configured for each numeral system.
// A nil scheme means the system is not in use.
type Schemes struct {
	Roman  *NumberingScheme `json:"roman,omitempty" yaml:"roman,omitempty"`
	Arabic *NumberingScheme `json:"arabic,omitempty" yaml:"arabic,omitempty"`
}

// DefaultSchemes returns Roman disabled and Arabic starting on page 1 labelled 1.
func DefaultSchemes() Schemes {
	return Schemes{Arabic: &NumberingScheme{StartPage: 1, FirstLabel: 1}}
}

// For returns the scheme configured for sys, or nil.
func (s Schemes) For(sys NumeralSystem) *NumberingScheme {
	switch sys {
	case Roman:
		return s.Roman
	case Arabic:
		return s.Arabic
	}
	return nil
}

// Validate rejects schemes whose start page or first label is below 1.
func (s Schemes) Validate() error {
	for _, sys := range []NumeralSystem{Roman, Arabic} {
		sc := s.For(sys)
		if sc == nil {
			continue
		}
		if sc.StartPage < 1 {
			return fmt.Errorf("%w: %s start page %d must be at least 1", ErrInvalidScheme, sys, sc.StartPage)
		}
		if sc.FirstLabel < 1 {
			return fmt.Errorf("%w: %s first label %d must be at least 1", ErrInvalidScheme, sys, sc.FirstLabel)
		}
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package numeral classifies page labels as Arabic or Roman and converts
// them to integers.
package numeral

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

// MaxRoman is the largest value expressible in standard Roman notation.
const MaxRoman = 3999

var arabicPattern = regexp.MustCompile(`^[0-9]+$`)

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50,
	'C': 100, 'D': 500, 'M': 1000,
}

var (
	romanSteps   = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// Classify decides the numeral system of label and returns its nominal value.
// Digits-only labels are Arabic; anything else must be a well-formed Roman
// numeral or ErrUnclassifiableNumeral is returned. An Arabic label too large
// to represent is ErrPageOutOfRange.
func Classify(label string) (types.NumeralSystem, int, error) {
	label = strings.TrimSpace(label)
	if arabicPattern.MatchString(label) {
		n, err := strconv.Atoi(label)
		if errors.Is(err, strconv.ErrRange) {
			return types.Arabic, 0, fmt.Errorf("%w: arabic page %s is beyond any document", types.ErrPageOutOfRange, label)
		}
		if err != nil {
			return types.Arabic, 0, fmt.Errorf("%w: %q: %v", types.ErrUnclassifiableNumeral, label, err)
		}
		return types.Arabic, n, nil
	}
	n, err := ParseRoman(label)
	if err != nil {
		return types.Roman, 0, err
	}
	return types.Roman, n, nil
}

// ParseRoman converts a Roman numeral, in either case, to its value. Only
// canonical spellings are accepted: "IIII" and "VX" are rejected, as is any
// non-ASCII letter that upper-cases to a Roman one.
func ParseRoman(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty label", types.ErrUnclassifiableNumeral)
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return 0, fmt.Errorf("%w: %q is neither arabic nor roman", types.ErrUnclassifiableNumeral, s)
		}
	}
	upper := strings.ToUpper(s)

	total := 0
	for i := 0; i < len(upper); i++ {
		val, ok := romanValues[upper[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %q is neither arabic nor roman", types.ErrUnclassifiableNumeral, s)
		}
		if i+1 < len(upper) && romanValues[upper[i+1]] > val {
			total -= val
		} else {
			total += val
		}
	}

	if total < 1 || total > MaxRoman || FormatRoman(total) != upper {
		return 0, fmt.Errorf("%w: %q is not a well-formed roman numeral", types.ErrUnclassifiableNumeral, s)
	}
	return total, nil
}

// FormatRoman renders n in canonical upper-case Roman notation. Values
// outside 1..MaxRoman yield "".
func FormatRoman(n int) string {
	if n < 1 || n > MaxRoman {
		return ""
	}
	var b strings.Builder
	for i, step := range romanSteps {
		for n >= step {
			n -= step
			b.WriteString(romanSymbols[i])
		}
	}
	return b.String()
}

// FormatRomanLower is FormatRoman in lower case, the style used for front matter.
func FormatRomanLower(n int) string {
	return strings.ToLower(FormatRoman(n))
}

// Format renders n as it would be printed in sys.
func Format(sys types.NumeralSystem, n int) string {
	if sys == types.Roman {
		return FormatRomanLower(n)
	}
	return strconv.Itoa(n)
}

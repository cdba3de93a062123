// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

func TestParseRoman(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"i", 1},
		{"iv", 4},
		{"v", 5},
		{"ix", 9},
		{"xiv", 14},
		{"XIV", 14},
		{"XiV", 14},
		{"xl", 40},
		{"xc", 90},
		{"cd", 400},
		{"mcmxcix", 1999},
		{"MMMCMXCIX", 3999},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRoman(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoman_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "IIII", "VX", "IC", "VV", "MMMM", "x1", "i v", "\u0131", "x\u0131v", "\u0131v", "\u2167"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRoman(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrUnclassifiableNumeral)
		})
	}
}

func TestFormatRoman_RoundTrip(t *testing.T) {
	for n := 1; n <= MaxRoman; n++ {
		s := FormatRoman(n)
		got, err := ParseRoman(s)
		require.NoError(t, err, "value %d -> %q", n, s)
		require.Equal(t, n, got)

		lower, err := ParseRoman(FormatRomanLower(n))
		require.NoError(t, err)
		require.Equal(t, n, lower)
	}
	assert.Equal(t, "", FormatRoman(0))
	assert.Equal(t, "", FormatRoman(MaxRoman+1))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantSys types.NumeralSystem
		wantN   int
		wantErr bool
	}{
		{name: "arabic", label: "12", wantSys: types.Arabic, wantN: 12},
		{name: "arabic leading zero", label: "007", wantSys: types.Arabic, wantN: 7},
		{name: "arabic zero", label: "0", wantSys: types.Arabic, wantN: 0},
		{name: "surrounding space", label: " 3 ", wantSys: types.Arabic, wantN: 3},
		{name: "roman lower", label: "xiv", wantSys: types.Roman, wantN: 14},
		{name: "roman upper", label: "IV", wantSys: types.Roman, wantN: 4},
		{name: "negative", label: "-3", wantErr: true},
		{name: "mixed", label: "12a", wantErr: true},
		{name: "empty", label: "", wantErr: true},
		{name: "word", label: "preface", wantErr: true},
		{name: "dotless i", label: "x\u0131v", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, n, err := Classify(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrUnclassifiableNumeral)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSys, sys)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestClassify_ArabicOverflow(t *testing.T) {
	sys, _, err := Classify("99999999999999999999")
	assert.Equal(t, types.Arabic, sys)
	assert.ErrorIs(t, err, types.ErrPageOutOfRange)
	assert.NotErrorIs(t, err, types.ErrUnclassifiableNumeral)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "xiv", Format(types.Roman, 14))
	assert.Equal(t, "14", Format(types.Arabic, 14))
}

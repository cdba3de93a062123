// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

func schemeCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSchemeFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestSchemesFromFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantRoman  *types.NumberingScheme
		wantArabic *types.NumberingScheme
		wantErr    bool
	}{
		{
			name:       "defaults",
			wantArabic: &types.NumberingScheme{StartPage: 1, FirstLabel: 1},
		},
		{
			name:       "roman and arabic",
			args:       []string{"--roman", "1,1", "--arabic", "5,1"},
			wantRoman:  &types.NumberingScheme{StartPage: 1, FirstLabel: 1},
			wantArabic: &types.NumberingScheme{StartPage: 5, FirstLabel: 1},
		},
		{
			name:       "spaces allowed",
			args:       []string{"--arabic", " 13 , 3 "},
			wantArabic: &types.NumberingScheme{StartPage: 13, FirstLabel: 3},
		},
		{
			name:      "arabic disabled",
			args:      []string{"--roman", "2,1", "--arabic", ""},
			wantRoman: &types.NumberingScheme{StartPage: 2, FirstLabel: 1},
		},
		{name: "single number", args: []string{"--roman", "5"}, wantErr: true},
		{name: "not a number", args: []string{"--arabic", "five,1"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schemesFromFlags(schemeCmd(t, tt.args...))
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidScheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoman, got.Roman)
			assert.Equal(t, tt.wantArabic, got.Arabic)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(types.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "page", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(types.LogConfig{Level: "loud"}, &buf)
	assert.Error(t, err)
	_, err = newLogger(types.LogConfig{Format: "xml"}, &buf)
	assert.Error(t, err)
}
